// Package record provides decoded EMF record kinds that drive an
// [emf.Engine].
//
// Decoding the binary stream is the job of an upstream decoder; the types
// here hold already-decoded field values and implement [emf.Record]. Each
// record also reports its EMR type through Type and String.
//
// # Example
//
//	e := emf.NewEngine(s, bounds)
//	err := e.PlayAll([]emf.Record{
//	    record.CreatePen{Index: 1, Pen: emf.Pen{Width: 2, Color: emf.RGB(255, 0, 0)}},
//	    record.SelectObject{Index: 1},
//	    record.MoveToEx{Point: emf.Pt(10, 10)},
//	    record.LineTo{Point: emf.Pt(100, 80)},
//	})
package record
