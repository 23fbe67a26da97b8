// Package emf plays back Enhanced Metafile (EMF) drawing records onto a
// 2D surface.
//
// # Overview
//
// A metafile is an ordered stream of records. Some draw, some change the
// graphics state (pen, brush, font, current point, path under
// construction), and some create, select or delete reusable graphics
// objects held in an indexed object table. The [Engine] interprets such a
// stream, already decoded into [Record] values, against a [Surface].
//
// # Quick Start
//
//	s := raster.New(800, 600)
//	e := emf.NewEngine(s, emf.Rect{W: 800, H: 600})
//	for _, r := range records {
//	    if err := e.Replay(r); err != nil {
//	        return err
//	    }
//	}
//	e.Finish()
//
// # Architecture
//
// The library is organized into:
//   - Engine: record dispatch, bounds remapping, path construction
//   - Properties: the current graphics state and its save/restore stack
//   - ObjectTable: 1-based object store; slot 0 is a reserved placeholder
//   - StockObject: predefined objects selected by reserved indices
//   - Surface: the drawing capability (see the raster and recording packages)
//   - record: concrete record kinds
//
// # Bounded Records
//
// A record implementing [Bounded] declares the device rectangle its shape
// must occupy. The engine saves the surface transform, scales the shape
// about its center to fill the rectangle, lets the record draw, and
// restores the transform, even if the record fails.
//
// # Errors
//
// Object-table and stack addressing failures wrap [ErrAddressing]; stock
// indices naming no known object wrap [ErrUnresolvedStockObject]. Record
// errors are returned unchanged. No error rolls back what earlier records
// already drew.
package emf
