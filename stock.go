package emf

import "fmt"

// StockObject is a reserved object index. Indices with the high bit set
// select predefined objects without any object-table entry.
type StockObject uint32

// StockFlag marks an object index as a stock object.
const StockFlag = 0x80000000

// Stock objects.
const (
	WhiteBrush        StockObject = 0x80000000
	LtGrayBrush       StockObject = 0x80000001
	GrayBrush         StockObject = 0x80000002
	DkGrayBrush       StockObject = 0x80000003
	BlackBrush        StockObject = 0x80000004
	NullBrush         StockObject = 0x80000005
	WhitePen          StockObject = 0x80000006
	BlackPen          StockObject = 0x80000007
	NullPen           StockObject = 0x80000008
	OEMFixedFont      StockObject = 0x8000000A
	ANSIFixedFont     StockObject = 0x8000000B
	ANSIVarFont       StockObject = 0x8000000C
	SystemFont        StockObject = 0x8000000D
	DeviceDefaultFont StockObject = 0x8000000E
	DefaultPalette    StockObject = 0x8000000F
	SystemFixedFont   StockObject = 0x80000010
	DefaultGUIFont    StockObject = 0x80000011
	DCBrush           StockObject = 0x80000012
	DCPen             StockObject = 0x80000013
)

var stockNames = map[StockObject]string{
	WhiteBrush:        "WHITE_BRUSH",
	LtGrayBrush:       "LTGRAY_BRUSH",
	GrayBrush:         "GRAY_BRUSH",
	DkGrayBrush:       "DKGRAY_BRUSH",
	BlackBrush:        "BLACK_BRUSH",
	NullBrush:         "NULL_BRUSH",
	WhitePen:          "WHITE_PEN",
	BlackPen:          "BLACK_PEN",
	NullPen:           "NULL_PEN",
	OEMFixedFont:      "OEM_FIXED_FONT",
	ANSIFixedFont:     "ANSI_FIXED_FONT",
	ANSIVarFont:       "ANSI_VAR_FONT",
	SystemFont:        "SYSTEM_FONT",
	DeviceDefaultFont: "DEVICE_DEFAULT_FONT",
	DefaultPalette:    "DEFAULT_PALETTE",
	SystemFixedFont:   "SYSTEM_FIXED_FONT",
	DefaultGUIFont:    "DEFAULT_GUI_FONT",
	DCBrush:           "DC_BRUSH",
	DCPen:             "DC_PEN",
}

// String returns the Windows name of the stock object.
func (s StockObject) String() string {
	if name, ok := stockNames[s]; ok {
		return name
	}
	return "UNKNOWN_STOCK_OBJECT"
}

// IsStockIndex reports whether an object index selects a stock object.
func IsStockIndex(index uint32) bool {
	return index&StockFlag != 0
}

// StockCatalog resolves stock objects against the graphics state.
// Format variants supply their own catalog with WithStockCatalog.
type StockCatalog interface {
	SelectStock(obj StockObject, p *Properties) error
}

// StockCatalogFunc adapts a function to StockCatalog.
type StockCatalogFunc func(obj StockObject, p *Properties) error

// SelectStock calls f.
func (f StockCatalogFunc) SelectStock(obj StockObject, p *Properties) error {
	return f(obj, p)
}

func solidBrush(c ColorRef) func(*Properties) {
	return func(p *Properties) {
		p.Brush.Color = c
		p.Brush.Style = BrushSolid
	}
}

func cosmeticPen(c ColorRef) func(*Properties) {
	return func(p *Properties) {
		p.Pen.Style = PenSolid
		p.Pen.Width = 1
		p.Pen.Color = c
	}
}

// emfStock maps every reserved index to its effect. A nil effect means
// the object is accepted but has no modeled effect here: fixed system
// fonts, the default palette and the DC brush/pen belong to the font and
// device layers.
var emfStock = map[StockObject]func(*Properties){
	WhiteBrush:  solidBrush(White),
	LtGrayBrush: solidBrush(LtGray),
	GrayBrush:   solidBrush(Gray),
	DkGrayBrush: solidBrush(DkGray),
	BlackBrush:  solidBrush(Black),
	NullBrush:   func(p *Properties) { p.Brush.Style = BrushNull },
	WhitePen:    cosmeticPen(White),
	BlackPen:    cosmeticPen(Black),
	NullPen:     func(p *Properties) { p.Pen.Style = PenNull },

	OEMFixedFont:      nil,
	ANSIFixedFont:     nil,
	ANSIVarFont:       nil,
	SystemFont:        nil,
	DeviceDefaultFont: nil,
	DefaultPalette:    nil,
	SystemFixedFont:   nil,
	DefaultGUIFont:    nil,
	DCBrush:           nil,
	DCPen:             nil,
}

// EMFStockObjects is the stock catalog of the Enhanced Metafile format.
var EMFStockObjects StockCatalog = StockCatalogFunc(selectEMFStock)

func selectEMFStock(obj StockObject, p *Properties) error {
	apply, ok := emfStock[obj]
	if !ok {
		return fmt.Errorf("%w: %#08x", ErrUnresolvedStockObject, uint32(obj))
	}
	if apply != nil {
		apply(p)
	}
	return nil
}

// HasModeledEffect reports whether selecting obj changes the graphics
// state in the EMF catalog.
func (s StockObject) HasModeledEffect() bool {
	return emfStock[s] != nil
}
