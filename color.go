package emf

import (
	"fmt"
	"image/color"
)

// ColorRef is a Windows COLORREF value laid out as 0x00BBGGRR.
type ColorRef uint32

// Predefined colors used by the stock objects.
const (
	White  ColorRef = 0x00FFFFFF
	LtGray ColorRef = 0x00C0C0C0
	Gray   ColorRef = 0x00808080
	DkGray ColorRef = 0x00404040
	Black  ColorRef = 0x00000000
)

// RGB builds a ColorRef from its components.
func RGB(r, g, b uint8) ColorRef {
	return ColorRef(uint32(r) | uint32(g)<<8 | uint32(b)<<16)
}

// R returns the red component.
func (c ColorRef) R() uint8 { return uint8(c) }

// G returns the green component.
func (c ColorRef) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c ColorRef) B() uint8 { return uint8(c >> 16) }

// RGBA converts the color to an opaque color.RGBA.
func (c ColorRef) RGBA() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: 0xFF}
}

// String returns the color as #rrggbb.
func (c ColorRef) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}
