package style

import "fmt"

// Unit is the measurement unit of a Distance.
type Unit uint8

const (
	UnitPx      Unit = iota // absolute pixels, scaled by the UI scale factor
	UnitEm                  // relative to the base font size
	UnitPercent             // percentage of the parent extent
	UnitMm                  // physical millimeters
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitEm:
		return "em"
	case UnitPercent:
		return "%"
	case UnitMm:
		return "mm"
	}
	return "??"
}

// Distance is a numeric magnitude tagged with a measurement unit.
// A Distance is not a pixel count; the same value resolves to different
// physical sizes depending on DPI, UI scale and the parent widget.
// Resolution is deferred until ToPixels is called with a LayoutContext.
type Distance struct {
	Value float64
	Unit  Unit
}

// Px creates a pixel distance.
func Px(value float64) Distance {
	return Distance{Value: value, Unit: UnitPx}
}

// Em creates a font-relative distance.
func Em(value float64) Distance {
	return Distance{Value: value, Unit: UnitEm}
}

// Percent creates a parent-relative distance.
func Percent(value float64) Distance {
	return Distance{Value: value, Unit: UnitPercent}
}

// Mm creates a physical millimeter distance.
func Mm(value float64) Distance {
	return Distance{Value: value, Unit: UnitMm}
}

// ToPixels resolves the distance to physical pixels.
//
// The formulas are load-bearing for layout correctness:
//
//	px → value × scale factor
//	em → value × base font size × scale factor
//	%  → value/100 × parent size
//	mm → value × dpi / 25.4
func (d Distance) ToPixels(ctx LayoutContext) float32 {
	switch d.Unit {
	case UnitPx:
		return float32(d.Value) * ctx.ScaleFactor
	case UnitEm:
		return float32(d.Value) * ctx.BaseFontSize * ctx.ScaleFactor
	case UnitPercent:
		return float32(d.Value) / 100 * ctx.ParentSize
	case UnitMm:
		return float32(d.Value) * ctx.DPI / 25.4
	}
	tracer().Errorf("distance with unknown unit %d treated as px", d.Unit)
	return float32(d.Value) * ctx.ScaleFactor
}

func (d Distance) String() string {
	return fmt.Sprintf("%g%s", d.Value, d.Unit)
}

// LayoutContext carries the runtime quantities needed to resolve a
// Distance into pixels. It is supplied by the caller for every
// conversion and is not part of the style tree: the parent size differs
// per widget, and DPI and scale may change while a tree is live.
type LayoutContext struct {
	DPI          float32
	ScaleFactor  float32
	BaseFontSize float32
	ParentSize   float32 // width or height, depending on orientation
}

// DefaultContext returns a layout context for a 96-DPI, unscaled
// display with a 16px base font and a 100px parent extent.
func DefaultContext() LayoutContext {
	return LayoutContext{
		DPI:          96,
		ScaleFactor:  1,
		BaseFontSize: 16,
		ParentSize:   100,
	}
}
