package style

// Padding is a four-sided inset, each side an independent Distance.
// Margins use the same type.
type Padding struct {
	Top    Distance
	Right  Distance
	Bottom Distance
	Left   Distance
}

// Uniform creates a padding with the same distance on all four sides.
func Uniform(d Distance) Padding {
	return Padding{Top: d, Right: d, Bottom: d, Left: d}
}

// Symmetric creates a padding from a vertical and a horizontal value,
// the expansion of the 2-value shorthand.
func Symmetric(vertical, horizontal Distance) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// NewPadding creates a padding with all four sides given explicitly,
// in CSS order: top, right, bottom, left.
func NewPadding(top, right, bottom, left Distance) Padding {
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// ToPixels resolves all four sides against the given layout context.
func (p Padding) ToPixels(ctx LayoutContext) ResolvedPadding {
	return ResolvedPadding{
		Top:    p.Top.ToPixels(ctx),
		Right:  p.Right.ToPixels(ctx),
		Bottom: p.Bottom.ToPixels(ctx),
		Left:   p.Left.ToPixels(ctx),
	}
}

// ResolvedPadding is a padding with all sides resolved to pixels.
type ResolvedPadding struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// Rect is a pixel-space rectangle used during layout.
type Rect struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Inset shrinks the rectangle by the given resolved padding.
func (r Rect) Inset(p ResolvedPadding) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  r.Width - p.Left - p.Right,
		Height: r.Height - p.Top - p.Bottom,
	}
}
