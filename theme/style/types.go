package style

import "strings"

// Orientation is the layout direction of a container widget.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseOrientation parses an orientation keyword, ignoring case.
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(s) {
	case "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	}
	return Vertical, false
}

// ImageScale selects how a background image is scaled into its widget.
type ImageScale uint8

const (
	ScaleNone   ImageScale = iota // native size, no scaling
	ScaleWidth                    // fit width, keep aspect ratio
	ScaleHeight                   // fit height, keep aspect ratio
	ScaleBoth                     // fill both dimensions, may crop
)

func (s ImageScale) String() string {
	switch s {
	case ScaleWidth:
		return "width"
	case ScaleHeight:
		return "height"
	case ScaleBoth:
		return "both"
	}
	return "none"
}

// ParseImageScale parses a scale-mode keyword, ignoring case.
func ParseImageScale(s string) (ImageScale, bool) {
	switch strings.ToLower(s) {
	case "none":
		return ScaleNone, true
	case "width":
		return ScaleWidth, true
	case "height":
		return ScaleHeight, true
	case "both":
		return ScaleBoth, true
	}
	return ScaleNone, false
}

// ImageSource is the value of an image directive: a path plus a scale
// mode. The path "auto" asks the renderer to pick up the desktop
// wallpaper instead of loading a file.
type ImageSource struct {
	Path  string
	Scale ImageScale
}

// LineStyle is the stroke style of a border.
type LineStyle uint8

const (
	Solid LineStyle = iota
	Dashed
)

// Border groups the border properties of a widget. The zero border is
// invisible: zero width, transparent, square corners.
type Border struct {
	Width  Distance
	Color  Color
	Radius Distance
	Style  LineStyle
}
