/*
Package ast defines the document model of the wolfy theme language:
a stylesheet is an ordered list of rules, a rule pairs selectors with
properties, and a property value is a closed union of the value kinds
the language knows about.

The AST is transient. It is produced once per parse, handed to the
resolver, and usually discarded afterwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ast

import (
	"fmt"
	"strings"

	"github.com/wolfyui/wolfy/theme/style"
)

// Stylesheet is the AST root: rules in source order.
type Stylesheet struct {
	Rules []Rule
}

// Rule is one or more selectors plus an ordered property list. Source
// order matters: later rules for the same selector overwrite earlier
// ones in the resolver.
type Rule struct {
	Selectors  []Selector
	Properties []Property
}

// Selector identifies which element(s) a rule applies to: either the
// universal selector '*' or an element name with an optional state
// qualifier ("entry", "entry.focused").
type Selector struct {
	Universal bool
	Name      string
	State     string
}

// UniversalSelector returns the '*' selector.
func UniversalSelector() Selector {
	return Selector{Universal: true}
}

// Element returns a selector for a named element in its base state.
func Element(name string) Selector {
	return Selector{Name: name}
}

// ElementWithState returns a selector for a named element in a
// specific interaction state.
func ElementWithState(name, state string) Selector {
	return Selector{Name: name, State: state}
}

func (s Selector) String() string {
	if s.Universal {
		return "*"
	}
	if s.State != "" {
		return s.Name + "." + s.State
	}
	return s.Name
}

// Property is a name/value pair. Names are case-sensitive and by
// convention kebab-case.
type Property struct {
	Name  string
	Value Value
}

// ValueKind tags the variants of Value.
type ValueKind uint8

const (
	KindColor ValueKind = iota
	KindDistance
	KindNumber
	KindString
	KindIdent
	KindBool
	KindPadding2
	KindPadding4
	KindArray
	KindImage
	KindOrientation
)

func (k ValueKind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindDistance:
		return "distance"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindIdent:
		return "ident"
	case KindBool:
		return "bool"
	case KindPadding2:
		return "padding2"
	case KindPadding4:
		return "padding4"
	case KindArray:
		return "array"
	case KindImage:
		return "image"
	case KindOrientation:
		return "orientation"
	}
	return "unknown"
}

// Value is a closed tagged union of the value kinds a property may
// carry. Values are immutable once constructed. The As* projections
// are total: they never panic and report a mismatch as ok == false, so
// the resolver's fail-soft getters can always fall back to a default.
type Value struct {
	kind   ValueKind
	color  style.Color
	dist   [4]style.Distance // distance, padding2 (0..1) and padding4 (0..3)
	num    float64
	str    string
	flag   bool
	arr    []string
	img    style.ImageSource
	orient style.Orientation
}

// Kind returns the variant tag of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// ColorValue wraps a literal color.
func ColorValue(c style.Color) Value {
	return Value{kind: KindColor, color: c}
}

// DistanceValue wraps a unit-tagged distance.
func DistanceValue(d style.Distance) Value {
	return Value{kind: KindDistance, dist: [4]style.Distance{d}}
}

// NumberValue wraps a unitless number. The AST keeps it a plain number;
// a caller expecting a Distance converts it to pixels via AsDistance.
func NumberValue(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// StringValue wraps a quoted string.
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// IdentValue wraps a bare identifier: keywords, named colors, 'inherit'.
func IdentValue(s string) Value {
	return Value{kind: KindIdent, str: s}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Padding2Value wraps the 2-value padding shorthand (vertical,
// horizontal).
func Padding2Value(vertical, horizontal style.Distance) Value {
	return Value{kind: KindPadding2, dist: [4]style.Distance{vertical, horizontal}}
}

// Padding4Value wraps the 4-value padding shorthand (top, right,
// bottom, left).
func Padding4Value(top, right, bottom, left style.Distance) Value {
	return Value{kind: KindPadding4, dist: [4]style.Distance{top, right, bottom, left}}
}

// ArrayValue wraps an ordered list of strings, used for child-name
// lists.
func ArrayValue(items []string) Value {
	return Value{kind: KindArray, arr: items}
}

// ImageValue wraps an image directive.
func ImageValue(img style.ImageSource) Value {
	return Value{kind: KindImage, img: img}
}

// OrientationValue wraps an orientation keyword.
func OrientationValue(o style.Orientation) Value {
	return Value{kind: KindOrientation, orient: o}
}

// AsColor projects to a color: either a literal color, or an
// identifier naming a color from the named-color table.
func (v Value) AsColor() (style.Color, bool) {
	switch v.kind {
	case KindColor:
		return v.color, true
	case KindIdent:
		return NamedColor(v.str)
	}
	return style.Color{}, false
}

// AsDistance projects to a distance. A plain number is treated as
// pixels.
func (v Value) AsDistance() (style.Distance, bool) {
	switch v.kind {
	case KindDistance:
		return v.dist[0], true
	case KindNumber:
		return style.Px(v.num), true
	}
	return style.Distance{}, false
}

// AsPadding projects to a four-sided padding: a single distance or
// number is uniform, the shorthands expand per CSS convention.
func (v Value) AsPadding() (style.Padding, bool) {
	switch v.kind {
	case KindDistance:
		return style.Uniform(v.dist[0]), true
	case KindNumber:
		return style.Uniform(style.Px(v.num)), true
	case KindPadding2:
		return style.Symmetric(v.dist[0], v.dist[1]), true
	case KindPadding4:
		return style.NewPadding(v.dist[0], v.dist[1], v.dist[2], v.dist[3]), true
	}
	return style.Padding{}, false
}

// AsString projects to a string. Bare identifiers count, so
// 'font-family: Arial;' and 'font-family: "Arial";' are equivalent.
func (v Value) AsString() (string, bool) {
	if v.kind == KindString || v.kind == KindIdent {
		return v.str, true
	}
	return "", false
}

// AsNumber projects to a float. A distance yields its bare magnitude.
func (v Value) AsNumber() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindDistance:
		return v.dist[0].Value, true
	}
	return 0, false
}

// AsBool projects to a boolean; the identifiers "true" and "false"
// count as well.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.flag, true
	case KindIdent:
		switch v.str {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	return false, false
}

// AsArray projects to the string list of an array value.
func (v Value) AsArray() ([]string, bool) {
	if v.kind == KindArray {
		return v.arr, true
	}
	return nil, false
}

// AsImage projects to an image directive.
func (v Value) AsImage() (style.ImageSource, bool) {
	if v.kind == KindImage {
		return v.img, true
	}
	return style.ImageSource{}, false
}

// AsOrientation projects to an orientation; the bare keywords parse
// too.
func (v Value) AsOrientation() (style.Orientation, bool) {
	switch v.kind {
	case KindOrientation:
		return v.orient, true
	case KindIdent:
		return style.ParseOrientation(v.str)
	}
	return style.Vertical, false
}

func (v Value) String() string {
	switch v.kind {
	case KindColor:
		return v.color.String()
	case KindDistance:
		return v.dist[0].String()
	case KindNumber:
		return fmt.Sprintf("%g", v.num)
	case KindString:
		return fmt.Sprintf("%q", v.str)
	case KindIdent:
		return v.str
	case KindBool:
		return fmt.Sprintf("%t", v.flag)
	case KindPadding2:
		return fmt.Sprintf("%s %s", v.dist[0], v.dist[1])
	case KindPadding4:
		return fmt.Sprintf("%s %s %s %s", v.dist[0], v.dist[1], v.dist[2], v.dist[3])
	case KindArray:
		return fmt.Sprintf("[ %q ]", v.arr)
	case KindImage:
		if v.img.Scale == style.ScaleNone {
			return fmt.Sprintf("url(%q)", v.img.Path)
		}
		return fmt.Sprintf("url(%q, %s)", v.img.Path, v.img.Scale)
	case KindOrientation:
		return v.orient.String()
	}
	return "<invalid>"
}

// MakeDistance builds a Distance from a magnitude and a unit suffix.
// Unknown suffixes fall back to pixels.
func MakeDistance(value float64, unit string) style.Distance {
	switch unit {
	case "px":
		return style.Px(value)
	case "em":
		return style.Em(value)
	case "%":
		return style.Percent(value)
	case "mm":
		return style.Mm(value)
	}
	return style.Px(value)
}

// NamedColor resolves a CSS-style color name, ignoring case.
func NamedColor(name string) (style.Color, bool) {
	c, ok := namedColors[strings.ToLower(name)]
	return c, ok
}

var namedColors = map[string]style.Color{
	"black":       style.Black,
	"white":       style.White,
	"red":         style.Red,
	"green":       style.Green,
	"blue":        style.Blue,
	"transparent": style.Transparent,
	"gray":        style.RGB(128, 128, 128),
	"grey":        style.RGB(128, 128, 128),
	"silver":      style.RGB(192, 192, 192),
	"maroon":      style.RGB(128, 0, 0),
	"yellow":      style.RGB(255, 255, 0),
	"olive":       style.RGB(128, 128, 0),
	"lime":        style.RGB(0, 255, 0),
	"aqua":        style.RGB(0, 255, 255),
	"cyan":        style.RGB(0, 255, 255),
	"teal":        style.RGB(0, 128, 128),
	"navy":        style.RGB(0, 0, 128),
	"fuchsia":     style.RGB(255, 0, 255),
	"magenta":     style.RGB(255, 0, 255),
	"purple":      style.RGB(128, 0, 128),
	"orange":      style.RGB(255, 165, 0),
	"pink":        style.RGB(255, 192, 203),
	"brown":       style.RGB(165, 42, 42),
}
