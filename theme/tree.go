package theme

import (
	"fmt"
	"os"
	"sort"

	"github.com/wolfyui/wolfy/theme/ast"
	"github.com/wolfyui/wolfy/theme/parser"
	"github.com/wolfyui/wolfy/theme/style"
)

// Error is the umbrella error of theme loading: it wraps either an I/O
// failure or a parse failure.
type Error struct {
	Op   string // "load" or "parse"
	Path string // set for load errors
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("theme %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("theme %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Node holds the styling of one named element: a property map for the
// base state plus nested property maps per interaction state. A state
// map never implicitly contains base entries; fallback happens
// explicitly during resolution.
type Node struct {
	properties map[string]ast.Value
	states     map[string]map[string]ast.Value
}

func newNode() *Node {
	return &Node{properties: make(map[string]ast.Value)}
}

func (n *Node) set(name string, v ast.Value) {
	n.properties[name] = v
}

func (n *Node) setState(state, name string, v ast.Value) {
	if n.states == nil {
		n.states = make(map[string]map[string]ast.Value)
	}
	m := n.states[state]
	if m == nil {
		m = make(map[string]ast.Value)
		n.states[state] = m
	}
	m[name] = v
}

// get resolves a property within this node: the state map first (when a
// state is given), then the base map.
func (n *Node) get(name, state string) (ast.Value, bool) {
	if state != "" {
		if v, ok := n.states[state][name]; ok {
			return v, true
		}
	}
	v, ok := n.properties[name]
	return v, ok
}

// Property returns a base-state property value.
func (n *Node) Property(name string) (ast.Value, bool) {
	v, ok := n.properties[name]
	return v, ok
}

// StateProperty returns a property value of a specific state map.
func (n *Node) StateProperty(state, name string) (ast.Value, bool) {
	v, ok := n.states[state][name]
	return v, ok
}

// Properties returns the base-state property names, sorted.
func (n *Node) Properties() []string {
	return sortedKeys(n.properties)
}

// States returns the state names with overrides, sorted.
func (n *Node) States() []string {
	names := make([]string, 0, len(n.states))
	for s := range n.states {
		names = append(names, s)
	}
	sort.Strings(names)
	return names
}

// StateProperties returns the property names of one state map, sorted.
func (n *Node) StateProperties(state string) []string {
	return sortedKeys(n.states[state])
}

// Tree is the resolver's output: a global property map populated from
// '*' rules plus one Node per named element. A Tree is built once from
// a parsed stylesheet and is immutable afterwards.
type Tree struct {
	globals  map[string]ast.Value
	elements map[string]*Node
}

// Empty returns a tree without any rules. Every getter returns its
// default. Useful as the fallback when loading a theme fails.
func Empty() *Tree {
	return &Tree{
		globals:  make(map[string]ast.Value),
		elements: make(map[string]*Node),
	}
}

// Parse compiles theme source text into a tree.
func Parse(src string) (*Tree, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return nil, &Error{Op: "parse", Err: err}
	}
	tree := FromStylesheet(sheet)
	tracer().Infof("theme parsed: %d globals, %d elements",
		len(tree.globals), len(tree.elements))
	return tree, nil
}

// Load reads a theme file and parses it.
func Load(path string) (*Tree, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Err: err}
	}
	tree, err := Parse(string(content))
	if err != nil {
		return nil, &Error{Op: "load", Path: path, Err: err.(*Error).Err}
	}
	return tree, nil
}

// FromStylesheet builds a tree by iterating rules in source order.
// Later rules overwrite earlier ones for the same (selector, property)
// pair; that last-write-wins rule is the entire specificity model.
func FromStylesheet(sheet *ast.Stylesheet) *Tree {
	tree := Empty()
	for _, rule := range sheet.Rules {
		for _, sel := range rule.Selectors {
			switch {
			case sel.Universal:
				for _, prop := range rule.Properties {
					tree.globals[prop.Name] = prop.Value
				}
			default:
				node := tree.elements[sel.Name]
				if node == nil {
					node = newNode()
					tree.elements[sel.Name] = node
				}
				for _, prop := range rule.Properties {
					if sel.State != "" {
						node.setState(sel.State, prop.Name, prop.Value)
					} else {
						node.set(prop.Name, prop.Value)
					}
				}
			}
		}
	}
	return tree
}

// GetValue resolves a property through the cascade: the element's state
// map (when a state is given), the element's base map, then the global
// map. A value of the bare identifier 'inherit' found in an element
// scope is discarded and the property resolves from the global map
// instead. state may be empty for the base state.
func (t *Tree) GetValue(element, state, property string) (ast.Value, bool) {
	if node := t.elements[element]; node != nil {
		if v, ok := node.get(property, state); ok {
			if v.Kind() == ast.KindIdent {
				if s, _ := v.AsString(); s == "inherit" {
					v, ok := t.globals[property]
					return v, ok
				}
			}
			return v, true
		}
	}
	v, ok := t.globals[property]
	return v, ok
}

// GetColor resolves a color property, falling back to the default when
// the property is missing or not color-like.
func (t *Tree) GetColor(element, state, property string, def style.Color) style.Color {
	if v, ok := t.GetValue(element, state, property); ok {
		if c, ok := v.AsColor(); ok {
			return c
		}
	}
	return def
}

// GetDistance resolves a distance property. Plain numbers count as
// pixels.
func (t *Tree) GetDistance(element, state, property string, def style.Distance) style.Distance {
	if v, ok := t.GetValue(element, state, property); ok {
		if d, ok := v.AsDistance(); ok {
			return d
		}
	}
	return def
}

// GetPadding resolves a padding property, expanding the 1/2/4-value
// shorthands.
func (t *Tree) GetPadding(element, state, property string, def style.Padding) style.Padding {
	if v, ok := t.GetValue(element, state, property); ok {
		if p, ok := v.AsPadding(); ok {
			return p
		}
	}
	return def
}

// GetString resolves a string property; bare identifiers count.
func (t *Tree) GetString(element, state, property, def string) string {
	if v, ok := t.GetValue(element, state, property); ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return def
}

// GetNumber resolves a numeric property.
func (t *Tree) GetNumber(element, state, property string, def float64) float64 {
	if v, ok := t.GetValue(element, state, property); ok {
		if n, ok := v.AsNumber(); ok {
			return n
		}
	}
	return def
}

// GetBool resolves a boolean property.
func (t *Tree) GetBool(element, state, property string, def bool) bool {
	if v, ok := t.GetValue(element, state, property); ok {
		if b, ok := v.AsBool(); ok {
			return b
		}
	}
	return def
}

// GetChildren returns the ordered child element names of a container,
// taken from its 'children' property. Missing or malformed lists yield
// an empty slice.
func (t *Tree) GetChildren(element string) []string {
	if v, ok := t.GetValue(element, "", "children"); ok {
		if arr, ok := v.AsArray(); ok {
			return arr
		}
	}
	return nil
}

// GetImage resolves an image directive, or reports absence.
func (t *Tree) GetImage(element, state, property string) (style.ImageSource, bool) {
	if v, ok := t.GetValue(element, state, property); ok {
		return v.AsImage()
	}
	return style.ImageSource{}, false
}

// GetOrientation resolves a container's 'orientation' property.
func (t *Tree) GetOrientation(element string, def style.Orientation) style.Orientation {
	if v, ok := t.GetValue(element, "", "orientation"); ok {
		if o, ok := v.AsOrientation(); ok {
			return o
		}
	}
	return def
}

// GetExpand reports whether a widget wants to expand into free space,
// from its 'expand' property.
func (t *Tree) GetExpand(element string, def bool) bool {
	return t.GetBool(element, "", "expand", def)
}

// GetSpacing resolves the spacing between a container's children, from
// its 'spacing' property.
func (t *Tree) GetSpacing(element string, def style.Distance) style.Distance {
	return t.GetDistance(element, "", "spacing", def)
}

// Globals returns the global property names, sorted.
func (t *Tree) Globals() []string {
	return sortedKeys(t.globals)
}

// Global returns a global property value.
func (t *Tree) Global(name string) (ast.Value, bool) {
	v, ok := t.globals[name]
	return v, ok
}

// Elements returns the named element list, sorted.
func (t *Tree) Elements() []string {
	names := make([]string, 0, len(t.elements))
	for n := range t.elements {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Node returns the style node of a named element, or nil.
func (t *Tree) Node(element string) *Node {
	return t.elements[element]
}

func sortedKeys(m map[string]ast.Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
