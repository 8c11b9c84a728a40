package theme_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/wolfyui/wolfy/theme"
	"github.com/wolfyui/wolfy/theme/parser"
	"github.com/wolfyui/wolfy/theme/style"
)

func TestParseSimpleTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wolfy.theme")
	defer teardown()
	//
	tree, err := theme.Parse(`
		* {
			background-color: #1a1a2e;
			text-color: white;
		}

		textbox {
			padding: 10px;
			border-radius: 4px;
		}

		textbox.focused {
			border-color: #e94560;
		}
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	if _, ok := tree.Global("background-color"); !ok {
		t.Error("expected global background-color, isn't set")
	}
	node := tree.Node("textbox")
	if node == nil {
		t.Fatal("expected a textbox node, is nil")
	}
	if states := node.States(); len(states) != 1 || states[0] != "focused" {
		t.Errorf("expected the focused state, is %v", states)
	}
}

func TestPropertyResolutionCascade(t *testing.T) {
	tree, err := theme.Parse(`
		* { text-color: white; }
		entry { text-color: #ff0000; }
		entry.focused { text-color: #00ff00; }
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}

	// unknown element falls back to the global scope
	c := tree.GetColor("unknown", "", "text-color", style.Black)
	if c != style.White {
		t.Errorf("expected global white for unknown element, is %v", c)
	}
	// element base overrides global
	c = tree.GetColor("entry", "", "text-color", style.Black)
	if c.R != 1 || c.G != 0 {
		t.Errorf("expected base red for entry, is %v", c)
	}
	// state overrides base
	c = tree.GetColor("entry", "focused", "text-color", style.Black)
	if c.R != 0 || c.G != 1 {
		t.Errorf("expected state green for entry.focused, is %v", c)
	}
	// unrelated state falls back to base
	c = tree.GetColor("entry", "hovered", "text-color", style.Black)
	if c.R != 1 || c.G != 0 {
		t.Errorf("expected base red for unknown state, is %v", c)
	}
}

func TestInheritShortCircuitsToGlobal(t *testing.T) {
	tree, err := theme.Parse(`
		* { text-color: white; }
		entry { text-color: #ff0000; }
		entry.focused { text-color: inherit; }
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	// inherit resolves from the global map, not from the element base,
	// even though the base entry is the closer scope
	c := tree.GetColor("entry", "focused", "text-color", style.Black)
	if c != style.White {
		t.Errorf("expected inherit to short-circuit to global white, is %v", c)
	}
}

func TestLastWriteWins(t *testing.T) {
	tree, err := theme.Parse(`
		entry { text-color: red; }
		entry { text-color: navy; }
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	c := tree.GetColor("entry", "", "text-color", style.Black)
	if c != style.RGB(0, 0, 128) {
		t.Errorf("expected the later rule to win, is %v", c)
	}
}

func TestPlainNumbers(t *testing.T) {
	tree, err := theme.Parse(`
		textbox {
			font-size: 24;
			border-width: 1;
			border-radius: 4.5;
		}
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	if n := tree.GetNumber("textbox", "", "font-size", 16); n != 24 {
		t.Errorf("expected font-size 24, is %v", n)
	}
	if n := tree.GetNumber("textbox", "", "border-width", 0); n != 1 {
		t.Errorf("expected border-width 1, is %v", n)
	}
	if n := tree.GetNumber("textbox", "", "border-radius", 0); n != 4.5 {
		t.Errorf("expected border-radius 4.5, is %v", n)
	}
}

func TestGettersAreFailSoft(t *testing.T) {
	tree, err := theme.Parse(`entry { text-color: "not a color"; }`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	// type mismatch degrades to the default
	if c := tree.GetColor("entry", "", "text-color", style.Blue); c != style.Blue {
		t.Errorf("expected mismatched value to yield the default, is %v", c)
	}
	// absent property degrades to the default
	if n := tree.GetNumber("entry", "", "no-such-prop", 7); n != 7 {
		t.Errorf("expected absent property to yield the default, is %v", n)
	}
	// unknown element and state degrade to the default
	if b := tree.GetBool("ghost", "spooked", "visible", true); !b {
		t.Error("expected unknown element to yield the default, doesn't")
	}
}

func TestDefaultRasiFormat(t *testing.T) {
	tree, err := theme.Parse(`
/* Wolfy Default Theme */

* {
    background-color: #1e1e1e;
    text-color: #d4d4d4;
}

textbox {
    background-color: #2d2d2d;
    text-color: #ffffff;
    border-width: 1;
    border-color: #3c3c3c;
    border-radius: 4;
    padding-top: 8;
    padding-right: 12;
    padding-bottom: 8;
    padding-left: 12;
    font-size: 24;
    placeholder-color: #808080;
    cursor-color: #ffffff;
    selection-color: #264f78;
}

textbox.focused {
    border-color: #007acc;
}
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	if n := tree.GetNumber("textbox", "", "font-size", 16); n != 24 {
		t.Errorf("expected font-size 24, is %v", n)
	}
	bg := tree.GetColor("textbox", "", "background-color", style.Black)
	if bg != style.RGB(45, 45, 45) {
		t.Errorf("expected #2d2d2d background, is %v", bg)
	}
	border := tree.GetColor("textbox", "focused", "border-color", style.Black)
	if border != style.RGB(0, 122, 204) {
		t.Errorf("expected #007acc focused border, is %v", border)
	}
}

func TestChildrenArray(t *testing.T) {
	tree, err := theme.Parse(`
		mainbox {
			orientation: horizontal;
			children: [ "wallpaper-panel", "listbox" ];
		}

		listbox {
			orientation: vertical;
			children: [ "inputbar", "listview" ];
		}

		leaf-widget {
			children: [];
		}
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	children := tree.GetChildren("mainbox")
	if len(children) != 2 || children[0] != "wallpaper-panel" || children[1] != "listbox" {
		t.Errorf("expected ordered mainbox children, is %v", children)
	}
	children = tree.GetChildren("listbox")
	if len(children) != 2 || children[0] != "inputbar" {
		t.Errorf("expected ordered listbox children, is %v", children)
	}
	if children = tree.GetChildren("leaf-widget"); len(children) != 0 {
		t.Errorf("expected empty children, is %v", children)
	}
	if children = tree.GetChildren("nonexistent"); len(children) != 0 {
		t.Errorf("expected no children for unknown element, is %v", children)
	}
}

func TestOrientationGetter(t *testing.T) {
	tree, err := theme.Parse(`
		mainbox { orientation: horizontal; }
		listbox { orientation: vertical; }
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	if o := tree.GetOrientation("mainbox", style.Vertical); o != style.Horizontal {
		t.Errorf("expected horizontal mainbox, is %v", o)
	}
	if o := tree.GetOrientation("listbox", style.Horizontal); o != style.Vertical {
		t.Errorf("expected vertical listbox, is %v", o)
	}
	if o := tree.GetOrientation("unknown", style.Vertical); o != style.Vertical {
		t.Errorf("expected the default for an unknown element, is %v", o)
	}
}

func TestImageGetter(t *testing.T) {
	tree, err := theme.Parse(`
		wallpaper-panel { background-image: url("auto", width); }
		icon { background-image: url("/path/to/image.png"); }
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	img, ok := tree.GetImage("wallpaper-panel", "", "background-image")
	if !ok || img.Path != "auto" || img.Scale != style.ScaleWidth {
		t.Errorf("expected auto wallpaper scaled by width, is %v %v", img, ok)
	}
	img, ok = tree.GetImage("icon", "", "background-image")
	if !ok || img.Path != "/path/to/image.png" || img.Scale != style.ScaleNone {
		t.Errorf("expected unscaled icon image, is %v %v", img, ok)
	}
	if _, ok = tree.GetImage("icon", "", "no-such-prop"); ok {
		t.Error("expected absence for missing image property, isn't")
	}
}

func TestExpandAndSpacing(t *testing.T) {
	tree, err := theme.Parse(`
		container {
			expand: true;
			spacing: 10px;
		}

		fixed-widget {
			expand: false;
			spacing: 2em;
		}
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	if !tree.GetExpand("container", false) {
		t.Error("expected container to expand, doesn't")
	}
	if tree.GetExpand("fixed-widget", true) {
		t.Error("expected fixed-widget not to expand, does")
	}
	if d := tree.GetSpacing("container", style.Px(0)); d != style.Px(10) {
		t.Errorf("expected 10px spacing, is %v", d)
	}
	if d := tree.GetSpacing("fixed-widget", style.Px(0)); d != style.Em(2) {
		t.Errorf("expected 2em spacing, is %v", d)
	}
}

func TestPaddingGetter(t *testing.T) {
	tree, err := theme.Parse(`
		a { padding: 10px 20px; }
		b { padding: 1px 2px 3px 4px; }
		c { padding: 5; }
	`)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	p := tree.GetPadding("a", "", "padding", style.Padding{})
	if p.Top != style.Px(10) || p.Bottom != style.Px(10) || p.Left != style.Px(20) || p.Right != style.Px(20) {
		t.Errorf("expected 2-value expansion, is %v", p)
	}
	p = tree.GetPadding("b", "", "padding", style.Padding{})
	if p.Top != style.Px(1) || p.Right != style.Px(2) || p.Bottom != style.Px(3) || p.Left != style.Px(4) {
		t.Errorf("expected 4-value sides, is %v", p)
	}
	p = tree.GetPadding("c", "", "padding", style.Padding{})
	if p.Top != style.Px(5) || p.Left != style.Px(5) {
		t.Errorf("expected uniform padding from a bare number, is %v", p)
	}
}

func TestParseErrorSurfacesAsThemeError(t *testing.T) {
	_, err := theme.Parse("entry { broken }")
	if err == nil {
		t.Fatal("expected a theme error, got none")
	}
	var themeErr *theme.Error
	if !errors.As(err, &themeErr) {
		t.Fatalf("expected *theme.Error, is %T", err)
	}
	var parseErr *parser.ParseError
	if !errors.As(err, &parseErr) {
		t.Error("expected the parse error to be wrapped, isn't")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.rasi")
	src := `* { text-color: white; } entry { text-color: red; }`
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	tree, err := theme.Load(path)
	if err != nil {
		t.Fatalf("cannot load theme file: %v", err)
	}
	if c := tree.GetColor("entry", "", "text-color", style.Black); c != style.Red {
		t.Errorf("expected red entry text, is %v", c)
	}

	_, err = theme.Load(filepath.Join(dir, "missing.rasi"))
	if err == nil {
		t.Fatal("expected an error for a missing file, got none")
	}
	var themeErr *theme.Error
	if !errors.As(err, &themeErr) || themeErr.Path == "" {
		t.Errorf("expected a load error carrying the path, is %v", err)
	}
}

func TestParseIdempotence(t *testing.T) {
	src := `
		* { text-color: white; spacing: 4px; }
		entry { text-color: #ff0000; padding: 10px 20px; }
		entry.focused { text-color: inherit; }
		mainbox { children: [ "a", "b" ]; orientation: horizontal; }
	`
	one, err := theme.Parse(src)
	if err != nil {
		t.Fatalf("cannot parse theme: %v", err)
	}
	two, err := theme.Parse(src)
	if err != nil {
		t.Fatalf("cannot parse theme twice: %v", err)
	}
	type probe struct{ element, state, property string }
	for _, q := range []probe{
		{"entry", "", "text-color"},
		{"entry", "focused", "text-color"},
		{"unknown", "", "text-color"},
		{"mainbox", "", "orientation"},
	} {
		a := one.GetColor(q.element, q.state, q.property, style.Black)
		b := two.GetColor(q.element, q.state, q.property, style.Black)
		if a != b {
			t.Errorf("expected identical colors for %v, have %v and %v", q, a, b)
		}
	}
	if a, b := one.GetChildren("mainbox"), two.GetChildren("mainbox"); len(a) != len(b) {
		t.Errorf("expected identical children, have %v and %v", a, b)
	}
}

func TestEmptyTree(t *testing.T) {
	tree := theme.Empty()
	if c := tree.GetColor("entry", "", "text-color", style.Red); c != style.Red {
		t.Errorf("expected the default from an empty tree, is %v", c)
	}
	if els := tree.Elements(); len(els) != 0 {
		t.Errorf("expected no elements, is %v", els)
	}
}
