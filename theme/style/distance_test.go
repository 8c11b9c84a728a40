package style_test

import (
	"testing"

	"github.com/wolfyui/wolfy/theme/style"
)

func TestDistanceToPixels(t *testing.T) {
	ctx := style.LayoutContext{
		DPI:          96,
		ScaleFactor:  1.5,
		BaseFontSize: 16,
		ParentSize:   200,
	}

	if px := style.Px(10).ToPixels(ctx); px != 15.0 {
		t.Errorf("expected 10px to resolve to 15.0, is %v", px)
	}
	if px := style.Em(1).ToPixels(ctx); px != 24.0 {
		t.Errorf("expected 1em to resolve to 24.0, is %v", px)
	}
	if px := style.Percent(50).ToPixels(ctx); px != 100.0 {
		t.Errorf("expected 50%% to resolve to 100.0, is %v", px)
	}
	mm := style.Mm(25.4).ToPixels(ctx)
	if mm < 95.99 || mm > 96.01 {
		t.Errorf("expected 25.4mm to resolve to one inch of dots, is %v", mm)
	}
}

func TestDistanceString(t *testing.T) {
	if s := style.Px(10).String(); s != "10px" {
		t.Errorf("expected 10px, is %q", s)
	}
	if s := style.Percent(50).String(); s != "50%" {
		t.Errorf("expected 50%%, is %q", s)
	}
	if s := style.Em(1.5).String(); s != "1.5em" {
		t.Errorf("expected 1.5em, is %q", s)
	}
}

func TestPaddingShorthandExpansion(t *testing.T) {
	p := style.Symmetric(style.Px(10), style.Px(20))
	if p.Top != style.Px(10) || p.Bottom != style.Px(10) {
		t.Errorf("expected top=bottom=10px, is %v/%v", p.Top, p.Bottom)
	}
	if p.Left != style.Px(20) || p.Right != style.Px(20) {
		t.Errorf("expected left=right=20px, is %v/%v", p.Left, p.Right)
	}

	u := style.Uniform(style.Px(5))
	if u.Top != u.Left || u.Left != u.Bottom || u.Bottom != u.Right {
		t.Errorf("expected uniform padding on all sides, is %v", u)
	}

	q := style.NewPadding(style.Px(1), style.Px(2), style.Px(3), style.Px(4))
	if q.Top.Value != 1 || q.Right.Value != 2 || q.Bottom.Value != 3 || q.Left.Value != 4 {
		t.Errorf("expected top/right/bottom/left order, is %v", q)
	}
}

func TestRectInset(t *testing.T) {
	ctx := style.DefaultContext()
	p := style.Uniform(style.Px(10)).ToPixels(ctx)
	r := style.Rect{X: 0, Y: 0, Width: 100, Height: 50}.Inset(p)
	if r.X != 10 || r.Y != 10 || r.Width != 80 || r.Height != 30 {
		t.Errorf("expected inset rect 10,10,80,30, is %+v", r)
	}
}

func TestOrientationParsing(t *testing.T) {
	if o, ok := style.ParseOrientation("Horizontal"); !ok || o != style.Horizontal {
		t.Errorf("expected Horizontal to parse, is %v %v", o, ok)
	}
	if _, ok := style.ParseOrientation("diagonal"); ok {
		t.Error("expected diagonal to be rejected, isn't")
	}
}

func TestImageScaleParsing(t *testing.T) {
	for in, want := range map[string]style.ImageScale{
		"none": style.ScaleNone, "width": style.ScaleWidth,
		"height": style.ScaleHeight, "Both": style.ScaleBoth,
	} {
		got, ok := style.ParseImageScale(in)
		if !ok || got != want {
			t.Errorf("expected %q to parse as %v, is %v", in, want, got)
		}
	}
}
