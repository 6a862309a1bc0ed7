package render

import (
	"image/color"
	"testing"
)

func TestResolveColor(t *testing.T) {
	tests := []struct {
		name  string
		hex   string
		alpha float64
		want  color.RGBA
	}{
		{"opaque red", "#ff0000", 1, color.RGBA{R: 255, A: 255}},
		{"half green premultiplied", "#00ff00", 0.5, color.RGBA{G: 128, A: 128}},
		{"zero alpha", "#0000ff", 0, color.RGBA{}},
		{"alpha clamped high", "#ff0000", 2, color.RGBA{R: 255, A: 255}},
		{"alpha clamped low", "#ff0000", -1, color.RGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveColor(tt.hex, tt.alpha); got != tt.want {
				t.Errorf("ResolveColor(%q, %v) = %v, want %v", tt.hex, tt.alpha, got, tt.want)
			}
		})
	}
}

func TestResolveColorBadHexFallsBack(t *testing.T) {
	got := ResolveColor("not-a-color", 1)
	if got.A != 255 {
		t.Errorf("fallback alpha = %d, want 255", got.A)
	}
	if got.R != got.G || got.G != got.B {
		t.Errorf("fallback not gray: %v", got)
	}
}

func TestLighten(t *testing.T) {
	if got := Lighten("#000000", 1); got != "#ffffff" {
		t.Errorf("Lighten(black, 1) = %q, want #ffffff", got)
	}
	if got := Lighten("#336699", 0); got != "#336699" {
		t.Errorf("Lighten(c, 0) = %q, want unchanged", got)
	}
	if got := Lighten("bogus", 0.5); got != "bogus" {
		t.Errorf("Lighten on bad hex = %q, want input back", got)
	}
}

func TestThemePaletteStyle(t *testing.T) {
	th := DarkTheme()
	n := len(th.Palette)
	if n == 0 {
		t.Fatal("dark theme has no palette")
	}
	a := th.PaletteStyle(0)
	b := th.PaletteStyle(n) // wraps around
	if a.Fill == nil || a.Stroke == nil {
		t.Fatal("palette style missing fill or stroke")
	}
	if a.Fill.Color != b.Fill.Color {
		t.Errorf("palette did not wrap: %q vs %q", a.Fill.Color, b.Fill.Color)
	}
}

func TestHighlightStyle(t *testing.T) {
	st := DarkTheme().HighlightStyle()
	if st.Fill != nil {
		t.Error("highlight style should not fill")
	}
	if st.Stroke == nil || st.Stroke.Width <= 1 {
		t.Error("highlight stroke should be wider than default")
	}
}
