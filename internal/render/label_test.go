package render

import (
	"image"
	"image/color"
	"testing"
)

func TestTextWidth(t *testing.T) {
	tests := []struct {
		text  string
		scale int
		want  int
	}{
		{"", 1, 0},
		{"A", 1, 4},
		{"AB", 1, 8},
		{"A", 2, 8},
		{"SIFT", 2, 32},
	}

	for _, tt := range tests {
		if got := textWidth(tt.text, tt.scale); got != tt.want {
			t.Errorf("textWidth(%q, %d): got %d, want %d", tt.text, tt.scale, got, tt.want)
		}
	}
}

func TestDrawText(t *testing.T) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 40, 12))
	fg := color.NRGBA{R: 255, A: 255}

	drawText(canvas, 0, 0, "I", 1, fg)

	// 'I' top row is fully lit, second row lights only the center column.
	lit := []image.Point{{0, 0}, {1, 0}, {2, 0}, {1, 1}}
	for _, p := range lit {
		if canvas.NRGBAAt(p.X, p.Y) != fg {
			t.Errorf("pixel (%d,%d) not lit", p.X, p.Y)
		}
	}
	dark := []image.Point{{0, 1}, {2, 1}}
	for _, p := range dark {
		if canvas.NRGBAAt(p.X, p.Y) == fg {
			t.Errorf("pixel (%d,%d) unexpectedly lit", p.X, p.Y)
		}
	}
}

func TestDrawText_Lowercase(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 20, 8))
	b := image.NewNRGBA(image.Rect(0, 0, 20, 8))
	fg := color.NRGBA{R: 255, A: 255}

	drawText(a, 0, 0, "orb", 1, fg)
	drawText(b, 0, 0, "ORB", 1, fg)

	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatal("lowercase and uppercase renders differ")
		}
	}
}

func TestDrawText_OutOfBounds(t *testing.T) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	// Must not panic when text extends past the canvas.
	drawText(canvas, -5, -5, "BRISK", 3, color.NRGBA{R: 255, A: 255})
	drawText(canvas, 8, 8, "1234567890", 2, color.NRGBA{R: 255, A: 255})
}
