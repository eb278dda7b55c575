package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// detectorHex assigns each detector a fixed draw color so overlays and
// chart bars stay visually consistent across runs.
var detectorHex = map[string]string{
	"SIFT":  "#2ECC71",
	"ORB":   "#E74C3C",
	"BRISK": "#3498DB",
}

// Color returns the draw color for a detector name. Unknown names get a
// fallback yellow rather than an error; color choice is cosmetic.
func Color(name string) color.RGBA {
	hex, ok := detectorHex[name]
	if !ok {
		hex = "#F1C40F"
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{R: 241, G: 196, B: 15, A: 255}
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
