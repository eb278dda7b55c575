package render

import (
	"image"
	"image/color"
	"strings"
)

// glyphs is a minimal 3x5 bitmap font covering uppercase letters, digits and
// the punctuation the chart labels need. Each glyph is five rows of three
// cells; '1' marks a lit pixel.
var glyphs = map[rune][]string{
	'A': {"010", "101", "111", "101", "101"},
	'B': {"110", "101", "110", "101", "110"},
	'C': {"011", "100", "100", "100", "011"},
	'D': {"110", "101", "101", "101", "110"},
	'E': {"111", "100", "110", "100", "111"},
	'F': {"111", "100", "110", "100", "100"},
	'G': {"011", "100", "101", "101", "011"},
	'H': {"101", "101", "111", "101", "101"},
	'I': {"111", "010", "010", "010", "111"},
	'J': {"001", "001", "001", "101", "010"},
	'K': {"101", "110", "100", "110", "101"},
	'L': {"100", "100", "100", "100", "111"},
	'M': {"101", "111", "111", "101", "101"},
	'N': {"101", "111", "101", "101", "101"},
	'O': {"111", "101", "101", "101", "111"},
	'P': {"110", "101", "110", "100", "100"},
	'Q': {"111", "101", "101", "111", "001"},
	'R': {"110", "101", "110", "101", "101"},
	'S': {"011", "100", "010", "001", "110"},
	'T': {"111", "010", "010", "010", "010"},
	'U': {"101", "101", "101", "101", "111"},
	'V': {"101", "101", "101", "101", "010"},
	'W': {"101", "101", "111", "111", "101"},
	'X': {"101", "101", "010", "101", "101"},
	'Y': {"101", "101", "010", "010", "010"},
	'Z': {"111", "001", "010", "100", "111"},
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
	'.': {"000", "000", "000", "000", "010"},
	':': {"000", "010", "000", "010", "000"},
	'-': {"000", "000", "111", "000", "000"},
	' ': {"000", "000", "000", "000", "000"},
}

const (
	glyphRows = 5
	glyphCols = 3
)

// textWidth returns the pixel width of a string drawn at the given scale.
func textWidth(text string, scale int) int {
	return len(text) * (glyphCols + 1) * scale
}

// textHeight returns the pixel height of text drawn at the given scale.
func textHeight(scale int) int {
	return glyphRows * scale
}

// drawText renders text onto img at (x, y) using the bitmap font, scaled by
// scale. Lowercase input is uppercased; characters without a glyph advance
// the cursor but draw nothing. Pixels outside the image bounds are skipped.
func drawText(img *image.NRGBA, x, y int, text string, scale int, fg color.Color) {
	if scale < 1 {
		scale = 1
	}
	bounds := img.Bounds()
	cx := x
	for _, ch := range strings.ToUpper(text) {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += (glyphCols + 1) * scale
			continue
		}
		for row, line := range glyph {
			for col, cell := range line {
				if cell != '1' {
					continue
				}
				for dy := 0; dy < scale; dy++ {
					for dx := 0; dx < scale; dx++ {
						px := cx + col*scale + dx
						py := y + row*scale + dy
						if px >= bounds.Min.X && px < bounds.Max.X &&
							py >= bounds.Min.Y && py < bounds.Max.Y {
							img.Set(px, py, fg)
						}
					}
				}
			}
		}
		cx += (glyphCols + 1) * scale
	}
}
