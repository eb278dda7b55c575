package render

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	dimg "github.com/disintegration/imaging"

	"github.com/featurelab/keypoints/internal/detection"
	"github.com/featurelab/keypoints/internal/imaging"
)

// ChartFileName is the comparison chart output file name.
const ChartFileName = "detector_comparison.png"

const (
	chartMargin     = 16
	chartThumbWidth = 220
	chartColGap     = 20
	chartBarMax     = 120
	chartBarWidth   = 60
	chartTextScale  = 2
)

// ChartOptions controls comparison chart rendering.
type ChartOptions struct {
	// OutDir is the directory the chart is written into.
	// Empty means the current working directory.
	OutDir string

	// Rich draws the per-detector thumbnails with scale/orientation
	// circles instead of plain dots.
	Rich bool
}

// Chart renders a side-by-side comparison of detection results: one column
// per detector with an annotated thumbnail, a bar proportional to keypoint
// count, and name/count/timing labels. It writes detector_comparison.png
// and returns the written path.
func Chart(img *imaging.Image, results []*detection.Result, opts ChartOptions) (string, error) {
	if len(results) == 0 {
		return "", fmt.Errorf("no detection results to chart")
	}

	thumbs := make([]image.Image, 0, len(results))
	for _, r := range results {
		mat := annotate(img, r, opts.Rich)
		goImg, err := mat.ToImage()
		mat.Close()
		if err != nil {
			return "", fmt.Errorf("failed to convert annotated image: %w", err)
		}
		thumbs = append(thumbs, dimg.Resize(goImg, chartThumbWidth, 0, dimg.Lanczos))
	}

	canvas := composeChart(thumbs, results)

	path := filepath.Join(opts.OutDir, ChartFileName)
	if err := dimg.Save(canvas, path); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}
	return path, nil
}

// composeChart lays out thumbnails, bars and labels on a single canvas.
// thumbs and results must have equal length.
func composeChart(thumbs []image.Image, results []*detection.Result) *image.NRGBA {
	n := len(results)

	thumbH := 0
	for _, t := range thumbs {
		if h := t.Bounds().Dy(); h > thumbH {
			thumbH = h
		}
	}

	maxCount := 0
	for _, r := range results {
		if len(r.Keypoints) > maxCount {
			maxCount = len(r.Keypoints)
		}
	}

	lineH := textHeight(chartTextScale) + 4
	titleY := chartMargin
	thumbY := titleY + textHeight(chartTextScale) + 12
	barBottom := thumbY + thumbH + 12 + chartBarMax
	labelY := barBottom + 8

	width := chartMargin*2 + n*chartThumbWidth + (n-1)*chartColGap
	height := labelY + 3*lineH + chartMargin

	canvas := dimg.New(width, height, color.NRGBA{R: 250, G: 250, B: 250, A: 255})

	for i, t := range thumbs {
		x0 := chartMargin + i*(chartThumbWidth+chartColGap)
		canvas = dimg.Paste(canvas, t, image.Pt(x0, thumbY))
	}

	dark := color.NRGBA{R: 40, G: 40, B: 40, A: 255}

	title := "DETECTOR COMPARISON"
	drawText(canvas, (width-textWidth(title, chartTextScale))/2, titleY, title, chartTextScale, dark)

	for i, r := range results {
		x0 := chartMargin + i*(chartThumbWidth+chartColGap)
		center := x0 + chartThumbWidth/2

		h := barHeight(len(r.Keypoints), maxCount)
		bar := image.Rect(center-chartBarWidth/2, barBottom-h, center+chartBarWidth/2, barBottom)
		fillRect(canvas, bar, Color(r.Detector))

		lines := []string{
			r.Detector,
			fmt.Sprintf("%d KEYPOINTS", len(r.Keypoints)),
			fmt.Sprintf("%.1f MS", r.ElapsedMS),
		}
		for j, line := range lines {
			drawText(canvas, center-textWidth(line, chartTextScale)/2, labelY+j*lineH,
				line, chartTextScale, dark)
		}
	}

	return canvas
}

// barHeight scales a keypoint count into bar pixels against the maximum
// count across all detectors. A zero maximum yields zero-height bars.
func barHeight(count, maxCount int) int {
	if maxCount <= 0 || count <= 0 {
		return 0
	}
	return count * chartBarMax / maxCount
}

// fillRect fills a rectangle on the canvas, clipped to the canvas bounds.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
