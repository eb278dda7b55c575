package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
	"gocv.io/x/gocv"
)

// preprocess applies the optional downscale and denoise steps to a decoded
// color matrix. The work happens in image.Image space; the result is
// converted back to a BGR matrix for detection.
func preprocess(mat gocv.Mat, opts LoadOptions) (gocv.Mat, error) {
	img, err := mat.ToImage()
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to convert matrix: %w", err)
	}

	if opts.MaxDim > 0 {
		b := img.Bounds()
		if b.Dx() > opts.MaxDim || b.Dy() > opts.MaxDim {
			img = imaging.Fit(img, opts.MaxDim, opts.MaxDim, imaging.Lanczos)
		}
	}

	if opts.BlurSigma > 0 {
		img = blur.Gaussian(img, opts.BlurSigma)
	}

	return matFromImage(img)
}

// matFromImage converts a Go image into a BGR matrix.
//
// The image is first normalized to NRGBA so the pixel buffer has a known
// R,G,B,A layout, then handed to OpenCV with an explicit RGBA-to-BGR
// conversion. This avoids any ambiguity about channel order.
func matFromImage(img image.Image) (gocv.Mat, error) {
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()

	rgba, err := gocv.NewMatFromBytes(b.Dy(), b.Dx(), gocv.MatTypeCV8UC4, nrgba.Pix)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("failed to build matrix: %w", err)
	}
	defer rgba.Close()

	bgr := gocv.NewMat()
	gocv.CvtColor(rgba, &bgr, gocv.ColorRGBAToBGR)
	return bgr, nil
}
