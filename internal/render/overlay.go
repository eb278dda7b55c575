package render

import (
	"fmt"
	"path/filepath"

	"gocv.io/x/gocv"

	"github.com/featurelab/keypoints/internal/detection"
	"github.com/featurelab/keypoints/internal/imaging"
)

// OverlayOptions controls keypoint overlay rendering.
type OverlayOptions struct {
	// OutDir is the directory the overlay file is written into.
	// Empty means the current working directory.
	OutDir string

	// Quality is the JPEG quality (1-100). Zero means 95.
	Quality int

	// Rich draws keypoints as circles sized by scale with an orientation
	// tick, instead of plain dots.
	Rich bool
}

// Overlay draws a detection result's keypoints over the source image and
// writes keypoints_<DETECTOR>.jpg. It returns the written path.
func Overlay(img *imaging.Image, r *detection.Result, opts OverlayOptions) (string, error) {
	out := annotate(img, r, opts.Rich)
	defer out.Close()

	quality := opts.Quality
	if quality <= 0 {
		quality = 95
	}

	path := filepath.Join(opts.OutDir, fmt.Sprintf("keypoints_%s.jpg", r.Detector))
	params := []int{gocv.IMWriteJpegQuality, quality}
	if ok := gocv.IMWriteWithParams(path, out, params); !ok {
		return "", fmt.Errorf("failed to write overlay %s", path)
	}
	return path, nil
}

// annotate clones the color matrix and draws the result's keypoints on it
// in the detector's palette color. The caller must Close the returned Mat.
func annotate(img *imaging.Image, r *detection.Result, rich bool) gocv.Mat {
	out := img.Color.Clone()
	if len(r.Keypoints) == 0 {
		return out
	}

	kps := make([]gocv.KeyPoint, 0, len(r.Keypoints))
	for _, kp := range r.Keypoints {
		kps = append(kps, gocv.KeyPoint{
			X:        kp.X,
			Y:        kp.Y,
			Size:     kp.Size,
			Angle:    kp.Angle,
			Response: kp.Response,
			Octave:   kp.Octave,
			ClassID:  kp.ClassID,
		})
	}

	flag := gocv.DrawDefault
	if rich {
		flag = gocv.DrawRichKeyPoints
	}
	gocv.DrawKeyPoints(img.Color, kps, &out, Color(r.Detector), flag)
	return out
}
