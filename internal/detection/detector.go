package detection

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gocv.io/x/gocv"

	"github.com/featurelab/keypoints/internal/imaging"
)

// ErrUnsupported indicates a detector name outside the supported set.
// Callers match it with errors.Is.
var ErrUnsupported = errors.New("unsupported detector")

// detectorNames is the supported set, in the order DetectAll runs them.
var detectorNames = []string{"SIFT", "ORB", "BRISK"}

// Names returns the supported detector names in stable order.
func Names() []string {
	return append([]string(nil), detectorNames...)
}

// Canonical maps a user-supplied detector name to its canonical uppercase
// form. The second return value reports whether the name is supported.
func Canonical(name string) (string, bool) {
	up := strings.ToUpper(strings.TrimSpace(name))
	for _, n := range detectorNames {
		if n == up {
			return n, true
		}
	}
	return "", false
}

// Keypoint is a detected salient image location.
//
// Position, scale, orientation and response come straight from the
// underlying OpenCV detector and are not reinterpreted here.
type Keypoint struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Size     float64 `json:"size"`
	Angle    float64 `json:"angle"`
	Response float64 `json:"response"`
	Octave   int     `json:"octave"`
	ClassID  int     `json:"class_id"`
}

// Result contains the outcome of running one detector over one image.
type Result struct {
	// Detector is the canonical detector name ("SIFT", "ORB", "BRISK").
	Detector string `json:"detector"`

	// Keypoints are the detected locations. May be empty.
	Keypoints []Keypoint `json:"keypoints"`

	// DescriptorRows is the number of descriptor vectors computed.
	// Equal to len(Keypoints) whenever descriptors were produced.
	DescriptorRows int `json:"descriptor_rows"`

	// DescriptorCols is the length of each descriptor vector
	// (128 for SIFT, 32 for ORB, 64 for BRISK).
	DescriptorCols int `json:"descriptor_cols"`

	// ElapsedMS is the wall-clock detection time in milliseconds.
	ElapsedMS float64 `json:"elapsed_ms"`
}

// featureDetector is the common surface of the OpenCV detectors we dispatch
// to. SIFT, ORB and BRISK all satisfy it.
type featureDetector interface {
	DetectAndCompute(src gocv.Mat, mask gocv.Mat) ([]gocv.KeyPoint, gocv.Mat)
	Close() error
}

// newDetector constructs the OpenCV detector for a canonical name.
// The caller must Close the returned detector.
func newDetector(name string) featureDetector {
	switch name {
	case "SIFT":
		d := gocv.NewSIFT()
		return &d
	case "ORB":
		d := gocv.NewORB()
		return &d
	case "BRISK":
		d := gocv.NewBRISK()
		return &d
	}
	return nil
}

// Detect runs the named detector over the image's grayscale matrix and
// returns keypoints plus descriptor shape.
//
// The name is matched case-insensitively against the supported set;
// anything else returns ErrUnsupported. Detection itself is a single
// delegated detectAndCompute call.
func Detect(img *imaging.Image, name string) (*Result, error) {
	canon, ok := Canonical(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q (choose from %s)",
			ErrUnsupported, name, strings.Join(detectorNames, ", "))
	}

	det := newDetector(canon)
	defer det.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	start := time.Now()
	kps, desc := det.DetectAndCompute(img.Gray, mask)
	elapsed := time.Since(start)
	defer desc.Close()

	res := &Result{
		Detector:  canon,
		Keypoints: make([]Keypoint, 0, len(kps)),
		ElapsedMS: float64(elapsed.Microseconds()) / 1000.0,
	}
	for _, kp := range kps {
		res.Keypoints = append(res.Keypoints, Keypoint{
			X:        kp.X,
			Y:        kp.Y,
			Size:     kp.Size,
			Angle:    kp.Angle,
			Response: kp.Response,
			Octave:   kp.Octave,
			ClassID:  kp.ClassID,
		})
	}
	if !desc.Empty() {
		res.DescriptorRows = desc.Rows()
		res.DescriptorCols = desc.Cols()
	}
	return res, nil
}

// DetectAll runs every supported detector over the image, in Names() order.
func DetectAll(img *imaging.Image) ([]*Result, error) {
	results := make([]*Result, 0, len(detectorNames))
	for _, name := range detectorNames {
		res, err := Detect(img, name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		results = append(results, res)
	}
	return results, nil
}
