package imaging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// Sentinel errors returned by Load. Callers match them with errors.Is.
var (
	// ErrNotFound indicates the image path does not exist on disk.
	ErrNotFound = errors.New("image not found")

	// ErrUnreadable indicates the file exists but could not be decoded
	// as an image.
	ErrUnreadable = errors.New("image unreadable")
)

// Info contains metadata about a loaded image file.
type Info struct {
	// Width is the image width in pixels, after any preprocessing.
	Width int `json:"width"`

	// Height is the image height in pixels, after any preprocessing.
	Height int `json:"height"`

	// Channels is the number of color channels (3 for BGR color images).
	Channels int `json:"channels"`

	// Format is the image format guessed from the file extension:
	// "png", "jpeg", "gif", "bmp", "tiff", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Image is a loaded image ready for feature detection.
//
// It holds both the color matrix (BGR, as OpenCV reads it) and the grayscale
// matrix that detectors operate on. Both matrices are backed by native
// memory; call Close when done.
type Image struct {
	// Path is the source file path the image was loaded from.
	Path string

	// Color is the BGR color matrix.
	Color gocv.Mat

	// Gray is the single-channel grayscale matrix used for detection.
	Gray gocv.Mat

	// Info is metadata about the loaded image.
	Info Info
}

// Close releases the native memory held by the image matrices.
func (im *Image) Close() error {
	err := im.Color.Close()
	if gerr := im.Gray.Close(); err == nil {
		err = gerr
	}
	return err
}

// LoadOptions controls optional preprocessing applied before detection.
type LoadOptions struct {
	// MaxDim, when positive, downscales the image so its longest side is
	// at most MaxDim pixels. Aspect ratio is preserved. Useful for very
	// large photographs where detection time grows with pixel count.
	MaxDim int

	// BlurSigma, when positive, applies a Gaussian blur with the given
	// sigma before detection to suppress sensor noise. Typical values
	// are 0.5-2.0; larger values start erasing real features.
	BlurSigma float64
}

// Load reads an image from disk and prepares it for feature detection.
//
// The file must exist (ErrNotFound otherwise) and decode to a non-empty
// image (ErrUnreadable otherwise). The returned Image holds the color
// matrix plus a grayscale conversion; detectors run on the grayscale.
//
// Preprocessing requested via opts happens between decoding and the
// grayscale conversion, so both matrices reflect the preprocessed size.
func Load(path string, opts LoadOptions) (*Image, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrUnreadable, path)
	}

	if opts.MaxDim > 0 || opts.BlurSigma > 0 {
		pre, err := preprocess(mat, opts)
		mat.Close()
		if err != nil {
			return nil, fmt.Errorf("preprocessing %s: %w", path, err)
		}
		mat = pre
	}

	gray := gocv.NewMat()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)

	return &Image{
		Path:  path,
		Color: mat,
		Gray:  gray,
		Info: Info{
			Width:         mat.Cols(),
			Height:        mat.Rows(),
			Channels:      mat.Channels(),
			Format:        formatFromExt(path),
			FileSizeBytes: stat.Size(),
		},
	}, nil
}

// formatFromExt guesses the image format from the file extension.
func formatFromExt(path string) string {
	switch filepath.Ext(path) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	}
	return "unknown"
}
