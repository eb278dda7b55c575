package imaging

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	dimg "github.com/disintegration/imaging"
)

// writeTestImage writes a checkerboard PNG to path.
func writeTestImage(t *testing.T, path string, width, height int) {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/8+y/8)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.Set(x, y, color.NRGBA{R: 30, G: 30, B: 30, A: 255})
			}
		}
	}

	if err := dimg.Save(img, path); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), LoadOptions{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestLoad_Unreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.jpg")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Load(path, LoadOptions{})
	if err == nil {
		t.Fatal("expected error for non-image file")
	}
	if !errors.Is(err, ErrUnreadable) {
		t.Errorf("got %v, want ErrUnreadable", err)
	}
}

func TestLoad_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	writeTestImage(t, path, 64, 48)

	img, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer img.Close()

	if img.Info.Width != 64 || img.Info.Height != 48 {
		t.Errorf("dimensions: got %dx%d, want 64x48", img.Info.Width, img.Info.Height)
	}
	if img.Info.Channels != 3 {
		t.Errorf("channels: got %d, want 3", img.Info.Channels)
	}
	if img.Info.Format != "png" {
		t.Errorf("format: got %q, want png", img.Info.Format)
	}
	if img.Info.FileSizeBytes <= 0 {
		t.Errorf("file size: got %d, want > 0", img.Info.FileSizeBytes)
	}
	if img.Gray.Empty() {
		t.Error("grayscale matrix is empty")
	}
	if img.Gray.Rows() != 48 || img.Gray.Cols() != 64 {
		t.Errorf("gray dimensions: got %dx%d, want 64x48", img.Gray.Cols(), img.Gray.Rows())
	}
}

func TestLoad_MaxDim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wide.png")
	writeTestImage(t, path, 200, 100)

	img, err := Load(path, LoadOptions{MaxDim: 100})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer img.Close()

	if img.Info.Width != 100 || img.Info.Height != 50 {
		t.Errorf("dimensions after fit: got %dx%d, want 100x50", img.Info.Width, img.Info.Height)
	}
	if img.Gray.Cols() != 100 || img.Gray.Rows() != 50 {
		t.Errorf("gray dimensions after fit: got %dx%d, want 100x50", img.Gray.Cols(), img.Gray.Rows())
	}
}

func TestLoad_MaxDimNoUpscale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	writeTestImage(t, path, 40, 30)

	img, err := Load(path, LoadOptions{MaxDim: 100})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer img.Close()

	if img.Info.Width != 40 || img.Info.Height != 30 {
		t.Errorf("small image was resized: got %dx%d, want 40x30", img.Info.Width, img.Info.Height)
	}
}

func TestLoad_Blur(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.png")
	writeTestImage(t, path, 64, 48)

	img, err := Load(path, LoadOptions{BlurSigma: 1.5})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer img.Close()

	if img.Info.Width != 64 || img.Info.Height != 48 {
		t.Errorf("blur changed dimensions: got %dx%d, want 64x48", img.Info.Width, img.Info.Height)
	}
}

func TestFormatFromExt(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"photo.png", "png"},
		{"photo.jpg", "jpeg"},
		{"photo.jpeg", "jpeg"},
		{"anim.gif", "gif"},
		{"scan.tif", "tiff"},
		{"scan.tiff", "tiff"},
		{"old.bmp", "bmp"},
		{"data.webp", "unknown"},
		{"noext", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := formatFromExt(tt.path); got != tt.want {
				t.Errorf("formatFromExt(%q): got %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
