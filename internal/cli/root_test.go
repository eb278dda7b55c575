package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/featurelab/keypoints/internal/config"
	"github.com/featurelab/keypoints/internal/detection"
)

func execRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestMergeConfig(t *testing.T) {
	base := config.Default()
	o := options{outDir: "/renders", quality: 70, maxDim: 800, blur: 2, rich: false}

	got := mergeConfig(base, o, func(string) bool { return true })
	if got.OutDir != "/renders" {
		t.Errorf("OutDir: got %q, want /renders", got.OutDir)
	}
	if got.JPEGQuality != 70 {
		t.Errorf("JPEGQuality: got %d, want 70", got.JPEGQuality)
	}
	if got.MaxDim != 800 {
		t.Errorf("MaxDim: got %d, want 800", got.MaxDim)
	}
	if got.BlurSigma != 2 {
		t.Errorf("BlurSigma: got %g, want 2", got.BlurSigma)
	}
	if got.RichOverlay {
		t.Error("RichOverlay: explicit --rich=false should win over config")
	}

	// Untouched flags leave the config alone.
	got = mergeConfig(base, o, func(string) bool { return false })
	if got != base {
		t.Errorf("unchanged flags altered config: got %+v, want %+v", got, base)
	}
}

func TestRoot_RequiresImage(t *testing.T) {
	_, err := execRoot(t, "--detector", "SIFT")
	if err == nil {
		t.Fatal("expected error when --image is missing")
	}
	if !strings.Contains(err.Error(), "image") {
		t.Errorf("error should mention the image flag, got: %v", err)
	}
}

func TestRoot_UnsupportedDetector(t *testing.T) {
	_, err := execRoot(t, "--image", "whatever.png", "--detector", "SURF")
	if err == nil {
		t.Fatal("expected error for unsupported detector")
	}
	if !errors.Is(err, detection.ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}

func TestListCommand(t *testing.T) {
	out, err := execRoot(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, name := range []string{"SIFT", "ORB", "BRISK"} {
		if !strings.Contains(out, name) {
			t.Errorf("list output missing %s:\n%s", name, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execRoot(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(out, "keypoints") {
		t.Errorf("unexpected version output:\n%s", out)
	}
}
