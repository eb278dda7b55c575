// Package cli implements the keypoints command surface.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/featurelab/keypoints/internal/config"
	"github.com/featurelab/keypoints/internal/detection"
	"github.com/featurelab/keypoints/internal/imaging"
	"github.com/featurelab/keypoints/internal/render"
)

// options collects the root command's flag values.
type options struct {
	image      string
	detector   string
	compare    bool
	noSave     bool
	configPath string
	verbose    bool
	outDir     string
	quality    int
	maxDim     int
	blur       float64
	rich       bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "keypoints",
	Short: "Detect feature points in an image with SIFT, ORB or BRISK",
	Long: `keypoints loads an image, runs an OpenCV feature-point detector over it,
prints summary statistics and writes a keypoint overlay image. With
--compare (or --detector COMPARE) it runs all detectors and renders a
side-by-side comparison chart instead.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&opts.image, "image", "", "path to the input image (required)")
	f.StringVar(&opts.detector, "detector", "SIFT", "detector to run: SIFT, ORB, BRISK or COMPARE")
	f.BoolVar(&opts.compare, "compare", false, "run all detectors and render a comparison chart")
	f.BoolVar(&opts.noSave, "no-save", false, "print statistics only, write no output images")
	f.StringVar(&opts.outDir, "out", "", "output directory for rendered images")
	f.IntVar(&opts.quality, "quality", 0, "overlay JPEG quality (1-100)")
	f.IntVar(&opts.maxDim, "max-dim", 0, "downscale so the longest image side is at most this many pixels")
	f.Float64Var(&opts.blur, "blur", 0, "Gaussian denoise sigma applied before detection")
	f.BoolVar(&opts.rich, "rich", false, "draw keypoints with scale and orientation marks")
	f.StringVar(&opts.configPath, "config", "", "path to a yaml config file")
	f.BoolVar(&opts.verbose, "verbose", false, "enable diagnostic logging on stderr")
	rootCmd.MarkFlagRequired("image")

	rootCmd.AddCommand(listCmd, versionCmd)
}

// Execute runs the CLI. Any failure is reported on stderr with a generic
// hint; the process exits normally either way.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Hint: run 'keypoints --help' for usage.")
	}
}

func run(cmd *cobra.Command, args []string) error {
	if opts.verbose {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.Ldate | log.Ltime)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	cfg = mergeConfig(cfg, opts, cmd.Flags().Changed)

	name := strings.ToUpper(strings.TrimSpace(opts.detector))
	compare := opts.compare || name == "COMPARE"
	if !compare {
		if _, ok := detection.Canonical(name); !ok {
			return fmt.Errorf("%w: %q (choose from %s or COMPARE)",
				detection.ErrUnsupported, opts.detector,
				strings.Join(detection.Names(), ", "))
		}
	}

	log.Printf("loading %s (max-dim=%d blur=%g)", opts.image, cfg.MaxDim, cfg.BlurSigma)
	img, err := imaging.Load(opts.image, imaging.LoadOptions{
		MaxDim:    cfg.MaxDim,
		BlurSigma: cfg.BlurSigma,
	})
	if err != nil {
		return err
	}
	defer img.Close()

	out := cmd.OutOrStdout()
	printHeader(out, img)

	if compare {
		log.Printf("running all detectors: %s", strings.Join(detection.Names(), ", "))
		results, err := detection.DetectAll(img)
		if err != nil {
			return err
		}
		printComparison(out, results)
		if !opts.noSave {
			path, err := render.Chart(img, results, render.ChartOptions{
				OutDir: cfg.OutDir,
				Rich:   cfg.RichOverlay,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved: %s\n", path)
		}
		return nil
	}

	log.Printf("running %s", name)
	res, err := detection.Detect(img, name)
	if err != nil {
		return err
	}
	printResult(out, res)
	if !opts.noSave {
		path, err := render.Overlay(img, res, render.OverlayOptions{
			OutDir:  cfg.OutDir,
			Quality: cfg.JPEGQuality,
			Rich:    cfg.RichOverlay,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Saved: %s\n", path)
	}
	return nil
}

// mergeConfig applies flag values over the file/default configuration.
// Only flags the user actually set take precedence.
func mergeConfig(cfg config.Config, o options, changed func(string) bool) config.Config {
	if changed("out") {
		cfg.OutDir = o.outDir
	}
	if changed("quality") {
		cfg.JPEGQuality = o.quality
	}
	if changed("max-dim") {
		cfg.MaxDim = o.maxDim
	}
	if changed("blur") {
		cfg.BlurSigma = o.blur
	}
	if changed("rich") {
		cfg.RichOverlay = o.rich
	}
	return cfg
}
