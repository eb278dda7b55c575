package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/featurelab/keypoints/internal/detection"
	"github.com/featurelab/keypoints/internal/imaging"
)

func printHeader(w io.Writer, img *imaging.Image) {
	fmt.Fprintln(w, "Keypoint Detector")
	fmt.Fprintln(w, "=================")
	info := img.Info
	fmt.Fprintf(w, "Image: %s (%dx%d %s, %d bytes)\n\n",
		img.Path, info.Width, info.Height, info.Format, info.FileSizeBytes)
}

func printResult(w io.Writer, r *detection.Result) {
	s := detection.Summarize(r)
	fmt.Fprintf(w, "%s\n", r.Detector)
	fmt.Fprintf(w, "  keypoints:   %d\n", s.Count)
	if r.DescriptorRows > 0 {
		fmt.Fprintf(w, "  descriptors: %d x %d\n", r.DescriptorRows, r.DescriptorCols)
	} else {
		fmt.Fprintf(w, "  descriptors: none\n")
	}
	fmt.Fprintf(w, "  response:    mean %.4f, max %.4f\n", s.MeanResponse, s.MaxResponse)
	fmt.Fprintf(w, "  size:        mean %.1f px\n", s.MeanSize)
	fmt.Fprintf(w, "  centroid:    (%.0f, %.0f), spread (%.0f, %.0f)\n",
		s.CenterX, s.CenterY, s.SpreadX, s.SpreadY)
	fmt.Fprintf(w, "  elapsed:     %.1f ms\n", r.ElapsedMS)
}

func printComparison(w io.Writer, results []*detection.Result) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DETECTOR\tKEYPOINTS\tDESCRIPTORS\tELAPSED")
	for _, r := range results {
		desc := "-"
		if r.DescriptorRows > 0 {
			desc = fmt.Sprintf("%dx%d", r.DescriptorRows, r.DescriptorCols)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.1f ms\n",
			r.Detector, len(r.Keypoints), desc, r.ElapsedMS)
	}
	tw.Flush()
	fmt.Fprintln(w)
}
