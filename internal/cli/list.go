package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/featurelab/keypoints/internal/detection"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available detectors",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range detection.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
