package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	previewOut    string
	previewScript string
	previewPlan   bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the room preview to a PNG",
	Long: `Render the isometric room preview, or the top-down plan with --plan. The
scene is empty unless --script replays a gesture script first.

Examples:
  otr preview --out room.png
  otr preview --out room.png --script session.otr
  otr preview --out plan.png --script session.otr --plan`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "output PNG file")
	previewCmd.Flags().StringVarP(&previewScript, "script", "s", "", "gesture script to replay first")
	previewCmd.Flags().BoolVar(&previewPlan, "plan", false, "render the top-down plan instead")
	previewCmd.MarkFlagRequired("out")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ed, err := newEditor()
	if err != nil {
		return err
	}
	if previewScript != "" {
		if _, err := replayFile(ed, previewScript); err != nil {
			return err
		}
	}

	if previewPlan {
		err = writePlan(previewOut, ed)
	} else {
		err = writeIsometric(previewOut, ed)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%dx%d, %d items)\n",
		previewOut, cfg.Preview.Width, cfg.Preview.Height, ed.Scene().Len())
	return nil
}
