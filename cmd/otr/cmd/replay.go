package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	replayPlanOut    string
	replayPreviewOut string
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Replay a gesture script headlessly",
	Long: `Run a gesture script against a fresh editor and print the resulting scene.
Failed expectations stop the replay with the offending line.

Examples:
  otr replay pkg/script/testdata/scenarios.otr
  otr replay session.otr --plan plan.png --preview room.png`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVar(&replayPlanOut, "plan", "", "write the top-down plan PNG here")
	replayCmd.Flags().StringVar(&replayPreviewOut, "preview", "", "write the isometric preview PNG here")
}

func runReplay(cmd *cobra.Command, args []string) error {
	ed, err := newEditor()
	if err != nil {
		return err
	}
	r, err := replayFile(ed, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printScene(out, ed)
	if r.MenuRequests > 0 {
		fmt.Fprintf(out, "Context menu requests: %d\n", r.MenuRequests)
	}

	if replayPlanOut != "" {
		if err := writePlan(replayPlanOut, ed); err != nil {
			return err
		}
	}
	if replayPreviewOut != "" {
		if err := writeIsometric(replayPreviewOut, ed); err != nil {
			return err
		}
	}
	return nil
}
