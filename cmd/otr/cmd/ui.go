package cmd

import (
	"github.com/spf13/cobra"

	appui "github.com/OpenTraceLab/OpenTraceRoom/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Launch the room editor",
	Long: `Launch the editor window. Pick a template on the left and click the canvas
to place it; drag items to move them, drag the corner handle to resize and the
round handle to rotate. Right-click an item for its menu.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ed, err := newEditor()
		if err != nil {
			return err
		}
		return appui.Run(appui.Options{
			Editor:        ed,
			Log:           log,
			Width:         cfg.Window.Width,
			Height:        cfg.Window.Height,
			PreviewWidth:  cfg.Preview.Width,
			PreviewHeight: cfg.Preview.Height,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
