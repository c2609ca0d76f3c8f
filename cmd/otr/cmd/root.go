package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRoom/internal/config"
	"github.com/OpenTraceLab/OpenTraceRoom/internal/logger"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "otr",
	Short: "OpenTraceRoom - interactive room layout editor",
	Long: `OpenTraceRoom (otr) places furniture into a room on a 2D canvas and
renders a simple 3D preview of the result.

Examples:
  otr ui                                  # Launch the editor
  otr replay session.otr --plan plan.png  # Replay a gesture script
  otr preview --out room.png --script s   # Render the isometric preview
  otr catalog list                        # Show the furniture catalog`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c
		level := cfg.Log.Level
		if verbose {
			level = logger.DebugLevel
		}
		log = logger.New(level, os.Stderr)
		log.Debugf("config loaded (grid %.0f, snap %v)", cfg.Editor.GridSize, cfg.Editor.Snap)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default is the platform config dir)")
}
