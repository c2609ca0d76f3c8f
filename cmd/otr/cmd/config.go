package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceRoom/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or write the settings file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings (file, environment and defaults merged)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "log.level:             %s\n", cfg.Log.Level)
		fmt.Fprintf(out, "editor.grid_size:      %g\n", cfg.Editor.GridSize)
		fmt.Fprintf(out, "editor.snap:           %v\n", cfg.Editor.Snap)
		fmt.Fprintf(out, "editor.history_limit:  %d\n", cfg.Editor.HistoryLimit)
		fmt.Fprintf(out, "room:                  %g x %g x %g %s\n", cfg.Room.Width, cfg.Room.Length, cfg.Room.Height, cfg.Room.Unit)
		fmt.Fprintf(out, "room.preset:           %s\n", cfg.Room.Preset)
		fmt.Fprintf(out, "catalog.file:          %s\n", cfg.Catalog.File)
		fmt.Fprintf(out, "catalog.db:            %s\n", cfg.Catalog.DB)
		fmt.Fprintf(out, "window:                %dx%d\n", cfg.Window.Width, cfg.Window.Height)
		fmt.Fprintf(out, "preview:               %dx%d\n", cfg.Preview.Width, cfg.Preview.Height)
		return nil
	},
}

var configSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Write the effective settings to the config file",
	Long: `Write the effective settings to --config, or to config.yaml in the platform
config directory. Environment overrides are written too, so this is a way to
persist OTR_* variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := cfg.SceneRoom(); err != nil {
			return fmt.Errorf("refusing to save: %w", err)
		}
		path := configPath
		if path == "" {
			p, err := config.DefaultPath()
			if err != nil {
				return err
			}
			path = p
		}
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSaveCmd)
}
