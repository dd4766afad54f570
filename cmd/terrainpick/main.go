package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/philipparndt/terrainpick/internal/config"
	"github.com/philipparndt/terrainpick/internal/logging"
	"github.com/philipparndt/terrainpick/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "terrainpick [model]",
	Short: "Interactive terrain viewer for placing and dragging markers",
	Long: `terrainpick renders a terrain model in a 3D window. Clicking the terrain
places a marker; clicking any other object attaches a translate gizmo, and
released objects snap back onto the terrain surface.

Supported formats: .obj (groups become layers), .stl and .scad.`,
	Version:       version.GetFullVersion(),
	Args:          cobra.MaximumNArgs(1),
	RunE:          runView,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "terrainpick.toml", "Path to the TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logging.Setup(os.Stderr, verbose, quiet)
	}

	addViewFlags(rootCmd)
}

// loadConfig reads the config file named by --config
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	slog.Debug("configuration loaded", "path", configPath, "model", cfg.Model)
	return cfg, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
