package main

import (
	"log/slog"

	"github.com/philipparndt/terrainpick/internal/app"
	"github.com/spf13/cobra"
)

var (
	watchFlag         bool
	linesPickableFlag bool
	highlightFlag     string
	terrainLayerFlag  string
)

var viewCmd = &cobra.Command{
	Use:   "view [model]",
	Short: "Open the interactive viewer (default command)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runView,
}

func init() {
	addViewFlags(viewCmd)
	rootCmd.AddCommand(viewCmd)
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Reload the model when the file changes")
	cmd.Flags().BoolVar(&linesPickableFlag, "lines-pickable", false, "Allow clicking decorative lines")
	cmd.Flags().StringVar(&highlightFlag, "highlight-layer", "", "Layer whose lines are drawn in the highlight color")
	cmd.Flags().StringVar(&terrainLayerFlag, "terrain-layer", "", "Layer holding the terrain mesh (default: last mesh)")
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Flags given on the command line win over the config file
	if len(args) == 1 {
		cfg.Model = args[0]
	}
	if cmd.Flags().Changed("watch") {
		cfg.Watch = watchFlag
	}
	if cmd.Flags().Changed("lines-pickable") {
		cfg.Interaction.LinesPickable = linesPickableFlag
	}
	if cmd.Flags().Changed("highlight-layer") {
		cfg.Viewer.HighlightLayer = highlightFlag
	}
	if cmd.Flags().Changed("terrain-layer") {
		cfg.Interaction.TerrainLayer = terrainLayerFlag
	}

	return app.Run(cmd.Context(), app.Options{
		Config: cfg,
		Logger: slog.Default(),
	})
}
