package main

import (
	"fmt"

	"github.com/philipparndt/terrainpick/pkg/analysis"
	"github.com/philipparndt/terrainpick/pkg/model"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <model>",
	Short: "Display statistics about a terrain model",
	Long:  "Show layers, triangle and line counts, height range, surface area and edge statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	doc, err := model.Load(cmd.Context(), filename)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}

	return analysis.WriteReport(cmd.OutOrStdout(), filename, doc, analysis.Analyze(doc))
}
