package main

import (
	"fmt"
	"os"

	"texwire/internal/catalog"
	"texwire/internal/scene/mel"
	"texwire/internal/tui"
	"texwire/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// NewTuiCmd creates the tui command
func NewTuiCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "tui [directory]",
		Short: "Pick materials and textures interactively",
		Long:  `Open the interactive picker: toggle materials, textures, and texture kinds, then build the scene script from the selection.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(args)
			if err != nil {
				return err
			}
			if outPath == "" {
				outPath = cfg.Output.Script
			}

			scanner, err := catalog.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			cat, err := scanner.Scan(dir)
			if err != nil {
				return fmt.Errorf("error scanning %s: %w", dir, err)
			}

			build := func(cat *types.Catalog, filter types.KindFilter) ([]types.BuildResult, error) {
				out, err := os.Create(outPath)
				if err != nil {
					return nil, fmt.Errorf("error creating output script: %w", err)
				}
				defer out.Close()
				return runBuild(mel.New(out), cat, filter, nil)
			}

			model := tui.New(cat, scanner, dir, cfg.KindFilter(), build)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("error running picker: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output script path (default from config)")

	return cmd
}
