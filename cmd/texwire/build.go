package main

import (
	"fmt"
	"os"

	"texwire/internal/assemble"
	"texwire/internal/catalog"
	"texwire/internal/scene"
	"texwire/internal/scene/mel"
	"texwire/internal/scene/memory"
	"texwire/pkg/types"

	"github.com/spf13/cobra"
)

// NewBuildCmd creates the build command
func NewBuildCmd() *cobra.Command {
	var (
		outPath   string
		materials []string
		disable   []string
		enable    []string
		dryRun    bool
		yes       bool
	)

	cmd := &cobra.Command{
		Use:   "build [directory]",
		Short: "Scan a folder and emit the material build script",
		Long:  `Scan an export folder and assemble every included material into a shader network, written as a scene script for the host application.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(args)
			if err != nil {
				return err
			}

			scanner, err := catalog.NewWithConfig(cfg)
			if err != nil {
				return err
			}
			cat, err := scanner.Scan(dir)
			if err != nil {
				return fmt.Errorf("error scanning %s: %w", dir, err)
			}
			if cat.Len() == 0 {
				fmt.Println(infoText("No matching texture files found, nothing to build."))
				return nil
			}

			filter, err := resolveFilter(disable, enable)
			if err != nil {
				return err
			}

			if dryRun || cfg.Settings.DryRun {
				return dryRunBuild(cat, filter, materials)
			}

			if !yes {
				prompt := fmt.Sprintf("Import %d materials from %s?", cat.Len(), dir)
				if !confirmPrompt(prompt) {
					fmt.Println(warningText("Build cancelled"))
					return nil
				}
			}

			if outPath == "" {
				outPath = cfg.Output.Script
			}
			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("error creating output script: %w", err)
			}
			defer out.Close()

			results, err := runBuild(mel.New(out), cat, filter, materials)
			if err != nil {
				return err
			}
			printResults(results)
			fmt.Println(successText(fmt.Sprintf("Wrote %s", outPath)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output script path (default from config)")
	cmd.Flags().StringArrayVarP(&materials, "material", "m", nil, "Build only the named material (repeatable)")
	cmd.Flags().StringArrayVar(&disable, "disable", nil, "Disable a texture kind for this build (repeatable)")
	cmd.Flags().StringArrayVar(&enable, "enable", nil, "Re-enable a texture kind disabled in the config (repeatable)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be built without writing the script")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// resolveFilter builds the kind filter from config plus command-line
// overrides.
func resolveFilter(disable, enable []string) (types.KindFilter, error) {
	filter := cfg.KindFilter()
	for _, name := range disable {
		k, ok := types.ParseTextureKind(name)
		if !ok {
			return filter, fmt.Errorf("unknown texture kind: %s", name)
		}
		filter.Disable(k)
	}
	for _, name := range enable {
		k, ok := types.ParseTextureKind(name)
		if !ok {
			return filter, fmt.Errorf("unknown texture kind: %s", name)
		}
		if err := filter.Enable(k); err != nil {
			return filter, err
		}
	}
	return filter, nil
}

// runBuild assembles either the whole catalog or the named materials.
func runBuild(graph scene.Graph, cat *types.Catalog, filter types.KindFilter, materials []string) ([]types.BuildResult, error) {
	engine := assemble.NewWithConfig(graph, cfg)
	engine.SetFilter(filter)

	if len(materials) == 0 {
		return engine.BuildAll(cat), nil
	}

	var results []types.BuildResult
	for _, name := range materials {
		if _, ok := cat.Material(name); !ok {
			return nil, fmt.Errorf("material %s not found in catalog", name)
		}
		result, _ := engine.BuildMaterial(cat, name)
		results = append(results, result)
	}
	return results, nil
}

// dryRunBuild assembles against the in-memory graph and prints the
// plan instead of writing a script.
func dryRunBuild(cat *types.Catalog, filter types.KindFilter, materials []string) error {
	graph := memory.New()
	results, err := runBuild(graph, cat, filter, materials)
	if err != nil {
		return err
	}

	fmt.Println(primaryText("Dry run, planned scene operations:"))
	for _, n := range graph.Nodes() {
		fmt.Printf("  create %-14s %s (%s)\n", n.Type, n.Name, n.Class)
	}
	fmt.Printf("  plus %d attribute connections\n", len(graph.Connections()))
	printResults(results)
	return nil
}

func printResults(results []types.BuildResult) {
	for _, r := range results {
		switch {
		case r.Error != nil:
			fmt.Println(errorText(fmt.Sprintf("  %s: %v", r.Material, r.Error)))
		case len(r.SkippedTokens) > 0:
			fmt.Println(warningText(fmt.Sprintf("  %s: %d textures wired, skipped %v", r.Material, r.TexturesWired, r.SkippedTokens)))
		default:
			fmt.Println(successText(fmt.Sprintf("  %s: %d textures wired", r.Material, r.TexturesWired)))
		}
	}
}
