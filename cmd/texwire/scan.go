package main

import (
	"fmt"
	"os"

	"texwire/internal/catalog"
	"texwire/pkg/types"

	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a folder and list the materials found",
		Long:  `Scan an export folder, parse the texture filenames, and print the resulting material catalog without building anything.`,
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

			if jsonOutput {
				out, err := cat.ToJSON()
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}

			printCatalog(cat, dir)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output the catalog in JSON format")

	return cmd
}

func printCatalog(cat *types.Catalog, dir string) {
	fmt.Println(primaryText(fmt.Sprintf("Materials in %s:", dir)))
	if cat.Len() == 0 {
		fmt.Println(infoText("  (no matching texture files)"))
	}
	for _, name := range cat.Names() {
		mat, _ := cat.Material(name)
		fmt.Printf("  %s\n", emphasisText(name))
		for _, token := range mat.Tokens() {
			tex, _ := mat.Texture(token)
			if _, known := types.ParseTextureKind(token); known {
				fmt.Printf("    %-12s %s\n", token, tex.Path)
			} else {
				fmt.Printf("    %-12s %s %s\n", token, tex.Path, warningText("(unknown kind)"))
			}
		}
	}
	if skipped := cat.Skipped(); len(skipped) > 0 {
		fmt.Println(warningText(fmt.Sprintf("Skipped %d files that do not match the naming schema:", len(skipped))))
		for _, f := range skipped {
			fmt.Printf("  %s\n", f.Name)
		}
	}
}

// targetDirectory resolves the directory argument, defaulting to the
// working directory.
func targetDirectory(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("error getting current directory: %w", err)
	}
	return dir, nil
}
