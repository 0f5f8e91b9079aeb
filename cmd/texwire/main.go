package main

import (
	"fmt"
	"os"

	"texwire/internal/config"
	"texwire/internal/log"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	cfgFile string
	cfg     *config.Config
)

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "texwire",
		Short:   "Import exported texture sets as shader networks",
		Version: version,
		Long: `
	'########:'########:'##::::'##:'##:::::'##:'####:'########::'########:
	... ##..:: ##.....::. ##::'##:: ##:'##: ##:. ##:: ##.... ##: ##.....::
	::: ##:::: ##::::::::. ##'##::: ##: ##: ##:: ##:: ##:::: ##: ##:::::::
	::: ##:::: ######:::::. ###:::: ##: ##: ##:: ##:: ########:: ######:::
	::: ##:::: ##...:::::: ## ##::: ##: ##: ##:: ##:: ##.. ##::: ##...::::
	::: ##:::: ##:::::::: ##:. ##:: ##: ##: ##:: ##:: ##::. ##:: ##:::::::
	::: ##:::: ########: ##:::. ##:. ###. ###::'####: ##:::. ##: ########:
	:::..:::::........::..:::::..:::...::...:::....::..:::::..::........::

Texwire scans a folder of textures exported from a texture-authoring
tool, groups them into materials by filename, and emits the scene
script that wires each material's shader network in the host.
		`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				fmt.Println(warningText(fmt.Sprintf("Warning: %v", configErr)))
				fmt.Println(infoText("Using default settings."))
				cfg = config.New()
			}

			if cfg.Settings.Debug {
				log.SetDebug(true)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/texwire/config.yaml)")

	// Add subcommands
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewBuildCmd())
	rootCmd.AddCommand(NewWatchCmd())
	rootCmd.AddCommand(NewTuiCmd())

	return rootCmd
}
