package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"texwire/internal/catalog"
	"texwire/internal/scene/mel"
	"texwire/internal/watch"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	var (
		outPath   string
		autoBuild bool
		quiet     int
	)

	cmd := &cobra.Command{
		Use:   "watch [directory]",
		Short: "Watch an export folder and rescan on changes",
		Long:  `Watch an export folder for new or changed texture files. Each settled burst of changes triggers a rescan, and optionally a rebuild of the scene script.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := targetDirectory(args)
			if err != nil {
				return err
			}

			if quiet == 0 {
				quiet = cfg.WatchMode.QuietPeriod
			}
			if !autoBuild {
				autoBuild = cfg.WatchMode.AutoBuild
			}
			if outPath == "" {
				outPath = cfg.Output.Script
			}

			scanner, err := catalog.NewWithConfig(cfg)
			if err != nil {
				return err
			}

			watcher, err := watch.New(dir, time.Duration(quiet)*time.Second)
			if err != nil {
				return err
			}

			rescan := func(mods []watch.FileModification) {
				cat, err := scanner.Scan(dir)
				if err != nil {
					fmt.Println(errorText(fmt.Sprintf("rescan failed: %v", err)))
					return
				}
				fmt.Println(infoText(fmt.Sprintf("%d changes, catalog now has %d materials", len(mods), cat.Len())))

				if !autoBuild {
					return
				}
				out, err := os.Create(outPath)
				if err != nil {
					fmt.Println(errorText(fmt.Sprintf("error creating output script: %v", err)))
					return
				}
				defer out.Close()
				results, err := runBuild(mel.New(out), cat, cfg.KindFilter(), nil)
				if err != nil {
					fmt.Println(errorText(fmt.Sprintf("build failed: %v", err)))
					return
				}
				printResults(results)
				fmt.Println(successText(fmt.Sprintf("Rebuilt %s", outPath)))
			}

			if err := watcher.Start(rescan); err != nil {
				return err
			}
			defer watcher.Stop()

			fmt.Println(primaryText(fmt.Sprintf("Watching %s (Ctrl+C to stop)", dir)))

			// Block until interrupted
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			fmt.Println(infoText("Stopping watcher"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output script path used with --auto-build")
	cmd.Flags().BoolVar(&autoBuild, "auto-build", false, "Rebuild the scene script after every rescan")
	cmd.Flags().IntVar(&quiet, "quiet", 0, "Seconds of quiet before a rescan fires")

	return cmd
}
