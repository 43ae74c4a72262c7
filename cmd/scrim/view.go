package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/scrimui/scrim/preview"
	"github.com/scrimui/scrim/sched"
)

var viewCmd = &cobra.Command{
	Use:   "view [scenario.js]",
	Short: "Run a scenario in a desktop window",
	Long:  `Opens a window attached to the scenario's presentation stack. Tap the backdrop or drag a sheet down to dismiss; Escape dismisses the topmost presentation.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, source, err := loadScenario(args)
		if err != nil {
			return err
		}

		c, rt := newStage(sched.SystemClock(), 1280, 800, os.Stdout)
		if err := rt.ExecuteScript(source, name); err != nil {
			return err
		}

		preview.New(c, preview.WithTitle("scrim: "+name)).Run()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
