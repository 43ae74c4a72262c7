package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/scrimui/scrim/sched"
	"github.com/scrimui/scrim/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [scenario.js]",
	Short: "Run a scenario in the terminal",
	Long:  `Paints the presentation stack as layered boxes. Escape dismisses the topmost presentation, q quits, and the program exits once the scenario has nothing left to show.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, source, err := loadScenario(args)
		if err != nil {
			return err
		}

		// The alternate screen owns stdout, so console output is dropped.
		c, rt := newStage(sched.SystemClock(), 640, 384, io.Discard)
		if err := rt.ExecuteScript(source, name); err != nil {
			return err
		}

		return tui.Run(c, tui.WithQuitWhenIdle())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
