package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/scrimui/scrim/sched"
)

var execSteps int

var execCmd = &cobra.Command{
	Use:   "exec <scenario.js>",
	Short: "Run a scenario headless and print the document",
	Long:  `Executes the scenario on a virtual clock, drains every pending timer, and prints the final serialized document to stdout.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, source, err := loadScenario(args)
		if err != nil {
			return err
		}

		clock := sched.NewManualClock(time.Unix(0, 0))
		c, rt := newStage(clock, 1280, 800, cmd.OutOrStdout())
		if err := rt.ExecuteScript(source, name); err != nil {
			return err
		}

		for i := 0; i < execSteps; i++ {
			d, ok := c.Scheduler().NextDue()
			if !ok {
				break
			}
			clock.Advance(d)
			c.Scheduler().Process()
		}

		fmt.Fprintln(cmd.OutOrStdout(), c.Doc().Root().OuterHTML())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
	execCmd.Flags().IntVar(&execSteps, "max-steps", 10000, "timer drain limit")
}
