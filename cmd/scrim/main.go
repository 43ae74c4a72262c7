// Command scrim demos the modal presentation engine. The same scenario can
// run in a desktop window, in the terminal, or headless with a printed
// document snapshot.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "scrim",
	Short: "Modal presentation engine demo",
	Long: `scrim presents sheets, alerts, popovers, full-screen covers and
confirmation dialogs over a retained render tree.

The view and tui subcommands attach a desktop window or the terminal to a
live scenario; exec runs one headless and prints the resulting document.`,
}

func main() {
	rootCmd.Version = Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
