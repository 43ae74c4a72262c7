package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scrimui/scrim/dom"
	"github.com/scrimui/scrim/geom"
	"github.com/scrimui/scrim/overlay"
	"github.com/scrimui/scrim/sched"
	"github.com/scrimui/scrim/script"
)

// demoScenario runs when no scenario file is given.
const demoScenario = `
scrim.present("sheet", {
    detents: [0.5, 0.9],
    content: "Drag this sheet down to dismiss it, tap the dimmed backdrop, or press Escape.",
});

setTimeout(function () {
    scrim.present("alert", {
        title: "Welcome to scrim",
        message: "Buttons run their action first, then dismiss.",
        buttons: [
            { label: "Thanks", action: function () { console.log("acknowledged"); } },
            { label: "Cancel", role: "cancel" },
        ],
    });
}, 600);
`

// loadScenario returns the script source: the named file, or the built-in
// demo when args are empty.
func loadScenario(args []string) (name, source string, err error) {
	if len(args) == 0 {
		return "demo", demoScenario, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read scenario: %w", err)
	}
	return args[0], string(data), nil
}

// newStage builds the document, scheduler, coordinator and script runtime
// every subcommand shares.
func newStage(clock sched.Clock, width, height float64, console io.Writer) (*overlay.Coordinator, *script.Runtime) {
	scheduler := sched.New(clock)
	doc := dom.NewDocument(geom.Sz(width, height))
	c := overlay.New(doc, scheduler)

	rt := script.NewRuntime(scheduler, console)
	script.NewOverlayBinder(rt, c)
	return c, rt
}
