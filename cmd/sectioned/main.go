// Command sectioned runs JavaScript scenario files against a headless
// sectioned editor and prints the resulting bound text.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/chrisuehlinger/sectioned/dom"
	"github.com/chrisuehlinger/sectioned/editor"
	"github.com/chrisuehlinger/sectioned/event"
	"github.com/chrisuehlinger/sectioned/eventloop"
	"github.com/chrisuehlinger/sectioned/logger"
	"github.com/chrisuehlinger/sectioned/script"
)

func main() {
	text := flag.String("text", "", "Initial text to seed the editor with")
	editable := flag.Bool("editable", true, "Whether the surface accepts input")
	verbose := flag.Bool("v", false, "Emit structured event traces to stderr")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <scenario.js>...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s -text=$'alpha\\nbeta' scenario.js\n", os.Args[0])
		os.Exit(1)
	}

	var opts editor.Options
	opts.Editable = *editable
	opts.Text = *text
	if *verbose {
		level := zerolog.DebugLevel
		log, err := logger.New().FromBuffer(os.Stderr).Level(level).Make()
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			os.Exit(1)
		}
		opts.Logger = &log.Logger
	}

	doc := dom.NewDocument()
	surface := doc.CreateElement("div")
	doc.AsNode().AppendChild(surface.AsNode())

	ctrl := editor.NewController(doc, surface, event.NewTarget(), eventloop.New(), opts)
	ctrl.Mount()

	rt := script.New(ctrl)
	for _, path := range flag.Args() {
		src, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		if _, err := rt.Run(string(src)); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
	}

	fmt.Println(ctrl.Text())
}
