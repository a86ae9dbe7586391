// Package main is the entry point for the typepick terminal picker.
//
// typepick loads one or more type manifests (JSON or Lua), presents
// a searchable hierarchical tree of the declared types, and prints
// the selected type's fully-qualified name to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/typepick/internal/catalog"
	"github.com/dshills/typepick/internal/event"
	"github.com/dshills/typepick/internal/icon"
	"github.com/dshills/typepick/internal/picker"
	"github.com/dshills/typepick/internal/tui"
	"github.com/dshills/typepick/internal/typetree"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("typepick %s (%s)\n", version, commit)
		return 0
	}

	if len(opts.manifests) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one manifest path is required")
		flag.Usage()
		return 2
	}

	cat := catalog.New()
	watcher := catalog.NewWatcher(cat)

	for _, path := range opts.manifests {
		if ev := watcher.Reload(path); ev.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load %s: %v\n", path, ev.Err)
			return 1
		}
	}

	bus := event.NewBus()
	icons := icon.NewResolver(tui.DefaultIconSource(), cat)
	pick := picker.New(cat, bus)
	if opts.query != "" {
		pick.SetQuery(opts.query)
	}

	if opts.list {
		printTree(os.Stdout, pick.Tree(), icons)
		return 0
	}

	if opts.watch {
		for _, path := range opts.manifests {
			if err := watcher.Watch(path); err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", path, err)
				return 1
			}
		}
		watcher.OnReload(func(ev catalog.ReloadEvent) {
			bus.Broadcast("catalog.reloaded", watcher, ev.Path, ev.Count)
		})
		watcher.Start()
		defer watcher.Stop()
	}

	app, err := tui.NewApp(pick, icons, tui.DefaultGlyphs())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	selected, err := app.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if selected == nil {
		return 1
	}

	fmt.Println(selected.FullName)
	return 0
}

type options struct {
	manifests   []string
	query       string
	list        bool
	watch       bool
	showVersion bool
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.query, "query", "", "initial filter query")
	flag.BoolVar(&opts.list, "list", false, "print the tree and exit without the interactive picker")
	flag.BoolVar(&opts.watch, "watch", false, "reload manifests when they change on disk")
	flag.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] manifest.json|manifest.lua ...\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	opts.manifests = flag.Args()
	return opts
}

// printTree writes the tree as indented text for the -list mode.
func printTree(w *os.File, roots []*typetree.Node, icons *icon.Resolver) {
	var walk func(nodes []*typetree.Node, depth int)
	walk = func(nodes []*typetree.Node, depth int) {
		for _, n := range nodes {
			indent := strings.Repeat("  ", depth)
			if n.IsLeaf() {
				ref := icons.Resolve(n.Descriptor)
				fmt.Fprintf(w, "%s%s  [%s] (%s)\n", indent, n.Label, ref, n.Descriptor.FullName)
			} else {
				fmt.Fprintf(w, "%s%s/\n", indent, n.Label)
			}
			walk(n.Children, depth+1)
		}
	}
	walk(roots, 0)
}
