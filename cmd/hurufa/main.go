package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/handiism/hurufa/internal/app"
	"github.com/handiism/hurufa/internal/config"
	"github.com/handiism/hurufa/internal/export"
	"github.com/handiism/hurufa/internal/logging"
	"github.com/handiism/hurufa/internal/model"
	"github.com/handiism/hurufa/internal/store"
)

func usage() {
	fmt.Println("Hurufa - Organize installed fonts")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  hurufa [options] categories")
	fmt.Println("  hurufa [options] families")
	fmt.Println("  hurufa [options] search <query>")
	fmt.Println("  hurufa [options] tag <family> <collection>...")
	fmt.Println("  hurufa [options] set <family> [collection]...")
	fmt.Println("  hurufa [options] language <family> <language>")
	fmt.Println("  hurufa [options] reset <family>")
	fmt.Println("  hurufa [options] export <family>...")
	fmt.Println()
	fmt.Println("For interactive mode, use: hurufa-tui")
	fmt.Println()
	flag.PrintDefaults()
}

func main() {
	// Command line flags
	var (
		configFlag    = flag.String("config", config.DefaultPath(), "Path to config file")
		outputFlag    = flag.String("output", "", "Export directory (overrides config)")
		languagesFlag = flag.Bool("languages", false, "Group by language instead of collection")
		verboseFlag   = flag.Bool("verbose", false, "Show verbose output")
	)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(1)
	}

	// Load config
	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *outputFlag != "" {
		settings.ExportPath = *outputFlag
	}
	if *languagesFlag {
		settings.ViewMode = "languages"
	}
	level := settings.LogLevel
	if *verboseFlag {
		level = "debug"
	}
	logging.SetLogger(logging.NewTextLogger(os.Stderr, level))

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	a, err := app.Open(ctx, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	args := flag.Args()
	switch args[0] {
	case "categories":
		printCategories(a.Store.Displayed())
	case "families":
		printFamilies(a.Store.Families())
	case "search":
		if len(args) < 2 {
			fail("search needs a query")
		}
		printCategories([]model.Category{a.Store.Search(strings.Join(args[1:], " "))})
	case "tag":
		if len(args) < 3 {
			fail("tag needs a family and at least one collection")
		}
		selectFamilies(a.Store, args[1:2])
		for _, c := range args[2:] {
			a.Store.MoveSelectionToCollection("", c)
		}
		persist(ctx, a)
	case "set":
		if len(args) < 2 {
			fail("set needs a family")
		}
		selectFamilies(a.Store, args[1:2])
		a.Store.UpdateFamily(args[1], args[2:], "")
		persist(ctx, a)
	case "reset":
		if len(args) != 2 {
			fail("reset needs a family")
		}
		if err := a.ResetFamily(ctx, args[1]); err != nil {
			fail(err.Error())
		}
		fmt.Printf("Reset %s\n", args[1])
	case "language":
		if len(args) != 3 {
			fail("language needs a family and a language")
		}
		selectFamilies(a.Store, args[1:2])
		a.Store.BulkSetLanguage(args[2])
		persist(ctx, a)
	case "export":
		if len(args) < 2 {
			fail("export needs at least one family")
		}
		selectFamilies(a.Store, args[1:])
		runExport(ctx, a, *verboseFlag)
	default:
		usage()
		os.Exit(1)
	}
}

func fail(msg string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

func selectFamilies(s *store.Store, names []string) {
	for _, name := range names {
		fam, ok := s.Family(name)
		if !ok {
			fail(fmt.Sprintf("no family named %q", name))
		}
		s.SelectByIDs(fam.IDs(), true)
	}
}

func persist(ctx context.Context, a *app.App) {
	if err := a.Persist(ctx); err != nil {
		fail(err.Error())
	}
	fmt.Printf("Updated %s\n", strings.Join(a.Store.SelectedFamilies(), ", "))
}

func printCategories(cats []model.Category) {
	for _, c := range cats {
		fmt.Printf("%s (%d)\n", c.Name, len(c.Families))
		for _, fam := range c.Families {
			fmt.Printf("  %-32s %d style(s)\n", fam.Name, len(fam.Fonts))
		}
	}
}

func printFamilies(families []model.FontFamily) {
	for _, fam := range families {
		fmt.Printf("%-32s %-12s %s\n", fam.Name, fam.Language, strings.Join(fam.Tags, ", "))
	}
}

func runExport(ctx context.Context, a *app.App, verbose bool) {
	res, err := a.ExportSelection(ctx, nil, func(event export.ProgressEvent) {
		if event.Level == export.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case export.LevelError:
			prefix = "✗ "
		case export.LevelWarning:
			prefix = "! "
		case export.LevelSuccess:
			prefix = "✓ "
		case export.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Println(prefix + event.Message)
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during export: %v\n", err)
		os.Exit(1)
	}
	if len(res.Failed) > 0 {
		fmt.Printf("Skipped: %s\n", strings.Join(res.Failed, ", "))
	}
}
