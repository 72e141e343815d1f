package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/handiism/hurufa/internal/app"
	"github.com/handiism/hurufa/internal/config"
	"github.com/handiism/hurufa/internal/logging"
	"github.com/handiism/hurufa/internal/tui"
)

func main() {
	var (
		configFlag = flag.String("config", config.DefaultPath(), "Path to config file")
		logFlag    = flag.String("log", "", "Write logs to this file")
	)
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stderr, so logs only go to a file.
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logging.SetLogger(logging.NewTextLogger(f, settings.LogLevel))
	}

	fmt.Println("Scanning fonts...")
	a, err := app.Open(context.Background(), settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if err := tui.Run(a); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings.SetDisplayPrefs(a.Store.Prefs())
	if err := settings.Save(*configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
	}
}
