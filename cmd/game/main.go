package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tatianab/dragon-repeller/internal/app"
	"github.com/tatianab/dragon-repeller/internal/config"
	"github.com/tatianab/dragon-repeller/internal/tui"
)

func main() {
	ctx := context.Background()
	log.SetPrefix("dragon: ")

	list := flag.Bool("list", false, "list save slots and exit")
	cfg, err := config.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error loading config: %v", err)
	}

	if *list {
		slots, err := app.ListSlots(ctx, cfg)
		if err != nil {
			config.Exitf("Error listing slots: %v", err)
		}
		for _, s := range slots {
			fmt.Println(s)
		}
		return
	}

	closeLog, err := tui.SetupLogging(cfg.LogFile)
	if err != nil {
		config.Exitf("Error opening log file: %v", err)
	}
	defer closeLog()

	g, err := app.Open(ctx, cfg)
	if err != nil {
		config.Exitf("Error starting game: %v", err)
	}
	defer g.Close()

	if err := tui.Run(g.Session); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
