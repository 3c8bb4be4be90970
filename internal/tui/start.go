package tui

import (
	"context"
	"flag"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tatianab/dragon-repeller/internal/app"
	"github.com/tatianab/dragon-repeller/internal/config"
)

// Start configures the game from the environment and process arguments and
// runs the terminal shell.
func Start() error {
	cfg, err := config.LoadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	closeLog, err := SetupLogging(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := app.Open(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	return Run(g.Session)
}

// SetupLogging sends the standard logger to path, or discards it when path
// is empty. Anything written to the terminal would corrupt the alt screen.
func SetupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "dragon")
	if err != nil {
		return nil, err
	}
	return func() { f.Close() }, nil
}
