package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tatianab/dragon-repeller/internal/app"
	"github.com/tatianab/dragon-repeller/internal/autoplay"
	"github.com/tatianab/dragon-repeller/internal/config"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	kind := fs.String("player", "scripted", "who plays: scripted or gemini")
	turns := fs.Int("turns", 200, "maximum number of actions")
	cfg, err := config.LoadConfig(fs, args)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	// Keep bot games out of the player's slot unless one is named.
	if _, ok := os.LookupEnv("DRAGON_SAVE_SLOT"); !ok && !flagSet(fs, "slot") {
		cfg.SaveSlot = "simulate"
	}
	if *kind != "scripted" && *kind != "gemini" {
		return fmt.Errorf("unknown player %q", *kind)
	}

	g, err := app.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}
	defer g.Close()

	scripted := autoplay.NewScripted(g.Engine.Tables().Weapons)
	var player autoplay.Player = scripted
	var observe func(autoplay.Turn)

	if *kind == "gemini" {
		gm, err := autoplay.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, scripted)
		if err != nil {
			return fmt.Errorf("create player client: %w", err)
		}
		defer gm.Close()
		player = gm
		observe = gm.Observe
	}

	g.Session.StartNewGame(ctx)
	fmt.Fprintf(out, "--- Seed %d, player %s ---\n\n", g.Seed, *kind)

	report, err := autoplay.Run(ctx, g.Session, player, *turns, func(t autoplay.Turn) {
		if observe != nil {
			observe(t)
		}
		p := t.Player
		fmt.Fprintf(out, "--- Turn %d: %s ---\n%s\n", t.Number, t.Action, t.Text)
		fmt.Fprintf(out, "Stats: Level=%d XP=%d Health=%d/%d Gold=%d Weapon=%s\n\n", p.Level, p.XP, p.Health, p.MaxHealth, p.Gold, p.Weapon)
	})
	if err != nil {
		log.Printf("run stopped after %d turns", len(report.Turns))
		return err
	}

	switch report.Outcome() {
	case "":
		fmt.Fprintf(out, "Stopped after %d turns without finishing.\n", len(report.Turns))
	default:
		fmt.Fprintf(out, "Game ended at %s after %d turns.\n", report.Final.LocationName, len(report.Turns))
	}
	return nil
}

func flagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
