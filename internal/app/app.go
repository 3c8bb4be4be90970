// Package app assembles a playable session from configuration.
package app

import (
	"context"
	"fmt"
	"log"

	"github.com/tatianab/dragon-repeller/internal/config"
	"github.com/tatianab/dragon-repeller/internal/content"
	"github.com/tatianab/dragon-repeller/internal/engine"
	"github.com/tatianab/dragon-repeller/internal/models"
	"github.com/tatianab/dragon-repeller/internal/session"
	"github.com/tatianab/dragon-repeller/internal/storage/sqlite"
)

// Game bundles a session with the resources it holds open.
type Game struct {
	Session *session.Session
	Engine  *engine.Engine
	Seed    uint64

	closers []func() error
}

// Open loads content, seeds the engine and opens the configured store.
func Open(ctx context.Context, cfg *config.Config) (*Game, error) {
	tables, err := loadTables(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = engine.NewSeed(); err != nil {
			return nil, err
		}
	}
	eng, err := engine.New(tables, engine.NewSource(seed))
	if err != nil {
		return nil, fmt.Errorf("build engine: %w", err)
	}

	g := &Game{Engine: eng, Seed: seed}
	store, err := g.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	g.Session = session.New(eng, store)
	log.Printf("game ready: store=%s slot=%s seed=%d", cfg.Store, cfg.SaveSlot, seed)
	return g, nil
}

// Close releases the store.
func (g *Game) Close() error {
	var first error
	for _, c := range g.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func loadTables(cfg *config.Config) (*content.Tables, error) {
	if cfg.ContentFile != "" {
		return content.LoadFile(cfg.ContentFile)
	}
	return content.Default()
}

func (g *Game) openStore(ctx context.Context, cfg *config.Config) (models.Store, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath, cfg.SaveSlot)
		if err != nil {
			return nil, err
		}
		g.closers = append(g.closers, s.Close)
		return s, nil
	default:
		return models.NewFileStore(cfg.SaveDir, cfg.SaveSlot), nil
	}
}

// ListSlots returns the slots holding a saved game in the configured backend.
func ListSlots(ctx context.Context, cfg *config.Config) ([]string, error) {
	if cfg.Store == config.StoreSQLite {
		s, err := sqlite.Open(ctx, cfg.SQLitePath, cfg.SaveSlot)
		if err != nil {
			return nil, err
		}
		defer s.Close()
		return s.ListSlots(ctx)
	}
	return models.NewFileStore(cfg.SaveDir, cfg.SaveSlot).ListSlots()
}
