// Package session connects the engine to a snapshot store and exposes the
// contract every presentation shell uses.
package session

import (
	"context"
	"errors"
	"log"

	"github.com/tatianab/dragon-repeller/internal/engine"
	"github.com/tatianab/dragon-repeller/internal/models"
)

// Session is one player's game. It is not safe for concurrent use.
type Session struct {
	engine *engine.Engine
	store  models.Store
	state  engine.State
}

// New starts a session on a fresh game. Call HasSavedGame and ContinueGame
// to pick up an earlier one.
func New(eng *engine.Engine, store models.Store) *Session {
	return &Session{
		engine: eng,
		store:  store,
		state:  eng.NewGame(),
	}
}

// State returns the current engine state.
func (s *Session) State() engine.State {
	return s.state
}

// HasSavedGame reports whether the store holds a snapshot. Read errors count
// as no save.
func (s *Session) HasSavedGame(ctx context.Context) bool {
	_, err := s.store.Load(ctx)
	if err != nil && !errors.Is(err, models.ErrNoSave) {
		log.Printf("check saved game: %v", err)
	}
	return err == nil
}

// ContinueGame resumes the stored game. A missing, unreadable or
// inconsistent snapshot is logged and replaced by a fresh game.
func (s *Session) ContinueGame(ctx context.Context) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, models.ErrNoSave) {
			log.Printf("load saved game: %v", err)
		}
		s.state = s.engine.NewGame()
		return
	}
	p, err := snap.Player(len(s.engine.Tables().Weapons))
	if err != nil {
		log.Printf("discard saved game: %v", err)
		s.state = s.engine.NewGame()
		return
	}
	s.state = s.engine.Resume(p)
}

// StartNewGame throws away any stored game and begins again.
func (s *Session) StartNewGame(ctx context.Context) {
	s.state = s.engine.NewGame()
	s.clear(ctx)
}

// Dispatch applies the action with the given wire id. Unknown ids do
// nothing. Any change to the player is saved; a restart clears the save.
func (s *Session) Dispatch(ctx context.Context, id string) {
	a, ok := engine.ParseAction(id)
	if !ok {
		return
	}
	prev := s.state
	s.state = s.engine.Apply(prev, a)

	if a.Kind == engine.KindRestart && s.engine.Allowed(prev, a) {
		s.clear(ctx)
		return
	}
	if !s.state.Player.Equal(prev.Player) {
		s.save(ctx)
	}
}

func (s *Session) save(ctx context.Context) {
	if err := s.store.Save(ctx, models.NewSnapshot(s.state.Player)); err != nil {
		log.Printf("autosave: %v", err)
	}
}

func (s *Session) clear(ctx context.Context) {
	if err := s.store.Clear(ctx); err != nil {
		log.Printf("clear saved game: %v", err)
	}
}
