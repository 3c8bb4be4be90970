// Package engine implements the Dragon Repeller rules as a pure reducer.
//
// Engine.Apply takes a State and an Action and returns the next State. It
// never mutates its argument and never performs I/O, so callers decide when
// to persist. All randomness comes from the injected Source.
package engine

import (
	"fmt"

	"github.com/tatianab/dragon-repeller/internal/content"
	"github.com/tatianab/dragon-repeller/internal/models"
)

// Battle is the monster currently being fought.
type Battle struct {
	Monster   int // roster index
	Health    int
	MaxHealth int
}

// State is everything the engine needs to take the next step.
type State struct {
	Player   models.Player
	Location models.LocationID
	Fight    *Battle
	Message  string
}

func (s State) clone() State {
	c := s
	c.Player = s.Player.Clone()
	if s.Fight != nil {
		f := *s.Fight
		c.Fight = &f
	}
	return c
}

// Engine applies actions against a fixed set of content tables.
type Engine struct {
	tables *content.Tables
	rng    Source
}

// New returns an Engine for tables. It fails if the location graph offers an
// action the engine does not understand.
func New(tables *content.Tables, rng Source) (*Engine, error) {
	if tables == nil {
		return nil, fmt.Errorf("content tables are required")
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	for _, loc := range tables.Locations {
		for _, c := range loc.Choices {
			a, ok := ParseAction(c.Action)
			if !ok {
				return nil, fmt.Errorf("location %q: unknown action %q", loc.ID, c.Action)
			}
			if a.Kind == KindFight && tables.MonsterIndex(a.Monster) < 0 {
				return nil, fmt.Errorf("location %q: no monster named %q", loc.ID, a.Monster)
			}
		}
	}
	return &Engine{tables: tables, rng: rng}, nil
}

// Tables returns the content the engine plays with.
func (e *Engine) Tables() *content.Tables {
	return e.tables
}

// NewGame returns the opening state of a fresh game.
func (e *Engine) NewGame() State {
	return State{
		Player:   models.NewPlayer(),
		Location: models.LocationTown,
		Message:  e.tables.Welcome,
	}
}

// Resume places a loaded player back in town, or on the lose screen if the
// save was written after death.
func (e *Engine) Resume(p models.Player) State {
	s := State{
		Player:   p.Clone(),
		Location: models.LocationTown,
		Message:  "Game loaded! Welcome back, hero.",
	}
	if p.Health <= 0 {
		s.Location = models.LocationLose
		s.Message = e.text(models.LocationLose)
	}
	return s
}

// Apply returns the state that follows s after a. Unknown actions return s
// unchanged; declined actions change only the message.
func (e *Engine) Apply(s State, a Action) State {
	if a.Kind == KindNone {
		return s
	}
	next := s.clone()
	if msg, ok := e.accepts(next, a); !ok {
		next.Message = msg
		return next
	}

	switch a.Kind {
	case KindTravel:
		e.travel(&next, a.To)
	case KindEasterEgg:
		e.travel(&next, models.LocationEasterEgg)
	case KindRestart:
		next = e.NewGame()
		next.Message = e.text(models.LocationTown)
		return next
	case KindFight:
		e.startFight(&next, a.Monster)
	case KindAttack:
		e.attack(&next)
	case KindDodge:
		e.dodge(&next)
	case KindRun:
		e.travel(&next, models.LocationTown)
	case KindBuyHealth:
		e.buyHealth(&next)
	case KindBuyWeapon:
		e.buyWeapon(&next)
	case KindSellWeapon:
		e.sellWeapon(&next)
	case KindPick:
		e.pick(&next, a.Guess)
	default:
		return s
	}
	e.levelUp(&next)
	return next
}

// Allowed reports whether a would be carried out in s rather than declined.
func (e *Engine) Allowed(s State, a Action) bool {
	if a.Kind == KindNone {
		return false
	}
	_, ok := e.accepts(s, a)
	return ok
}

// accepts reports whether a may run in the current location and, if not,
// the message explaining why.
func (e *Engine) accepts(s State, a Action) (string, bool) {
	switch {
	case s.Location.Terminal():
		if a.Kind != KindRestart {
			return "The game is over. Choose REPLAY? to play again.", false
		}
		return "", true
	case s.Location == models.LocationFight:
		switch a.Kind {
		case KindAttack, KindDodge, KindRun:
			return "", true
		}
		return "You are in the middle of a fight!", false
	}

	switch a.Kind {
	case KindAttack, KindDodge, KindRun:
		return "There is nothing to fight here.", false
	case KindBuyHealth, KindBuyWeapon, KindSellWeapon:
		if s.Location != models.LocationStore {
			return "You need to be in the store to do that.", false
		}
	case KindPick:
		if s.Location != models.LocationEasterEgg {
			return "There is no secret game here.", false
		}
	}
	return "", true
}

func (e *Engine) travel(s *State, to models.LocationID) {
	s.Location = to
	s.Fight = nil
	s.Message = e.text(to)
}

func (e *Engine) text(id models.LocationID) string {
	loc, _ := e.tables.Location(id)
	return loc.Text
}

func (e *Engine) weapon(p models.Player) models.Weapon {
	return e.tables.Weapons[p.Weapon]
}
