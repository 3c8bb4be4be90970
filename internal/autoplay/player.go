// Package autoplay drives a session with an automated player, for soak runs
// and demos.
package autoplay

import (
	"context"

	"github.com/tatianab/dragon-repeller/internal/models"
	"github.com/tatianab/dragon-repeller/internal/session"
)

// Player picks the next action id for a view.
type Player interface {
	ChooseAction(ctx context.Context, v session.View) (string, error)
}

// Scripted is a fixed, deterministic policy: heal and upgrade in the store,
// grind the cave, then the dungeon once well armed.
type Scripted struct {
	// MaxWeapon is the name of the strongest weapon; the policy stops
	// buying once it holds it.
	MaxWeapon string
}

// NewScripted returns a policy for the given weapon table.
func NewScripted(weapons []models.Weapon) *Scripted {
	s := &Scripted{}
	if n := len(weapons); n > 0 {
		s.MaxWeapon = weapons[n-1].Name
	}
	return s
}

func (s *Scripted) ChooseAction(_ context.Context, v session.View) (string, error) {
	return s.choose(v), nil
}

func (s *Scripted) choose(v session.View) string {
	p := v.Player
	switch v.Location {
	case models.LocationTown:
		if s.wantsHealth(p) || s.wantsWeapon(p) {
			return "goStore"
		}
		if p.WeaponPower >= 100 && p.Level >= 8 {
			return "goDungeon"
		}
		return "goCave"
	case models.LocationStore:
		switch {
		case s.wantsHealth(p):
			return "buyHealth"
		case s.wantsWeapon(p):
			return "buyWeapon"
		}
		return "goTown"
	case models.LocationCave:
		if p.Level < 4 {
			return "fightSlime"
		}
		return "fightBeast"
	case models.LocationDungeon:
		return "fightGoblin"
	case models.LocationFight:
		if p.Health*10 < p.MaxHealth*3 {
			return "run"
		}
		return "attack"
	case models.LocationLose, models.LocationWin:
		return "restart"
	}
	return "goTown"
}

func (s *Scripted) wantsHealth(p session.PlayerView) bool {
	return p.Health*2 < p.MaxHealth && p.Gold >= 10
}

func (s *Scripted) wantsWeapon(p session.PlayerView) bool {
	return p.Weapon != s.MaxWeapon && p.Gold >= 30
}
