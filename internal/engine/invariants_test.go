package engine

import (
	"math/rand/v2"
	"testing"

	"github.com/tatianab/dragon-repeller/internal/models"
)

// TestRandomWalkInvariants plays long random games and checks the player
// invariants after every step.
func TestRandomWalkInvariants(t *testing.T) {
	t.Parallel()

	extra := []string{"sellWeapon", "easterEgg", "buyWeapon", "castFireball"}

	for seed := uint64(1); seed <= 20; seed++ {
		e, err := New(defaultTables(t), NewSource(seed))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		picker := rand.New(rand.NewPCG(seed, 7))
		s := e.NewGame()
		wins, losses := 0, 0

		for step := 0; step < 2000; step++ {
			prev := s
			loc, _ := e.Tables().Location(s.Location)
			id := loc.Choices[picker.IntN(len(loc.Choices))].Action
			if picker.IntN(5) == 0 {
				id = extra[picker.IntN(len(extra))]
			}
			a, _ := ParseAction(id)
			s = e.Apply(s, a)

			p := s.Player
			if p.Health < 0 || p.Health > p.MaxHealth {
				t.Fatalf("seed %d step %d: health %d outside [0,%d]", seed, step, p.Health, p.MaxHealth)
			}
			if p.Weapon < 0 || p.Weapon >= len(e.Tables().Weapons) {
				t.Fatalf("seed %d step %d: weapon tier %d", seed, step, p.Weapon)
			}
			if len(p.Inventory) == 0 {
				t.Fatalf("seed %d step %d: empty inventory", seed, step)
			}
			if p.Gold < 0 || p.Level < 1 || p.MaxHealth < models.StartHealth {
				t.Fatalf("seed %d step %d: player %+v", seed, step, p)
			}
			if p.Health == 0 && s.Location != models.LocationLose {
				t.Fatalf("seed %d step %d: dead in %q", seed, step, s.Location)
			}
			if s.Location == models.LocationLose && p.Health != 0 {
				t.Fatalf("seed %d step %d: lose screen at %d health", seed, step, p.Health)
			}
			if !s.Location.Terminal() && p.XP >= p.Level*100 {
				t.Fatalf("seed %d step %d: xp %d not leveled at %d", seed, step, p.XP, p.Level)
			}
			if (s.Location == models.LocationFight) != (s.Fight != nil) {
				t.Fatalf("seed %d step %d: fight %v at %q", seed, step, s.Fight, s.Location)
			}
			if prev.Location == models.LocationFight && s.Location == models.LocationWin {
				wins++
			}
			if s.Location == models.LocationLose && prev.Location != models.LocationLose {
				losses++
			}
		}
		if wins+losses == 0 {
			t.Logf("seed %d: no game finished", seed)
		}
	}
}
