package engine

import (
	"strings"
	"testing"

	"github.com/tatianab/dragon-repeller/internal/models"
)

// Draw order per attack: monster damage, hit roll, damage roll (on hit),
// break roll.

func fightState(t *testing.T, e *Engine, p models.Player, monster string) State {
	t.Helper()
	s := State{Player: p, Location: models.LocationCave}
	s = e.Apply(s, Fight(monster))
	if s.Location != models.LocationFight || s.Fight == nil {
		t.Fatalf("fight did not start: %+v", s)
	}
	return s
}

func TestSlimeFightOneHit(t *testing.T) {
	e, _ := newTestEngine(t, 0, 0.5, 0, 0.5)
	p := models.NewPlayer()
	p.Weapon = 1
	p.Inventory = []string{"stick", "dagger"}

	s := e.Apply(State{Player: p, Location: models.LocationTown}, mustParse(t, "fightSlime"))
	if s.Fight.Health != 15 || s.Fight.MaxHealth != 15 {
		t.Fatalf("slime health = %d/%d, want 15/15", s.Fight.Health, s.Fight.MaxHealth)
	}

	s = e.Apply(s, Attack)
	if s.Location != models.LocationVictory {
		t.Fatalf("location = %q, want victory", s.Location)
	}
	if s.Fight != nil {
		t.Fatal("fight not cleared after victory")
	}
	if s.Player.Gold != 50+13 {
		t.Errorf("gold = %d, want 63", s.Player.Gold)
	}
	if s.Player.XP != 20 {
		t.Errorf("xp = %d, want 20", s.Player.XP)
	}
	if s.Player.Health != 90 {
		t.Errorf("health = %d, want 90", s.Player.Health)
	}
	if !strings.Contains(s.Message, "slime is defeated! You gained 20 XP and 13 gold!") {
		t.Errorf("message = %q", s.Message)
	}

	s = e.Apply(s, mustParse(t, "goTown"))
	if s.Location != models.LocationTown {
		t.Fatalf("location = %q, want town", s.Location)
	}
}

func TestStickNeedsThreeHits(t *testing.T) {
	// Stick deals 6 per hit against 15 health.
	e, _ := newTestEngine(t,
		0, 0.9, 0, 0.9,
		0, 0.9, 0, 0.9,
		0, 0.9, 0, 0.9,
	)
	s := fightState(t, e, models.NewPlayer(), "slime")

	transitions := 0
	for i := 0; i < 3; i++ {
		s = e.Apply(s, Attack)
		if s.Location != models.LocationFight {
			transitions++
		}
	}
	if transitions != 1 || s.Location != models.LocationVictory {
		t.Fatalf("transitions = %d location = %q, want one victory", transitions, s.Location)
	}
	if s.Player.Health != 70 {
		t.Fatalf("health = %d, want 70", s.Player.Health)
	}
}

func TestMonsterDamageReducedByXP(t *testing.T) {
	e, _ := newTestEngine(t, 0.5, 0.9, 0, 0.9)
	p := models.NewPlayer()
	p.XP = 50
	s := fightState(t, e, p, "slime")

	s = e.Apply(s, Attack)
	// slime: 2*5 - floor(0.5*50) < 0, so no damage.
	if s.Player.Health != 100 {
		t.Fatalf("health = %d, want 100", s.Player.Health)
	}
	// stick 5 + floor(0*50/10) + 1
	if s.Fight.Health != 15-6 {
		t.Fatalf("slime health = %d, want 9", s.Fight.Health)
	}
}

func TestDamageRollScalesWithXP(t *testing.T) {
	e, _ := newTestEngine(t, 0.99, 0.9, 0.5, 0.9)
	p := models.NewPlayer()
	p.XP = 80
	s := fightState(t, e, p, "troll")

	s = e.Apply(s, Attack)
	// troll: 75 - floor(0.99*80) = 75 - 79 < 0
	if s.Player.Health != 100 {
		t.Fatalf("health = %d, want 100", s.Player.Health)
	}
	// 5 + floor(0.5*80/10) + 1 = 10
	if s.Fight.Health != 150-10 {
		t.Fatalf("troll health = %d, want 140", s.Fight.Health)
	}
}

func TestMissAndSureHit(t *testing.T) {
	t.Run("miss at full health", func(t *testing.T) {
		e, src := newTestEngine(t, 0, 0.2, 0.9)
		s := fightState(t, e, models.NewPlayer(), "slime")
		s = e.Apply(s, Attack)
		if s.Fight.Health != 15 {
			t.Fatalf("slime health = %d, want 15", s.Fight.Health)
		}
		if !strings.Contains(s.Message, "You miss.") {
			t.Fatalf("message = %q", s.Message)
		}
		if src.i != 3 {
			t.Fatalf("draws = %d, want 3 (no damage roll on a miss)", src.i)
		}
	})
	t.Run("never miss when low", func(t *testing.T) {
		e, _ := newTestEngine(t, 0, 0.1, 0, 0.9)
		p := models.NewPlayer()
		p.Health = 19
		s := fightState(t, e, p, "slime")
		s = e.Apply(s, Attack)
		if s.Fight.Health != 9 {
			t.Fatalf("slime health = %d, want 9", s.Fight.Health)
		}
		if s.Player.Health != 9 {
			t.Fatalf("health = %d, want 9", s.Player.Health)
		}
	})
}

func TestWeaponBreaks(t *testing.T) {
	e, _ := newTestEngine(t, 0, 0.9, 0, 0.1)
	p := models.NewPlayer()
	p.Weapon = 2
	p.Inventory = []string{"dagger", "claw hammer"}
	s := fightState(t, e, p, "skeleton")

	s = e.Apply(s, Attack)
	if s.Player.Weapon != 1 {
		t.Fatalf("weapon = %d, want 1", s.Player.Weapon)
	}
	if len(s.Player.Inventory) != 1 || s.Player.Inventory[0] != "dagger" {
		t.Fatalf("inventory = %v, want [dagger]", s.Player.Inventory)
	}
	if !strings.Contains(s.Message, "Your claw hammer breaks!") {
		t.Fatalf("message = %q", s.Message)
	}
}

func TestLastWeaponNeverBreaks(t *testing.T) {
	e, _ := newTestEngine(t, 0, 0.9, 0, 0.0)
	p := models.NewPlayer()
	p.Weapon = 3
	p.Inventory = []string{"sword"}
	s := fightState(t, e, p, "skeleton")

	s = e.Apply(s, Attack)
	if s.Player.Weapon != 3 || len(s.Player.Inventory) != 1 {
		t.Fatalf("weapon = %d inventory = %v, want unchanged", s.Player.Weapon, s.Player.Inventory)
	}
}

func TestLoseClampsHealth(t *testing.T) {
	e, _ := newTestEngine(t, 0, 0.9, 0, 0.9)
	p := models.NewPlayer()
	p.Health = 30
	s := fightState(t, e, p, "dragon")

	s = e.Apply(s, Attack)
	if s.Player.Health != 0 {
		t.Fatalf("health = %d, want 0", s.Player.Health)
	}
	if s.Location != models.LocationLose {
		t.Fatalf("location = %q, want lose", s.Location)
	}
	if s.Fight != nil {
		t.Fatal("fight not cleared after death")
	}

	s = e.Apply(s, mustParse(t, "goTown"))
	if s.Location != models.LocationLose {
		t.Fatalf("left lose screen without restart: %q", s.Location)
	}
	s = e.Apply(s, Restart)
	if s.Location != models.LocationTown || !s.Player.Equal(models.NewPlayer()) {
		t.Fatalf("restart = %+v", s)
	}
}

func TestDeathBeatsKill(t *testing.T) {
	// Both sides drop to zero in the same round: the player loses.
	e, _ := newTestEngine(t, 0, 0.9, 0, 0.9)
	p := models.NewPlayer()
	p.Health = 10
	s := fightState(t, e, p, "slime")
	s.Fight.Health = 1

	s = e.Apply(s, Attack)
	if s.Location != models.LocationLose {
		t.Fatalf("location = %q, want lose", s.Location)
	}
	if s.Player.Gold != 50 || s.Player.XP != 0 {
		t.Fatalf("rewards granted on death: %+v", s.Player)
	}
}

func TestDragonWins(t *testing.T) {
	e, _ := newTestEngine(t, 0, 0.9, 0, 0.9)
	p := models.Player{XP: 900, Level: 10, Health: 280, MaxHealth: 280, Gold: 0, Weapon: 6, Inventory: []string{"dragon slayer"}}
	s := fightState(t, e, p, "dragon")
	s.Fight.Health = 100

	s = e.Apply(s, Attack)
	if s.Location != models.LocationWin {
		t.Fatalf("location = %q, want win", s.Location)
	}
	if s.Player.Gold != 0 {
		t.Fatalf("gold = %d, final boss grants no victory reward", s.Player.Gold)
	}
	if got := e.Apply(s, mustParse(t, "fightSlime")); got.Location != models.LocationWin {
		t.Fatalf("left win screen without restart: %q", got.Location)
	}
}

func TestDodgeAndRun(t *testing.T) {
	e, src := newTestEngine(t)
	s := fightState(t, e, models.NewPlayer(), "goblin")

	s = e.Apply(s, Dodge)
	if s.Player.Health != 100 || s.Fight.Health != 40 {
		t.Fatalf("dodge changed stats: player %d monster %d", s.Player.Health, s.Fight.Health)
	}
	if s.Message != "You dodge the attack from the goblin!" {
		t.Fatalf("message = %q", s.Message)
	}

	s = e.Apply(s, Run)
	if s.Location != models.LocationTown || s.Fight != nil {
		t.Fatalf("run = %+v", s)
	}
	if !s.Player.Equal(models.NewPlayer()) {
		t.Fatalf("run changed player: %+v", s.Player)
	}
	if src.i != 0 {
		t.Fatalf("dodge and run drew %d numbers, want 0", src.i)
	}
}
