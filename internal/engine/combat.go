package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/tatianab/dragon-repeller/internal/models"
)

const (
	missChance     = 0.2
	breakChance    = 0.1
	sureHitHealth  = 20 // below this the player never misses
	monsterHitMult = 5
)

func (e *Engine) startFight(s *State, name string) {
	i := e.tables.MonsterIndex(name)
	if i < 0 {
		s.Message = fmt.Sprintf("There is no %s around here.", name)
		return
	}
	m := e.tables.Monsters[i]
	e.travel(s, models.LocationFight)
	s.Fight = &Battle{Monster: i, Health: m.Health, MaxHealth: m.Health}
}

// attack plays one exchange. The monster always strikes first; the player
// may then hit, and the equipped weapon may break.
func (e *Engine) attack(s *State) {
	f := s.Fight
	if f == nil {
		return
	}
	m := e.tables.Monsters[f.Monster]
	p := &s.Player

	var b strings.Builder
	fmt.Fprintf(&b, "The %s attacks. ", m.Name)

	before := p.Health
	dmg := e.monsterDamage(m.Level, p.XP)
	p.Health = max(0, p.Health-dmg)
	fmt.Fprintf(&b, "You take %d damage! ", dmg)

	w := e.weapon(*p)
	if e.rng.Float64() > missChance || before < sureHitHealth {
		hit := w.Power + int(math.Floor(e.rng.Float64()*float64(p.XP)/10)) + 1
		f.Health -= hit
		fmt.Fprintf(&b, "You attack with your %s and deal %d damage!", w.Name, hit)
	} else {
		b.WriteString("You miss.")
	}

	if e.rng.Float64() <= breakChance && len(p.Inventory) > 1 && p.Weapon > 0 {
		broken := p.Inventory[len(p.Inventory)-1]
		p.Inventory = p.Inventory[:len(p.Inventory)-1]
		p.Weapon--
		fmt.Fprintf(&b, " Your %s breaks!", broken)
	}

	s.Message = b.String()

	switch {
	case p.Health <= 0:
		e.travel(s, models.LocationLose)
		s.Message = b.String() + "\n" + s.Message
	case f.Health <= 0:
		if f.Monster == e.tables.FinalMonster() {
			e.travel(s, models.LocationWin)
			s.Message = b.String() + "\n" + s.Message
			return
		}
		e.defeat(s, f.Monster, b.String())
	}
}

// monsterDamage is level*5 minus a random share of the player's xp, never
// negative.
func (e *Engine) monsterDamage(level, xp int) int {
	return max(0, level*monsterHitMult-int(math.Floor(e.rng.Float64()*float64(xp))))
}

func (e *Engine) dodge(s *State) {
	if s.Fight == nil {
		return
	}
	s.Message = fmt.Sprintf("You dodge the attack from the %s!", e.tables.Monsters[s.Fight.Monster].Name)
}

// defeat grants floor(level*6.7) gold and level*10 xp, then shows the
// victory screen.
func (e *Engine) defeat(s *State, monster int, log string) {
	m := e.tables.Monsters[monster]
	gold := m.Level * 67 / 10
	xp := m.Level * 10
	s.Player.Gold += gold
	s.Player.XP += xp

	e.travel(s, models.LocationVictory)
	s.Message = fmt.Sprintf("%s\nThe %s %s is defeated! You gained %d XP and %d gold!", log, m.Emoji, m.Name, xp, gold)
}
