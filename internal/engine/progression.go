package engine

import (
	"fmt"
	"strings"
)

const (
	xpPerLevel      = 100
	levelUpHealth   = 20
	healthPrice     = 10
	healthPerPotion = 10
	weaponPrice     = 30
	weaponRefund    = 15
)

// levelUp promotes the player once per threshold crossed, healing fully each
// time. A single large xp award can cascade through several levels.
func (e *Engine) levelUp(s *State) {
	if s.Location.Terminal() {
		return
	}
	p := &s.Player
	for p.XP >= p.Level*xpPerLevel {
		p.Level++
		p.MaxHealth += levelUpHealth
		p.Health = p.MaxHealth
		s.Message += fmt.Sprintf("\n🎉 LEVEL UP! You are now level %d! Max health increased to %d.", p.Level, p.MaxHealth)
	}
	s.Message = strings.TrimPrefix(s.Message, "\n")
}

func (e *Engine) buyHealth(s *State) {
	p := &s.Player
	if p.Gold < healthPrice {
		s.Message = "You do not have enough gold to buy health."
		return
	}
	p.Gold -= healthPrice
	p.Health = min(p.Health+healthPerPotion, p.MaxHealth)
	s.Message = fmt.Sprintf("You bought %d health for %d gold. Current health: %d/%d", healthPerPotion, healthPrice, p.Health, p.MaxHealth)
}

func (e *Engine) buyWeapon(s *State) {
	p := &s.Player
	if p.Weapon >= len(e.tables.Weapons)-1 {
		s.Message = "You already have the most powerful weapon!"
		return
	}
	if p.Gold < weaponPrice {
		s.Message = "You do not have enough gold to buy a weapon."
		return
	}
	p.Gold -= weaponPrice
	p.Weapon++
	w := e.weapon(*p)
	p.Inventory = append(p.Inventory, w.Name)
	s.Message = fmt.Sprintf("You now have a %s (%d power)! In your inventory you have: %s", w.Name, w.Power, strings.Join(p.Inventory, ", "))
}

// sellWeapon sells the oldest weapon and never the last one.
func (e *Engine) sellWeapon(s *State) {
	p := &s.Player
	if len(p.Inventory) <= 1 {
		s.Message = "Don't sell your only weapon!"
		return
	}
	sold := p.Inventory[0]
	p.Inventory = p.Inventory[1:]
	p.Gold += weaponRefund
	s.Message = fmt.Sprintf("You sold a %s. In your inventory you have: %s", sold, strings.Join(p.Inventory, ", "))
}
