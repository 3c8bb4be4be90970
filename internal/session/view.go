package session

import "github.com/tatianab/dragon-repeller/internal/models"

// View is the read-only projection a shell renders.
type View struct {
	Location     models.LocationID `json:"location"`
	LocationName string            `json:"locationName"`
	Text         string            `json:"text"`
	Actions      []models.Choice   `json:"actions"`
	Player       PlayerView        `json:"player"`
	Monster      *MonsterView      `json:"monster,omitempty"`
	Over         bool              `json:"over"`
}

// PlayerView is the player's stat block.
type PlayerView struct {
	Level       int      `json:"level"`
	XP          int      `json:"xp"`
	XPNeeded    int      `json:"xpNeeded"`
	Health      int      `json:"health"`
	MaxHealth   int      `json:"maxHealth"`
	Gold        int      `json:"gold"`
	Weapon      string   `json:"weapon"`
	WeaponPower int      `json:"weaponPower"`
	Inventory   []string `json:"inventory"`
}

// MonsterView describes the monster in the current fight.
type MonsterView struct {
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Level     int    `json:"level"`
	Health    int    `json:"health"`
	MaxHealth int    `json:"maxHealth"`
}

// View projects the current state for rendering.
func (s *Session) View() View {
	tables := s.engine.Tables()
	st := s.state
	loc, _ := tables.Location(st.Location)
	p := st.Player
	w := tables.Weapons[p.Weapon]

	v := View{
		Location:     st.Location,
		LocationName: loc.Name,
		Text:         st.Message,
		Actions:      append([]models.Choice(nil), loc.Choices...),
		Player: PlayerView{
			Level:       p.Level,
			XP:          p.XP,
			XPNeeded:    p.Level * 100,
			Health:      p.Health,
			MaxHealth:   p.MaxHealth,
			Gold:        p.Gold,
			Weapon:      w.Name,
			WeaponPower: w.Power,
			Inventory:   append([]string(nil), p.Inventory...),
		},
		Over: st.Location.Terminal(),
	}
	if f := st.Fight; f != nil {
		m := tables.Monsters[f.Monster]
		v.Monster = &MonsterView{
			Name:      m.Name,
			Emoji:     m.Emoji,
			Level:     m.Level,
			Health:    f.Health,
			MaxHealth: f.MaxHealth,
		}
	}
	return v
}
