package models

// Weapon is one tier of the weapon table.
type Weapon struct {
	Name  string `yaml:"name" json:"name"`
	Power int    `yaml:"power" json:"power"`
}

// Monster is a roster entry. Fights copy Health into a fresh Fight value.
type Monster struct {
	Name   string `yaml:"name" json:"name"`
	Level  int    `yaml:"level" json:"level"`
	Health int    `yaml:"health" json:"health"`
	Emoji  string `yaml:"emoji" json:"emoji"`
}

// LocationID names one node of the location graph.
type LocationID string

const (
	LocationTown      LocationID = "town"
	LocationStore     LocationID = "store"
	LocationCave      LocationID = "cave"
	LocationDungeon   LocationID = "dungeon"
	LocationFight     LocationID = "fight"
	LocationVictory   LocationID = "victory"
	LocationLose      LocationID = "lose"
	LocationWin       LocationID = "win"
	LocationEasterEgg LocationID = "easterEgg"
	LocationMountains LocationID = "mountains"
	LocationCastle    LocationID = "castle"
)

// Locations lists every location the engine can move to.
var Locations = []LocationID{
	LocationTown,
	LocationStore,
	LocationCave,
	LocationDungeon,
	LocationFight,
	LocationVictory,
	LocationLose,
	LocationWin,
	LocationEasterEgg,
	LocationMountains,
	LocationCastle,
}

// Terminal reports whether only a restart can leave the location.
func (id LocationID) Terminal() bool {
	return id == LocationLose || id == LocationWin
}

// Choice is one labeled button of a location.
type Choice struct {
	Label  string `yaml:"label" json:"label"`
	Action string `yaml:"action" json:"id"`
}

// Location is a node of the location graph.
type Location struct {
	ID      LocationID `yaml:"id" json:"id"`
	Name    string     `yaml:"name" json:"name"`
	Text    string     `yaml:"text" json:"text"`
	Choices []Choice   `yaml:"choices" json:"actions"`
}

// Player is the part of the game state that survives between sessions.
type Player struct {
	XP        int
	Level     int
	Health    int
	MaxHealth int
	Gold      int
	Weapon    int // tier index into the weapon table
	Inventory []string
}

// Starting values for a new game.
const (
	StartHealth = 100
	StartGold   = 50
	StartWeapon = "stick"
)

// NewPlayer returns the player a new game (or a restart) begins with.
func NewPlayer() Player {
	return Player{
		XP:        0,
		Level:     1,
		Health:    StartHealth,
		MaxHealth: StartHealth,
		Gold:      StartGold,
		Weapon:    0,
		Inventory: []string{StartWeapon},
	}
}

// Clone returns a copy that shares no memory with p.
func (p Player) Clone() Player {
	c := p
	c.Inventory = append([]string(nil), p.Inventory...)
	return c
}

// Equal reports whether two players hold the same values.
func (p Player) Equal(o Player) bool {
	if p.XP != o.XP || p.Level != o.Level || p.Health != o.Health ||
		p.MaxHealth != o.MaxHealth || p.Gold != o.Gold || p.Weapon != o.Weapon {
		return false
	}
	if len(p.Inventory) != len(o.Inventory) {
		return false
	}
	for i := range p.Inventory {
		if p.Inventory[i] != o.Inventory[i] {
			return false
		}
	}
	return true
}
