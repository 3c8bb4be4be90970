// Package content holds the static weapon, monster and location tables.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/tatianab/dragon-repeller/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// WeaponTiers is the number of weapons a table must define.
const WeaponTiers = 7

// Tables is the full static content of a game. Treat it as read-only.
type Tables struct {
	Welcome   string            `yaml:"welcome"`
	Weapons   []models.Weapon   `yaml:"weapons"`
	Monsters  []models.Monster  `yaml:"monsters"`
	Locations []models.Location `yaml:"locations"`

	byID map[models.LocationID]int
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
	defaultErr    error
)

// Default returns the embedded tables, parsed once.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTables, defaultErr = Parse(embedded)
	})
	return defaultTables, defaultErr
}

// LoadFile reads a replacement content file.
func LoadFile(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the structural rules the engine relies on and builds the
// location index.
func (t *Tables) Validate() error {
	if len(t.Weapons) != WeaponTiers {
		return fmt.Errorf("content: want %d weapons, got %d", WeaponTiers, len(t.Weapons))
	}
	for i, w := range t.Weapons {
		if w.Name == "" {
			return fmt.Errorf("content: weapon %d has no name", i)
		}
		if i > 0 && w.Power <= t.Weapons[i-1].Power {
			return fmt.Errorf("content: weapon %q must be stronger than %q", w.Name, t.Weapons[i-1].Name)
		}
	}
	if t.Weapons[0].Name != models.StartWeapon {
		return fmt.Errorf("content: first weapon must be %q", models.StartWeapon)
	}

	if len(t.Monsters) == 0 {
		return errors.New("content: no monsters")
	}
	for i, m := range t.Monsters {
		if m.Name == "" || m.Level <= 0 || m.Health <= 0 {
			return fmt.Errorf("content: monster %d needs a name, level and health", i)
		}
	}

	t.byID = make(map[models.LocationID]int, len(t.Locations))
	for i, loc := range t.Locations {
		if _, dup := t.byID[loc.ID]; dup {
			return fmt.Errorf("content: duplicate location %q", loc.ID)
		}
		if n := len(loc.Choices); n < 1 || n > 3 {
			return fmt.Errorf("content: location %q has %d choices, want 1-3", loc.ID, n)
		}
		t.byID[loc.ID] = i
	}
	for _, id := range models.Locations {
		if _, ok := t.byID[id]; !ok {
			return fmt.Errorf("content: missing location %q", id)
		}
	}
	return nil
}

// Location returns the location with the given id.
func (t *Tables) Location(id models.LocationID) (models.Location, bool) {
	i, ok := t.byID[id]
	if !ok {
		return models.Location{}, false
	}
	return t.Locations[i], true
}

// FinalMonster is the index of the boss whose defeat wins the game.
func (t *Tables) FinalMonster() int {
	return len(t.Monsters) - 1
}

// MonsterIndex returns the roster index of the named monster, or -1.
func (t *Tables) MonsterIndex(name string) int {
	for i, m := range t.Monsters {
		if m.Name == name {
			return i
		}
	}
	return -1
}
