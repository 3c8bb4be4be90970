package models

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const DefaultSaveDir = ".saves"

// SnapshotVersion is written into every new snapshot.
const SnapshotVersion = 1

var (
	// ErrNoSave is returned by Store.Load when the slot holds no snapshot.
	ErrNoSave = errors.New("no saved game")
	// ErrIncompatibleSnapshot marks a snapshot written by a newer schema.
	ErrIncompatibleSnapshot = errors.New("saved game uses an unsupported version")
	// ErrInvalidSnapshot marks a snapshot that is not a reachable player state.
	ErrInvalidSnapshot = errors.New("saved game is inconsistent")
)

// Snapshot is the persisted form of a Player.
type Snapshot struct {
	Version       int      `yaml:"version" json:"version"`
	XP            int      `yaml:"xp" json:"xp"`
	Health        int      `yaml:"health" json:"health"`
	MaxHealth     int      `yaml:"maxHealth" json:"maxHealth"`
	Gold          int      `yaml:"gold" json:"gold"`
	CurrentWeapon int      `yaml:"currentWeapon" json:"currentWeapon"`
	Inventory     []string `yaml:"inventory" json:"inventory"`
	Level         int      `yaml:"level" json:"level"`
}

// NewSnapshot captures p at the current schema version.
func NewSnapshot(p Player) Snapshot {
	return Snapshot{
		Version:       SnapshotVersion,
		XP:            p.XP,
		Health:        p.Health,
		MaxHealth:     p.MaxHealth,
		Gold:          p.Gold,
		CurrentWeapon: p.Weapon,
		Inventory:     append([]string(nil), p.Inventory...),
		Level:         p.Level,
	}
}

// Player converts the snapshot back into a Player after checking it against
// a weapon table of weaponCount tiers.
func (s Snapshot) Player(weaponCount int) (Player, error) {
	if s.Version > SnapshotVersion {
		return Player{}, fmt.Errorf("%w: version %d", ErrIncompatibleSnapshot, s.Version)
	}
	switch {
	case s.Level < 1:
		return Player{}, fmt.Errorf("%w: level %d", ErrInvalidSnapshot, s.Level)
	case s.XP < 0:
		return Player{}, fmt.Errorf("%w: xp %d", ErrInvalidSnapshot, s.XP)
	case s.Gold < 0:
		return Player{}, fmt.Errorf("%w: gold %d", ErrInvalidSnapshot, s.Gold)
	case s.MaxHealth < StartHealth:
		return Player{}, fmt.Errorf("%w: max health %d", ErrInvalidSnapshot, s.MaxHealth)
	case s.Health < 0 || s.Health > s.MaxHealth:
		return Player{}, fmt.Errorf("%w: health %d/%d", ErrInvalidSnapshot, s.Health, s.MaxHealth)
	case s.CurrentWeapon < 0 || s.CurrentWeapon >= weaponCount:
		return Player{}, fmt.Errorf("%w: weapon tier %d", ErrInvalidSnapshot, s.CurrentWeapon)
	case len(s.Inventory) == 0:
		return Player{}, fmt.Errorf("%w: empty inventory", ErrInvalidSnapshot)
	}
	return Player{
		XP:        s.XP,
		Level:     s.Level,
		Health:    s.Health,
		MaxHealth: s.MaxHealth,
		Gold:      s.Gold,
		Weapon:    s.CurrentWeapon,
		Inventory: append([]string(nil), s.Inventory...),
	}, nil
}

// Store keeps at most one snapshot.
type Store interface {
	Save(ctx context.Context, s Snapshot) error
	Load(ctx context.Context) (Snapshot, error)
	Clear(ctx context.Context) error
}

// FileStore keeps one YAML snapshot per slot under Dir.
type FileStore struct {
	Dir  string
	Slot string
}

// NewFileStore returns a FileStore for slot under dir. Empty values fall back
// to DefaultSaveDir and "default".
func NewFileStore(dir, slot string) *FileStore {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultSaveDir
	}
	if strings.TrimSpace(slot) == "" {
		slot = "default"
	}
	return &FileStore{Dir: dir, Slot: slot}
}

func (f *FileStore) path() string {
	return filepath.Join(f.Dir, f.Slot, "state.yaml")
}

func (f *FileStore) Save(ctx context.Context, s Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Join(f.Dir, f.Slot)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	// Replace atomically; readers never see a partial document.
	tmp := f.path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path()); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (f *FileStore) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	data, err := os.ReadFile(f.path())
	if errors.Is(err, os.ErrNotExist) {
		return Snapshot{}, ErrNoSave
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return s, nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(f.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove snapshot: %w", err)
	}
	return nil
}

// ListSlots returns the slots under Dir that hold a snapshot.
func (f *FileStore) ListSlots() ([]string, error) {
	if _, err := os.Stat(f.Dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(f.Dir)
	if err != nil {
		return nil, err
	}

	var slots []string
	for _, entry := range entries {
		if entry.IsDir() {
			statePath := filepath.Join(f.Dir, entry.Name(), "state.yaml")
			if _, err := os.Stat(statePath); err == nil {
				slots = append(slots, entry.Name())
			}
		}
	}
	return slots, nil
}
