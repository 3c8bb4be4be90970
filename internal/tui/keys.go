package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/tatianab/dragon-repeller/internal/models"
	"github.com/tatianab/dragon-repeller/internal/session"
)

type keyMap struct {
	Choices  [3]key.Binding
	Sell     key.Binding
	Egg      key.Binding
	Continue key.Binding
	NewGame  key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Choices: [3]key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1-3", "choose")),
			key.NewBinding(key.WithKeys("2")),
			key.NewBinding(key.WithKeys("3")),
		},
		Sell:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sell oldest weapon")),
		Egg:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "🥚")),
		Continue: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "continue game")),
		NewGame:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// update enables only the bindings that make sense on the current screen.
func (k *keyMap) update(state sessionState, v session.View) {
	playing := state == statePlaying
	for i := range k.Choices {
		k.Choices[i].SetEnabled(playing && i < len(v.Actions))
	}
	k.Sell.SetEnabled(playing && v.Location == models.LocationStore)
	k.Egg.SetEnabled(playing && !v.Over && v.Location != models.LocationFight)
	k.Continue.SetEnabled(!playing)
	k.NewGame.SetEnabled(!playing)
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choices[0], k.Sell, k.Egg, k.Continue, k.NewGame, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
