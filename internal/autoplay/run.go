package autoplay

import (
	"context"
	"fmt"

	"github.com/tatianab/dragon-repeller/internal/models"
	"github.com/tatianab/dragon-repeller/internal/session"
)

// Turn records one dispatched action and where it led.
type Turn struct {
	Number   int
	Action   string
	Location models.LocationID
	Text     string
	Player   session.PlayerView
}

// Report summarises a run.
type Report struct {
	Turns []Turn
	Final session.View
}

// Outcome is the final location when the game ended, or empty when the run
// hit its turn limit first.
func (r Report) Outcome() models.LocationID {
	if r.Final.Over {
		return r.Final.Location
	}
	return ""
}

// Run lets player drive sess until the game ends or maxTurns actions have
// been dispatched. onTurn, if set, sees every turn as it happens.
func Run(ctx context.Context, sess *session.Session, player Player, maxTurns int, onTurn func(Turn)) (Report, error) {
	var r Report
	v := sess.View()
	for n := 1; n <= maxTurns && !v.Over; n++ {
		if err := ctx.Err(); err != nil {
			r.Final = v
			return r, err
		}
		id, err := player.ChooseAction(ctx, v)
		if err != nil {
			r.Final = v
			return r, fmt.Errorf("turn %d: %w", n, err)
		}
		sess.Dispatch(ctx, id)
		v = sess.View()

		t := Turn{Number: n, Action: id, Location: v.Location, Text: v.Text, Player: v.Player}
		r.Turns = append(r.Turns, t)
		if onTurn != nil {
			onTurn(t)
		}
	}
	r.Final = v
	return r, nil
}
