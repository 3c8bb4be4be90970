package engine

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/tatianab/dragon-repeller/internal/models"
)

const (
	eggDraws   = 10
	eggMaxDraw = 10
	eggPrize   = 20
	eggPenalty = 10
)

// pick draws ten numbers in [0, 10]. A match pays gold, a miss costs health.
func (e *Engine) pick(s *State, guess int) {
	numbers := make([]int, eggDraws)
	shown := make([]string, eggDraws)
	for i := range numbers {
		numbers[i] = int(math.Floor(e.rng.Float64() * (eggMaxDraw + 1)))
		shown[i] = strconv.Itoa(numbers[i])
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You picked %d. Here are the random numbers:\n%s", guess, strings.Join(shown, ", "))

	p := &s.Player
	if slices.Contains(numbers, guess) {
		p.Gold += eggPrize
		fmt.Fprintf(&b, "\nRight! You win %d gold!", eggPrize)
		s.Message = b.String()
		return
	}

	p.Health = max(0, p.Health-eggPenalty)
	fmt.Fprintf(&b, "\nWrong! You lose %d health!", eggPenalty)
	s.Message = b.String()
	if p.Health == 0 {
		e.travel(s, models.LocationLose)
		s.Message = b.String() + "\n" + s.Message
	}
}
