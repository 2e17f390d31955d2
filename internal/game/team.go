package game

import (
	"errors"
	"fmt"
)

var ErrEmptyLineup = errors.New("empty lineup")

// Team owns a batting order and a running score. The cursor moves one slot per
// plate appearance and wraps at the end of the lineup.
type Team struct {
	Name   string
	Lineup []Player
	cursor int
	score  int
}

func NewTeam(name string, lineup []Player) (*Team, error) {
	if len(lineup) == 0 {
		return nil, fmt.Errorf("%w: team %q", ErrEmptyLineup, name)
	}
	for _, p := range lineup {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("team %q: %w", name, err)
		}
	}
	return &Team{Name: name, Lineup: append([]Player(nil), lineup...)}, nil
}

func (t *Team) Cursor() int { return t.cursor }
func (t *Team) Score() int  { return t.score }

// NextBatter returns the player due up and rotates the order.
func (t *Team) NextBatter() Player {
	p := t.Lineup[t.cursor]
	t.cursor = (t.cursor + 1) % len(t.Lineup)
	return p
}

// AddRuns credits runs. Negative values are ignored; the score never drops.
func (t *Team) AddRuns(n int) {
	if n <= 0 {
		return
	}
	t.score += n
}
