package game

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidPlayer = errors.New("invalid player")

// Player is a batter's rate line. Values are fixed once built.
type Player struct {
	Name string  `json:"name"`
	AVG  float64 `json:"avg"`
	OBP  float64 `json:"obp"`
	SLG  float64 `json:"slg"`
}

// NewPlayer validates the rate stats. OBP below AVG would produce a negative
// walk weight, so it is rejected here instead of in the sampler.
func NewPlayer(name string, avg, obp, slg float64) (Player, error) {
	p := Player{Name: name, AVG: avg, OBP: obp, SLG: slg}
	if err := p.Validate(); err != nil {
		return Player{}, err
	}
	return p, nil
}

func (p Player) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidPlayer)
	}
	for _, st := range []struct {
		label string
		v     float64
	}{{"avg", p.AVG}, {"obp", p.OBP}, {"slg", p.SLG}} {
		if math.IsNaN(st.v) || st.v < 0 || st.v > 1 {
			return fmt.Errorf("%w: %s %s=%v outside [0,1]", ErrInvalidPlayer, p.Name, st.label, st.v)
		}
	}
	if p.OBP < p.AVG {
		return fmt.Errorf("%w: %s obp %.3f below avg %.3f", ErrInvalidPlayer, p.Name, p.OBP, p.AVG)
	}
	return nil
}
