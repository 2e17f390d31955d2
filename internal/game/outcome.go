package game

import (
	"errors"
	"fmt"
	"math/rand"
)

type Outcome int

const (
	Single Outcome = iota
	Double
	Triple
	HomeRun
	Walk
	Out
	numOutcomes
)

var outcomeNames = [numOutcomes]string{"single", "double", "triple", "home_run", "walk", "out"}

// Outcomes lists every outcome in sampling order.
func Outcomes() []Outcome {
	return []Outcome{Single, Double, Triple, HomeRun, Walk, Out}
}

func (o Outcome) String() string {
	if o < 0 || o >= numOutcomes {
		return fmt.Sprintf("outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

func (o Outcome) IsHit() bool { return o >= Single && o <= HomeRun }

func ParseOutcome(s string) (Outcome, error) {
	for i, name := range outcomeNames {
		if name == s {
			return Outcome(i), nil
		}
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}

func (o Outcome) MarshalText() ([]byte, error) {
	if o < 0 || o >= numOutcomes {
		return nil, fmt.Errorf("unknown outcome %d", int(o))
	}
	return []byte(o.String()), nil
}

func (o *Outcome) UnmarshalText(b []byte) error {
	v, err := ParseOutcome(string(b))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// HitMix splits a batting average across the four hit types.
type HitMix struct {
	Single  float64 `json:"single" yaml:"single"`
	Double  float64 `json:"double" yaml:"double"`
	Triple  float64 `json:"triple" yaml:"triple"`
	HomeRun float64 `json:"home_run" yaml:"home_run"`
}

func DefaultHitMix() HitMix {
	return HitMix{Single: 0.60, Double: 0.20, Triple: 0.05, HomeRun: 0.15}
}

var ErrDegenerateWeights = errors.New("outcome weights sum to zero")

// Weights returns the relative weight of each outcome, indexed by Outcome.
func Weights(p Player, mix HitMix) [numOutcomes]float64 {
	hit := p.AVG
	var w [numOutcomes]float64
	w[Single] = hit * mix.Single
	w[Double] = hit * mix.Double
	w[Triple] = hit * mix.Triple
	w[HomeRun] = hit * mix.HomeRun
	w[Walk] = p.OBP - p.AVG
	w[Out] = 1 - p.OBP
	return w
}

// Sampler draws one plate-appearance outcome from a player's weights.
type Sampler struct {
	Rng *rand.Rand
	Mix HitMix
}

func (s Sampler) Sample(p Player) (Outcome, error) {
	w := Weights(p, s.Mix)
	total := 0.0
	for _, v := range w {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return Out, fmt.Errorf("%w: %s", ErrDegenerateWeights, p.Name)
	}
	pick := s.Rng.Float64() * total
	acc := 0.0
	last := Out
	for i, v := range w {
		if v <= 0 {
			continue
		}
		acc += v
		last = Outcome(i)
		if pick < acc {
			return last, nil
		}
	}
	return last, nil
}
