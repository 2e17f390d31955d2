package game

import (
	"errors"
	"fmt"
)

var (
	ErrNoRandomSource = errors.New("env has no random source")
	ErrInvalidRules   = errors.New("invalid rules")
)

// RunSingle plays one game: team1 bats in the top half, team2 in the bottom.
// Every plate appearance is passed to record; a record error stops the game
// and is returned. When keep is set the entries are also returned in the result.
func RunSingle(env *Env, rules Rules, team1, team2 *Team, record func(Entry) error, keep bool) (SimResult, error) {
	if env == nil || env.Rng == nil {
		return SimResult{}, ErrNoRandomSource
	}
	if team1 == nil || team2 == nil {
		return SimResult{}, fmt.Errorf("%w: missing team", ErrEmptyLineup)
	}
	rules = rules.withDefaults()
	if rules.Innings > MaxInnings {
		return SimResult{}, fmt.Errorf("%w: %d innings exceeds %d", ErrInvalidRules, rules.Innings, MaxInnings)
	}
	if env.Delta <= 0 {
		env.Delta = 1
	}
	sampler := Sampler{Rng: env.Rng, Mix: rules.Mix}

	res := SimResult{
		GameID:  env.GameID,
		Seed:    env.Seed,
		Innings: rules.Innings,
		Team1:   team1.Name,
		Team2:   team2.Name,
		LineScore: LineScore{
			Team1: make([]int, 0, rules.Innings),
			Team2: make([]int, 0, rules.Innings),
		},
	}

	clock := NewClock()
	var bases Bases
	for clock.Inning <= rules.Innings {
		batting := team1
		if clock.Half == Bottom {
			batting = team2
		}
		bases.Clear()
		halfRuns := 0

		for clock.Outs < OutsPerHalf {
			batter := batting.NextBatter()
			outcome, err := sampler.Sample(batter)
			if err != nil {
				return res, err
			}

			res.AtBats++
			ev := Entry{
				GameID:     env.GameID,
				Seq:        res.AtBats,
				T:          env.Time,
				Inning:     clock.Inning,
				Half:       clock.Half,
				Team:       batting.Name,
				Batter:     batter.Name,
				Outcome:    outcome,
				Team1:      team1.Name,
				Team1Score: team1.Score(),
				Team2:      team2.Name,
				Team2Score: team2.Score(),
				Outs:       clock.Outs,
				Bases:      bases.String(),
			}

			runs, outs := bases.Apply(outcome, &batter)
			batting.AddRuns(runs)
			clock.Outs += outs
			halfRuns += runs
			ev.Runs = runs

			if record != nil {
				if err := record(ev); err != nil {
					return res, fmt.Errorf("record at-bat %d: %w", ev.Seq, err)
				}
			}
			if keep {
				res.Entries = append(res.Entries, ev)
			}
			env.Time += env.Delta
		}

		if clock.Half == Top {
			res.LineScore.Team1 = append(res.LineScore.Team1, halfRuns)
		} else {
			res.LineScore.Team2 = append(res.LineScore.Team2, halfRuns)
		}
		res.HalfInnings++
		clock.EndHalf()
	}

	res.Team1Score = team1.Score()
	res.Team2Score = team2.Score()
	switch {
	case res.Team1Score > res.Team2Score:
		res.Winner = team1.Name
	case res.Team2Score > res.Team1Score:
		res.Winner = team2.Name
	}
	res.Duration = env.Time
	return res, nil
}
