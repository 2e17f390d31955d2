package game

import (
	"fmt"
	"sync"

	"ballsim/internal/util"
)

type Summary struct {
	Runs          int     `json:"runs"`
	Seed          int64   `json:"seed"`
	Team1         string  `json:"team1"`
	Team2         string  `json:"team2"`
	Team1Wins     int     `json:"team1_wins"`
	Team2Wins     int     `json:"team2_wins"`
	Ties          int     `json:"ties"`
	AvgTeam1Score float64 `json:"avg_team1_score"`
	AvgTeam2Score float64 `json:"avg_team2_score"`
	AvgAtBats     float64 `json:"avg_at_bats"`
}

// TeamsFunc builds a fresh pair of teams for one game.
type TeamsFunc func() (*Team, *Team, error)

// RunBatch plays n independent games on a worker pool. Game i is seeded with
// seed+i, so the summary only depends on seed and n.
func RunBatch(n int, seed int64, workers int, rules Rules, teams TeamsFunc) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("batch size must be positive, got %d", n)
	}
	if workers <= 0 {
		workers = 8
	}
	if workers > n {
		workers = n
	}
	seed = util.ResolveSeed(seed)

	st := Summary{Runs: n, Seed: seed}
	var sum1, sum2, sumAB int
	var firstErr error
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				t1, t2, err := teams()
				var res SimResult
				if err == nil {
					env := &Env{Seed: seed + int64(i), Rng: util.New(seed + int64(i))}
					res, err = RunSingle(env, rules, t1, t2, nil, false)
				}

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("game %d: %w", i, err)
					}
					mu.Unlock()
					continue
				}
				st.Team1, st.Team2 = res.Team1, res.Team2
				switch {
				case res.Team1Score > res.Team2Score:
					st.Team1Wins++
				case res.Team2Score > res.Team1Score:
					st.Team2Wins++
				default:
					st.Ties++
				}
				sum1 += res.Team1Score
				sum2 += res.Team2Score
				sumAB += res.AtBats
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Summary{}, firstErr
	}
	st.AvgTeam1Score = float64(sum1) / float64(n)
	st.AvgTeam2Score = float64(sum2) / float64(n)
	st.AvgAtBats = float64(sumAB) / float64(n)
	return st, nil
}
