package game

import (
	"encoding/json"
	"math/rand"
)

// Entry is one play-by-play record. Outs, bases and scores describe the state
// the batter came up to, before the play moved anyone.
type Entry struct {
	GameID     string  `json:"game_id,omitempty"`
	Seq        int     `json:"seq"`
	T          float64 `json:"t"`
	Inning     int     `json:"inning"`
	Half       Half    `json:"half"`
	Team       string  `json:"team"`
	Batter     string  `json:"batter"`
	Outcome    Outcome `json:"outcome"`
	Team1      string  `json:"team1"`
	Team1Score int     `json:"team1_score"`
	Team2      string  `json:"team2"`
	Team2Score int     `json:"team2_score"`
	Outs       int     `json:"outs"`
	Bases      string  `json:"bases"`
	Runs       int     `json:"runs"`
}

// Env carries one game's identity and random source. Time advances by Delta
// after every plate appearance.
type Env struct {
	GameID string
	Seed   int64
	Time   float64
	Delta  float64
	Rng    *rand.Rand
}

// Rules are the tunables of a game. Zero values fall back to defaults.
type Rules struct {
	Innings int    `json:"innings"`
	Mix     HitMix `json:"hit_mix"`
}

// MaxInnings caps Rules.Innings; longer games are rejected.
const MaxInnings = 99

func DefaultRules() Rules {
	return Rules{Innings: 9, Mix: DefaultHitMix()}
}

func (r Rules) withDefaults() Rules {
	if r.Innings <= 0 {
		r.Innings = 9
	}
	if r.Mix == (HitMix{}) {
		r.Mix = DefaultHitMix()
	}
	return r
}

// LineScore holds runs per inning for each team.
type LineScore struct {
	Team1 []int `json:"team1"`
	Team2 []int `json:"team2"`
}

// SimResult is the final state of a finished game.
type SimResult struct {
	GameID      string    `json:"game_id,omitempty"`
	Seed        int64     `json:"seed"`
	Innings     int       `json:"innings"`
	HalfInnings int       `json:"half_innings"`
	AtBats      int       `json:"at_bats"`
	Team1       string    `json:"team1"`
	Team2       string    `json:"team2"`
	Team1Score  int       `json:"team1_score"`
	Team2Score  int       `json:"team2_score"`
	LineScore   LineScore `json:"line_score"`
	Winner      string    `json:"winner,omitempty"`
	Duration    float64   `json:"duration"`
	Entries     []Entry   `json:"entries,omitempty"`
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
