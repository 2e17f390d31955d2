package config

import "ballsim/internal/game"

type GameConfig struct {
	LogPath  string         `yaml:"log_path"`
	Seed     int64          `yaml:"seed"`
	Innings  int            `yaml:"innings"`
	HitMix   game.HitMix    `yaml:"hit_mix"`
	Teams    []TeamDef      `yaml:"teams"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	Server   ServerConfig   `yaml:"server"`
}

type TeamDef struct {
	Name   string      `yaml:"name"`
	Lineup []PlayerDef `yaml:"lineup"`
}

type PlayerDef struct {
	Name string  `yaml:"name"`
	AVG  float64 `yaml:"avg"`
	OBP  float64 `yaml:"obp"`
	SLG  float64 `yaml:"slg"`
}

type RedisConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type PostgresConfig struct {
	Enabled bool   `yaml:"enabled"`
	DSN     string `yaml:"dsn"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

func (c *GameConfig) Rules() game.Rules {
	return game.Rules{Innings: c.Innings, Mix: c.HitMix}
}

// BuildTeams turns the two roster definitions into fresh teams with zero
// score and the lineup cursor at the leadoff hitter.
func (c *GameConfig) BuildTeams() (*game.Team, *game.Team, error) {
	if len(c.Teams) != 2 {
		return nil, nil, invalid("want 2 teams, got %d", len(c.Teams))
	}
	t1, err := c.Teams[0].Build()
	if err != nil {
		return nil, nil, err
	}
	t2, err := c.Teams[1].Build()
	if err != nil {
		return nil, nil, err
	}
	return t1, t2, nil
}

func (td TeamDef) Build() (*game.Team, error) {
	lineup := make([]game.Player, 0, len(td.Lineup))
	for _, pd := range td.Lineup {
		p, err := game.NewPlayer(pd.Name, pd.AVG, pd.OBP, pd.SLG)
		if err != nil {
			return nil, invalidWrap(err, "team %q", td.Name)
		}
		lineup = append(lineup, p)
	}
	return game.NewTeam(td.Name, lineup)
}
