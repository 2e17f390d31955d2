package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"ballsim/internal/game"
)

const LineupSize = 9

var ErrInvalidConfig = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func invalidWrap(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, fmt.Sprintf(format, args...), err)
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(b, out)
}

func Default() *GameConfig {
	return &GameConfig{
		LogPath: "game_log.txt",
		Innings: 9,
		HitMix:  game.DefaultHitMix(),
		Teams:   DefaultTeams(),
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Server:  ServerConfig{Addr: ":8080"},
	}
}

// LoadFile reads a YAML config over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func LoadFile(path string) (*GameConfig, error) {
	cfg := Default()
	if path != "" {
		if err := loadYAML(path, cfg); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if len(cfg.Teams) == 0 {
		cfg.Teams = DefaultTeams()
	}
	if cfg.HitMix == (game.HitMix{}) {
		cfg.HitMix = game.DefaultHitMix()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *GameConfig) applyEnv() error {
	c.LogPath = getEnv("BALLSIM_LOG_PATH", c.LogPath)
	if v := os.Getenv("BALLSIM_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return invalid("BALLSIM_SEED=%q: %v", v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.Addr = v
		c.Redis.Enabled = true
	}
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		c.Postgres.DSN = v
		c.Postgres.Enabled = true
	}
	c.Server.Addr = getEnv("SERVER_ADDR", c.Server.Addr)
	return nil
}

func (c *GameConfig) Validate() error {
	if c.LogPath == "" {
		return invalid("log_path is empty")
	}
	if c.Innings < 1 || c.Innings > game.MaxInnings {
		return invalid("innings must be between 1 and %d, got %d", game.MaxInnings, c.Innings)
	}
	m := c.HitMix
	if m.Single < 0 || m.Double < 0 || m.Triple < 0 || m.HomeRun < 0 {
		return invalid("hit_mix weights must be non-negative")
	}
	if m.Single+m.Double+m.Triple+m.HomeRun <= 0 {
		return invalid("hit_mix weights sum to zero")
	}
	if len(c.Teams) != 2 {
		return invalid("want 2 teams, got %d", len(c.Teams))
	}
	if c.Teams[0].Name == "" || c.Teams[1].Name == "" {
		return invalid("team name is empty")
	}
	if c.Teams[0].Name == c.Teams[1].Name {
		return invalid("duplicate team name %q", c.Teams[0].Name)
	}
	for _, td := range c.Teams {
		if len(td.Lineup) != LineupSize {
			return invalid("team %q has %d players, want %d", td.Name, len(td.Lineup), LineupSize)
		}
		for _, pd := range td.Lineup {
			p := game.Player{Name: pd.Name, AVG: pd.AVG, OBP: pd.OBP, SLG: pd.SLG}
			if err := p.Validate(); err != nil {
				return invalidWrap(err, "team %q", td.Name)
			}
		}
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return invalid("redis enabled without addr")
	}
	if c.Postgres.Enabled && c.Postgres.DSN == "" {
		return invalid("postgres enabled without dsn")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
