package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ballsim/internal/config"
	"ballsim/internal/game"
	"ballsim/internal/gamelog"
	"ballsim/internal/handlers"
	"ballsim/internal/publisher"
	"ballsim/internal/util"
	"ballsim/internal/writer"
)

type options struct {
	cfgPath string
	logPath string
	out     string
	serve   bool
	verbose bool
	seed    int64
	n       int
}

func main() {
	var opt options
	flag.StringVar(&opt.cfgPath, "config", "", "YAML config file (rosters, rules, sinks)")
	flag.StringVar(&opt.logPath, "log", "", "play-by-play log path (overrides config)")
	flag.StringVar(&opt.out, "out", "summary.json", "summary file for batch runs")
	flag.Int64Var(&opt.seed, "seed", 0, "random seed (0 = unseeded)")
	flag.IntVar(&opt.n, "n", 1, "number of games to simulate")
	flag.BoolVar(&opt.serve, "serve", false, "run the HTTP API instead of a single game")
	flag.BoolVar(&opt.verbose, "v", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "simsvc",
	})
	if opt.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(opt, logger, os.Stdout); err != nil {
		logger.Error("simsvc failed", "err", err)
		os.Exit(1)
	}
}

func run(opt options, logger *log.Logger, stdout io.Writer) error {
	cfg, err := config.LoadFile(opt.cfgPath)
	if err != nil {
		return err
	}
	if opt.logPath != "" {
		cfg.LogPath = opt.logPath
	}
	if opt.seed != 0 {
		cfg.Seed = opt.seed
	}

	switch {
	case opt.serve:
		return serve(cfg, logger)
	case opt.n > 1:
		return batch(cfg, opt, logger, stdout)
	default:
		return single(cfg, logger, stdout)
	}
}

func single(cfg *config.GameConfig, logger *log.Logger, stdout io.Writer) error {
	ctx := context.Background()
	t1, t2, err := cfg.BuildTeams()
	if err != nil {
		return err
	}

	seed := util.ResolveSeed(cfg.Seed)
	env := &game.Env{GameID: uuid.NewString(), Seed: seed, Rng: util.New(seed)}
	logger.Info("game started", "game_id", env.GameID, "seed", seed, "log", cfg.LogPath)

	var pub *publisher.StreamPublisher
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis %s: %w", cfg.Redis.Addr, err)
		}
		pub = publisher.NewStreamPublisher(rdb)
		logger.Debug("publishing play-by-play", "stream", publisher.PlayByPlayStream(env.GameID))
	}

	gl, err := gamelog.Create(cfg.LogPath)
	if err != nil {
		return err
	}
	defer gl.Close()

	record := func(e game.Entry) error {
		if err := gl.Record(e); err != nil {
			return err
		}
		logger.Debug("at-bat", "seq", e.Seq, "inning", e.Inning, "half", e.Half,
			"batter", e.Batter, "outcome", e.Outcome, "outs", e.Outs, "bases", e.Bases)
		if pub != nil {
			return pub.PublishEntry(ctx, e)
		}
		return nil
	}

	res, err := game.RunSingle(env, cfg.Rules(), t1, t2, record, false)
	if err != nil {
		return err
	}
	if err := gl.Close(); err != nil {
		return err
	}

	if pub != nil {
		if err := pub.PublishResult(ctx, res); err != nil {
			return err
		}
	}
	if cfg.Postgres.Enabled {
		if err := storeResult(ctx, cfg.Postgres.DSN, res); err != nil {
			return err
		}
	}

	logger.Info("game finished", "game_id", res.GameID, "seed", seed,
		"at_bats", res.AtBats, "half_innings", res.HalfInnings)
	return printFinal(stdout, res)
}

func printFinal(w io.Writer, res game.SimResult) error {
	_, err := fmt.Fprintf(w, "Final Score: %s %d - %s %d\n", res.Team1, res.Team1Score, res.Team2, res.Team2Score)
	return err
}

func storeResult(ctx context.Context, dsn string, res game.SimResult) error {
	db, err := writer.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	w := writer.NewResultWriter(db)
	if err := w.EnsureSchema(ctx); err != nil {
		return err
	}
	return w.WriteResult(ctx, res)
}

func batch(cfg *config.GameConfig, opt options, logger *log.Logger, stdout io.Writer) error {
	start := time.Now()
	sum, err := game.RunBatch(opt.n, cfg.Seed, 8, cfg.Rules(), cfg.BuildTeams)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opt.out, game.MarshalPretty(sum), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	logger.Info("batch finished", "n", sum.Runs, "seed", sum.Seed, "elapsed", time.Since(start))
	fmt.Fprintf(stdout, "Batch %d done -> %s\n", opt.n, filepath.Base(opt.out))
	return nil
}

func serve(cfg *config.GameConfig, logger *log.Logger) error {
	h := handlers.NewHandler(cfg, logger)
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handlers.Routes(h),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-sigChan:
	}

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
