package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ballsim/internal/config"
	"ballsim/internal/game"
	"ballsim/internal/gamelog"
	"ballsim/internal/util"
)

func TestRunSingleGameWritesLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "game_log.txt")

	var stdout bytes.Buffer
	err := run(options{logPath: logPath, seed: 2024, n: 1}, log.New(io.Discard), &stdout)
	require.NoError(t, err)

	cfg := config.Default()
	t1, t2, err := cfg.BuildTeams()
	require.NoError(t, err)
	want, err := game.RunSingle(&game.Env{Seed: 2024, Rng: util.New(2024)}, cfg.Rules(), t1, t2, nil, false)
	require.NoError(t, err)
	assert.Equal(t,
		fmt.Sprintf("Final Score: Team1 %d - Team2 %d\n", want.Team1Score, want.Team2Score),
		stdout.String())

	b, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), gamelog.Header))
	assert.Contains(t, string(b), "Inning 9 (bottom): ")
	assert.NotContains(t, string(b), "Inning 10")
}

func TestRunBatchWritesSummary(t *testing.T) {
	out := filepath.Join(t.TempDir(), "summary.json")
	err := run(options{out: out, seed: 9, n: 12}, log.New(io.Discard), io.Discard)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	var sum game.Summary
	require.NoError(t, json.Unmarshal(b, &sum))
	assert.Equal(t, 12, sum.Runs)
	assert.Equal(t, int64(9), sum.Seed)
	assert.Equal(t, 12, sum.Team1Wins+sum.Team2Wins+sum.Ties)
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("innings: 0\n"), 0644))
	err := run(options{cfgPath: path, n: 1}, log.New(io.Discard), io.Discard)
	assert.Error(t, err)
}

func TestPrintFinal(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printFinal(&buf, game.SimResult{Team1: "Yankees", Team1Score: 5, Team2: "Red Sox", Team2Score: 3}))
	assert.Equal(t, "Final Score: Yankees 5 - Red Sox 3\n", buf.String())
}

func TestRedisFailureLeavesNoLogFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "game_log.txt")
	cfgPath := filepath.Join(dir, "game.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("redis:\n  enabled: true\n  addr: 127.0.0.1:1\n"), 0644))

	err := run(options{cfgPath: cfgPath, logPath: logPath, seed: 1, n: 1}, log.New(io.Discard), io.Discard)
	require.Error(t, err)
	assert.NoFileExists(t, logPath)
}
