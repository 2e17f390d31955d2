package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"ballsim/internal/config"
	"ballsim/internal/game"
	"ballsim/internal/util"
)

const maxBatch = 10000

// Handler runs games against the configured rosters on request.
type Handler struct {
	cfg    *config.GameConfig
	logger *log.Logger
}

func NewHandler(cfg *config.GameConfig, logger *log.Logger) *Handler {
	return &Handler{cfg: cfg, logger: logger}
}

type GameRequest struct {
	Seed           int64 `json:"seed"`
	Innings        int   `json:"innings"`
	IncludeEntries bool  `json:"include_entries"`
}

type BatchRequest struct {
	N       int   `json:"n"`
	Seed    int64 `json:"seed"`
	Innings int   `json:"innings"`
}

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", h.HealthCheck)
	r.Post("/api/v1/games", h.PlayGame)
	r.Post("/api/v1/batches", h.PlayBatch)
	return r
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "simsvc",
	})
}

func (h *Handler) rules(innings int) (game.Rules, error) {
	rules := h.cfg.Rules()
	if innings < 0 || innings > game.MaxInnings {
		return rules, fmt.Errorf("innings must be between 1 and %d", game.MaxInnings)
	}
	if innings > 0 {
		rules.Innings = innings
	}
	return rules, nil
}

func (h *Handler) PlayGame(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
			return
		}
	}
	rules, err := h.rules(req.Innings)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	t1, t2, err := h.cfg.BuildTeams()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	seed := util.ResolveSeed(req.Seed)
	env := &game.Env{GameID: uuid.NewString(), Seed: seed, Rng: util.New(seed)}
	res, err := game.RunSingle(env, rules, t1, t2, nil, req.IncludeEntries)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.logger.Info("game played", "game_id", res.GameID, "seed", seed,
		"team1_score", res.Team1Score, "team2_score", res.Team2Score)
	respondJSON(w, http.StatusOK, res)
}

func (h *Handler) PlayBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	if req.N <= 0 || req.N > maxBatch {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("n must be between 1 and %d", maxBatch))
		return
	}
	rules, err := h.rules(req.Innings)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	sum, err := game.RunBatch(req.N, req.Seed, 0, rules, h.cfg.BuildTeams)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	h.logger.Info("batch played", "n", sum.Runs, "seed", sum.Seed)
	respondJSON(w, http.StatusOK, sum)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
