package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rocketscienceinc/tictactoe-arena/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

type gameUseCase interface {
	GetGameByID(ctx context.Context, gameID string) (*entity.Game, error)
	PlayerStats(ctx context.Context, playerID string) (entity.Stats, error)
	PlayerResults(ctx context.Context, playerID string, limit int) ([]entity.GameResult, error)
}

type Handlers interface {
	GetGame(w http.ResponseWriter, r *http.Request)
	GetPlayerStats(w http.ResponseWriter, r *http.Request)
	GetPlayerResults(w http.ResponseWriter, r *http.Request)
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewHandlers(logger *slog.Logger, gameUseCase gameUseCase) Handlers {
	return &handlers{
		logger:      logger.With("component", "rest"),
		gameUseCase: gameUseCase,
	}
}

// GetGame returns the game without its players or move history.
func (that *handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := that.gameUseCase.GetGameByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, "GetGame", err)
		return
	}

	view := *game
	view.Players = nil
	view.History = nil

	that.writeJSON(w, http.StatusOK, view)
}

func (that *handlers) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := that.gameUseCase.PlayerStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, r, "GetPlayerStats", err)
		return
	}

	that.writeJSON(w, http.StatusOK, stats)
}

// GetPlayerResults lists the latest rounds. limit is optional; the use case caps it.
func (that *handlers) GetPlayerResults(w http.ResponseWriter, r *http.Request) {
	var limit int

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}

		limit = parsed
	}

	results, err := that.gameUseCase.PlayerResults(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		that.writeError(w, r, "GetPlayerResults", err)
		return
	}

	if results == nil {
		results = []entity.GameResult{}
	}

	that.writeJSON(w, http.StatusOK, results)
}

func (that *handlers) writeError(w http.ResponseWriter, r *http.Request, method string, err error) {
	switch {
	case errors.Is(err, apperror.ErrGameNotFound), errors.Is(err, apperror.ErrPlayerNotFound):
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		that.logger.Error("request failed", "method", method, "requestID", middleware.GetReqID(r.Context()), "error", err)
		that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
	}
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
