package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"complyd/internal/domain"
	"complyd/internal/platform/middleware"
	"complyd/internal/transport/http/shared"
	dErrors "complyd/pkg/domain-errors"
)

// Screener runs an entity against every configured restricted-party list.
type Screener interface {
	Screen(ctx context.Context, entityName, country string) ([]domain.WatchlistResult, error)
}

// Handler serves ad-hoc restricted-party screening.
type Handler struct {
	screener Screener
	logger   *slog.Logger
}

func New(screener Screener, logger *slog.Logger) *Handler {
	return &Handler{screener: screener, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/screen", h.handleScreen)
}

type screenRequest struct {
	EntityName string `json:"entity_name"`
	Country    string `json:"country"`
}

func (h *Handler) handleScreen(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var req screenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid screen request",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	results, err := h.screener.Screen(ctx, req.EntityName, req.Country)
	if err != nil {
		h.logger.WarnContext(ctx, "screening rejected",
			"request_id", requestID,
			"error", err.Error(),
		)
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, results)
}
