package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"complyd/internal/domain"
	"complyd/internal/platform/middleware"
	"complyd/internal/risk"
	"complyd/internal/transport/http/shared"
	dErrors "complyd/pkg/domain-errors"
)

// Handler serves stateless risk aggregation.
type Handler struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/risk/aggregate", h.handleAggregate)
}

type aggregateRequest struct {
	Geographic  int `json:"geographic"`
	Product     int `json:"product"`
	EndUser     int `json:"end_user"`
	Transaction int `json:"transaction"`
}

func (h *Handler) handleAggregate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req aggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid aggregate request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	assessment, err := risk.Aggregate(domain.RiskScores{
		Geographic:  domain.RiskScore{Value: req.Geographic},
		Product:     domain.RiskScore{Value: req.Product},
		EndUser:     domain.RiskScore{Value: req.EndUser},
		Transaction: domain.RiskScore{Value: req.Transaction},
	})
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	shared.WriteJSON(w, http.StatusOK, assessment)
}
