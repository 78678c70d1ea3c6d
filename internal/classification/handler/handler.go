package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"complyd/internal/classification"
	"complyd/internal/domain"
	"complyd/internal/platform/middleware"
	"complyd/internal/transport/http/shared"
	dErrors "complyd/pkg/domain-errors"
)

// Handler serves strategic/AI classification of a single product line.
type Handler struct {
	engine *classification.Engine
	logger *slog.Logger
}

func New(engine *classification.Engine, logger *slog.Logger) *Handler {
	return &Handler{engine: engine, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/classify-line", h.handleClassifyLine)
}

type classifyResponse struct {
	IsStrategic bool `json:"is_strategic"`
	IsAIRelated bool `json:"is_ai_related"`
}

func (h *Handler) handleClassifyLine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var line domain.ProductLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil {
		h.logger.WarnContext(ctx, "invalid classify request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	flags := h.engine.Classify(line)
	shared.WriteJSON(w, http.StatusOK, classifyResponse{
		IsStrategic: flags.IsStrategic,
		IsAIRelated: flags.IsAIRelated,
	})
}
