package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"complyd/internal/audit"
	"complyd/internal/domain"
	"complyd/internal/platform/metrics"
	"complyd/internal/platform/middleware"
	"complyd/internal/shipment"
	"complyd/internal/transport/http/shared"
	dErrors "complyd/pkg/domain-errors"
)

// Handler serves shipment aggregate recomputation.
type Handler struct {
	aggregator *shipment.Aggregator
	metrics    *metrics.Metrics
	audit      audit.Publisher
	logger     *slog.Logger
}

func New(aggregator *shipment.Aggregator, m *metrics.Metrics, sink audit.Publisher, logger *slog.Logger) *Handler {
	if sink == nil {
		sink = audit.NewRecorder()
	}
	return &Handler{aggregator: aggregator, metrics: m, audit: sink, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/shipment/recompute", h.handleRecompute)
}

type recomputeRequest struct {
	ShipmentID        string               `json:"shipment_id,omitempty"`
	Lines             []domain.ProductLine `json:"lines"`
	Currency          string               `json:"currency"`
	PriorPriority     string               `json:"prior_priority"`
	InsuranceRequired bool                 `json:"insurance_required"`
}

func (h *Handler) handleRecompute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recomputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid recompute request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	priority, err := domain.ParsePriority(req.PriorPriority)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	aggregate := h.aggregator.Recompute(req.Lines, req.Currency, priority, req.InsuranceRequired)
	escalated := aggregate.Priority != priority
	if h.metrics != nil && escalated {
		h.metrics.ShipmentEscalations.Inc()
	}

	event := audit.NewEvent(audit.ActionShipmentRecomputed, middleware.GetOfficerID(ctx))
	event.ShipmentID = req.ShipmentID
	event.Detail = map[string]string{
		"total_value":        strconv.FormatFloat(aggregate.TotalValue, 'f', 2, 64),
		"priority":           string(aggregate.Priority),
		"insurance_required": strconv.FormatBool(aggregate.InsuranceRequired),
		"escalated":          strconv.FormatBool(escalated),
	}
	if err := h.audit.Publish(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "failed to publish audit event",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	}

	shared.WriteJSON(w, http.StatusOK, aggregate)
}
