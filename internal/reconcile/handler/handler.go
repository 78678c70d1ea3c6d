package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"complyd/internal/platform/middleware"
	"complyd/internal/reconcile"
	"complyd/internal/transport/http/shared"
	dErrors "complyd/pkg/domain-errors"
)

// Handler serves multi-document field reconciliation.
type Handler struct {
	reconciler *reconcile.Reconciler
	logger     *slog.Logger
}

func New(reconciler *reconcile.Reconciler, logger *slog.Logger) *Handler {
	return &Handler{reconciler: reconciler, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/reconcile-fields", h.handleReconcileFields)
}

type reconcileRequest struct {
	Documents []reconcile.SourceDocument `json:"documents"`
}

func (h *Handler) handleReconcileFields(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid reconcile request",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	suggestions := h.reconciler.Reconcile(req.Documents)
	shared.WriteJSON(w, http.StatusOK, suggestions)
}
