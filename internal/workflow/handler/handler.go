// Package handler exposes the compliance workflow over HTTP. All routes
// require an authenticated officer; the officer identity from the token is
// the default actor on every mutation.
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
	"complyd/internal/workflow/service"
	dErrors "complyd/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/workflow-mocks.go -package=mocks Service

// Service defines the workflow operations the handler needs.
type Service interface {
	Create(ctx context.Context, actor string, params service.CreateParams) (*domain.ScreeningRecord, error)
	Get(ctx context.Context, screeningID string) (*domain.ScreeningRecord, error)
	List(ctx context.Context) ([]*domain.ScreeningRecord, error)
	UpdateRiskScores(ctx context.Context, screeningID, actor string, scores domain.RiskScores, expectedVersion int) (*domain.ScreeningRecord, error)
	RecordScreening(ctx context.Context, screeningID, actor string, expectedVersion int) (*domain.ScreeningRecord, error)
	Transition(ctx context.Context, screeningID, actor string, target domain.ScreeningStatus, reason string, expectedVersion int) (*domain.ScreeningRecord, error)
	CompleteEnhancedDD(ctx context.Context, screeningID, actor, notes string, expectedVersion int) (*domain.ScreeningRecord, error)
}

type Handler struct {
	workflow Service
	logger   *slog.Logger
}

func New(workflow Service, logger *slog.Logger) *Handler {
	return &Handler{workflow: workflow, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Post("/compliance/screenings", h.handleCreate)
	r.Get("/compliance/screenings", h.handleList)
	r.Get("/compliance/screenings/{screeningID}", h.handleGet)
	r.Post("/compliance/screenings/{screeningID}/risk-scores", h.handleRiskScores)
	r.Post("/compliance/screenings/{screeningID}/screen", h.handleScreenRun)
	r.Post("/compliance/screenings/{screeningID}/enhanced-dd/complete", h.handleCompleteEnhancedDD)
	r.Post("/compliance/workflow/transition", h.handleTransition)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createScreeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warnBadRequest(ctx, "create screening", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.workflow.Create(ctx, middleware.GetOfficerID(ctx), service.CreateParams{
		ShipmentID:         req.ShipmentID,
		EndUser:            req.EndUser,
		TransactionContext: req.TransactionContext,
		AssignedOfficer:    req.AssignedOfficer,
	})
	if err != nil {
		h.writeServiceError(ctx, w, "create screening", err)
		return
	}

	shared.WriteJSON(w, http.StatusCreated, record)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.workflow.Get(r.Context(), chi.URLParam(r, "screeningID"))
	if err != nil {
		h.writeServiceError(r.Context(), w, "get screening", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.workflow.List(r.Context())
	if err != nil {
		h.writeServiceError(r.Context(), w, "list screenings", err)
		return
	}
	if records == nil {
		records = []*domain.ScreeningRecord{}
	}
	shared.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleRiskScores(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req riskScoresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warnBadRequest(ctx, "update risk scores", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.workflow.UpdateRiskScores(ctx, chi.URLParam(r, "screeningID"),
		middleware.GetOfficerID(ctx), req.Scores, req.Version)
	if err != nil {
		h.writeServiceError(ctx, w, "update risk scores", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleScreenRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// An empty body means "screen at the current version".
	var req screenRunRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.warnBadRequest(ctx, "record screening run", err)
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
			return
		}
	}

	record, err := h.workflow.RecordScreening(ctx, chi.URLParam(r, "screeningID"),
		middleware.GetOfficerID(ctx), req.Version)
	if err != nil {
		h.writeServiceError(ctx, w, "record screening run", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleTransition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.warnBadRequest(ctx, "workflow transition", err)
		shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	target, err := domain.ParseScreeningStatus(req.TargetState)
	if err != nil {
		shared.WriteError(w, err)
		return
	}

	actor := req.Actor
	if actor == "" {
		actor = middleware.GetOfficerID(ctx)
	}

	record, err := h.workflow.Transition(ctx, req.ScreeningID, actor, target, req.Reason, req.Version)
	if err != nil {
		h.writeServiceError(ctx, w, "workflow transition", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleCompleteEnhancedDD(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req completeEnhancedDDRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.warnBadRequest(ctx, "complete enhanced dd", err)
			shared.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
			return
		}
	}

	record, err := h.workflow.CompleteEnhancedDD(ctx, chi.URLParam(r, "screeningID"),
		middleware.GetOfficerID(ctx), req.Notes, req.Version)
	if err != nil {
		h.writeServiceError(ctx, w, "complete enhanced dd", err)
		return
	}
	shared.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) warnBadRequest(ctx context.Context, op string, err error) {
	h.logger.WarnContext(ctx, "invalid "+op+" request",
		"request_id", middleware.GetRequestID(ctx),
		"error", err.Error(),
	)
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "failed to "+op,
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		shared.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to "+op))
		return
	}
	h.logger.WarnContext(ctx, op+" rejected",
		"request_id", middleware.GetRequestID(ctx),
		"code", string(code),
		"error", err.Error(),
	)
	shared.WriteError(w, err)
}
