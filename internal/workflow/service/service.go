// Package service implements the compliance workflow over screening
// records: lifecycle CRUD, risk score maintenance, watchlist screening
// runs, and the status state machine with its approval gates.
package service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"complyd/internal/audit"
	"complyd/internal/domain"
	"complyd/internal/platform/metrics"
	"complyd/internal/risk"
	"complyd/internal/workflow"
	"complyd/internal/workflow/store"
	dErrors "complyd/pkg/domain-errors"
)

// Screener runs an entity against every configured restricted-party list.
type Screener interface {
	Screen(ctx context.Context, entityName, country string) ([]domain.WatchlistResult, error)
}

// Service orchestrates screening record mutations. Every write goes through
// the store's compare-and-swap so concurrent officers cannot silently
// overwrite each other.
type Service struct {
	store    store.Store
	screener Screener
	audit    audit.Publisher
	metrics  *metrics.Metrics
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Service)

func WithAuditPublisher(p audit.Publisher) Option {
	return func(s *Service) {
		s.audit = p
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(st store.Store, screener Screener, opts ...Option) *Service {
	s := &Service{
		store:    st,
		screener: screener,
		audit:    audit.NewRecorder(),
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateParams carries the caller-supplied fields of a new screening record.
type CreateParams struct {
	ShipmentID         string
	EndUser            domain.EndUser
	TransactionContext domain.TransactionContext
	AssignedOfficer    string
}

// Create opens a new screening record in the pending state.
func (s *Service) Create(ctx context.Context, actor string, params CreateParams) (*domain.ScreeningRecord, error) {
	var missing []string
	if strings.TrimSpace(params.ShipmentID) == "" {
		missing = append(missing, "shipment_id")
	}
	if strings.TrimSpace(params.EndUser.CompanyName) == "" {
		missing = append(missing, "end_user.company_name")
	}
	if strings.TrimSpace(params.EndUser.Country) == "" {
		missing = append(missing, "end_user.country")
	}
	if len(missing) > 0 {
		return nil, dErrors.NewWithFields(dErrors.CodeValidation, "required fields are missing", missing)
	}

	record := &domain.ScreeningRecord{
		ScreeningID:        uuid.NewString(),
		ShipmentID:         params.ShipmentID,
		EndUser:            params.EndUser,
		TransactionContext: params.TransactionContext,
		AssignedOfficer:    params.AssignedOfficer,
		Status:             domain.StatusPending,
	}
	if err := s.store.Create(ctx, record); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create screening record")
	}

	if s.metrics != nil {
		s.metrics.ScreeningsStarted.Inc()
	}
	s.emit(ctx, audit.ActionScreeningCreated, actor, record, nil)

	return record, nil
}

func (s *Service) Get(ctx context.Context, screeningID string) (*domain.ScreeningRecord, error) {
	return s.store.Get(ctx, screeningID)
}

func (s *Service) List(ctx context.Context) ([]*domain.ScreeningRecord, error) {
	return s.store.List(ctx)
}

// UpdateRiskScores replaces the category scores and re-derives the overall
// score, tier, and the enhanced due diligence flag. The flag only ever
// latches on; a later score drop does not clear it.
func (s *Service) UpdateRiskScores(ctx context.Context, screeningID, actor string, scores domain.RiskScores, expectedVersion int) (*domain.ScreeningRecord, error) {
	record, version, err := s.load(ctx, screeningID, expectedVersion)
	if err != nil {
		return nil, err
	}
	if record.Status.IsTerminal() {
		return nil, dErrors.Newf(dErrors.CodeInvalidTransition,
			"screening record is %s and can no longer be modified", record.Status)
	}

	assessment, err := risk.Aggregate(scores)
	if err != nil {
		return nil, err
	}

	record.RiskScores = scores
	record.OverallRisk = assessment.Overall
	record.RiskTier = assessment.Tier

	wasRequired := record.EnhancedDDRequired
	if risk.EnhancedDDRequired(assessment.Tier, domain.HasAnyMatch(record.WatchlistResults)) {
		record.EnhancedDDRequired = true
	}
	if record.EnhancedDDRequired && !wasRequired && s.metrics != nil {
		s.metrics.EnhancedDDTriggered.Inc()
	}

	if err := s.store.Update(ctx, record, version); err != nil {
		return nil, err
	}

	s.emit(ctx, audit.ActionRiskScoresUpdated, actor, record, map[string]string{
		"overall_risk": strconv.FormatFloat(assessment.Overall, 'f', 2, 64),
		"risk_tier":    string(assessment.Tier),
	})
	return record, nil
}

// RecordScreening runs the record's end user against all watchlists and
// stores the outcome. Re-running replaces the previous results wholesale.
func (s *Service) RecordScreening(ctx context.Context, screeningID, actor string, expectedVersion int) (*domain.ScreeningRecord, error) {
	record, version, err := s.load(ctx, screeningID, expectedVersion)
	if err != nil {
		return nil, err
	}
	if record.Status.IsTerminal() {
		return nil, dErrors.Newf(dErrors.CodeInvalidTransition,
			"screening record is %s and can no longer be modified", record.Status)
	}

	results, err := s.screener.Screen(ctx, record.EndUser.CompanyName, record.EndUser.Country)
	if err != nil {
		return nil, err
	}

	screenedAt := s.now().UTC()
	record.WatchlistResults = results
	record.ScreenedAt = &screenedAt

	wasRequired := record.EnhancedDDRequired
	if risk.EnhancedDDRequired(record.RiskTier, domain.HasAnyMatch(results)) {
		record.EnhancedDDRequired = true
	}
	if record.EnhancedDDRequired && !wasRequired && s.metrics != nil {
		s.metrics.EnhancedDDTriggered.Inc()
	}

	if err := s.store.Update(ctx, record, version); err != nil {
		return nil, err
	}

	s.emit(ctx, audit.ActionWatchlistScreened, actor, record, map[string]string{
		"match_found": strconv.FormatBool(domain.HasAnyMatch(results)),
	})
	return record, nil
}

// Transition moves the record to a new workflow status, enforcing the
// state machine and the approval checklist.
func (s *Service) Transition(ctx context.Context, screeningID, actor string, target domain.ScreeningStatus, reason string, expectedVersion int) (*domain.ScreeningRecord, error) {
	record, version, err := s.load(ctx, screeningID, expectedVersion)
	if err != nil {
		return nil, err
	}

	if err := s.checkTransition(record, target, reason); err != nil {
		if s.metrics != nil {
			s.metrics.TransitionsRejected.WithLabelValues(string(dErrors.CodeOf(err))).Inc()
		}
		return nil, err
	}

	from := record.Status
	record.Status = target
	// Every transition records who moved the record and when; the reason is
	// mandatory only for denials.
	record.ApprovalDetails = &domain.ApprovalDetails{
		Actor:     actor,
		Timestamp: s.now().UTC(),
		Reason:    reason,
	}

	if err := s.store.Update(ctx, record, version); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.WorkflowTransitions.WithLabelValues(string(target)).Inc()
	}
	s.emit(ctx, audit.ActionStatusChanged, actor, record, map[string]string{
		"from":   string(from),
		"to":     string(target),
		"reason": reason,
	})
	return record, nil
}

// legalTransitions enumerates the status graph. requires_enhanced_dd has an
// extra guard checked in checkTransition: entering it needs the flag set,
// and leaving it needs the work completed.
var legalTransitions = map[domain.ScreeningStatus][]domain.ScreeningStatus{
	domain.StatusPending:            {domain.StatusInReview, domain.StatusApproved, domain.StatusDenied, domain.StatusRequiresEnhancedDD},
	domain.StatusInReview:           {domain.StatusApproved, domain.StatusDenied, domain.StatusRequiresEnhancedDD},
	domain.StatusRequiresEnhancedDD: {domain.StatusInReview, domain.StatusApproved, domain.StatusDenied},
}

func (s *Service) checkTransition(record *domain.ScreeningRecord, target domain.ScreeningStatus, reason string) error {
	if record.Status.IsTerminal() {
		return dErrors.Newf(dErrors.CodeInvalidTransition,
			"screening record is %s and can no longer change status", record.Status)
	}

	allowed := false
	for _, t := range legalTransitions[record.Status] {
		if t == target {
			allowed = true
			break
		}
	}
	if !allowed {
		return dErrors.Newf(dErrors.CodeInvalidTransition,
			"cannot transition from %s to %s", record.Status, target)
	}

	if record.Status == domain.StatusRequiresEnhancedDD && !record.EnhancedDDCompleted {
		return dErrors.New(dErrors.CodeInvalidTransition,
			"enhanced due diligence must be completed before leaving this status")
	}

	switch target {
	case domain.StatusRequiresEnhancedDD:
		if !record.EnhancedDDRequired {
			return dErrors.New(dErrors.CodeInvalidTransition,
				"enhanced due diligence has not been triggered for this record")
		}
	case domain.StatusApproved:
		if missing := workflow.MissingChecklistItems(record); len(missing) > 0 {
			return dErrors.NewWithFields(dErrors.CodeIncompleteChecklist,
				"approval checklist is incomplete", missing)
		}
	case domain.StatusDenied:
		if strings.TrimSpace(reason) == "" {
			return dErrors.NewWithFields(dErrors.CodeValidation,
				"a denial must state a reason", []string{"reason"})
		}
	}
	return nil
}

// CompleteEnhancedDD marks the enhanced due diligence work done and stores
// the officer's findings.
func (s *Service) CompleteEnhancedDD(ctx context.Context, screeningID, actor, notes string, expectedVersion int) (*domain.ScreeningRecord, error) {
	record, version, err := s.load(ctx, screeningID, expectedVersion)
	if err != nil {
		return nil, err
	}
	if record.Status.IsTerminal() {
		return nil, dErrors.Newf(dErrors.CodeInvalidTransition,
			"screening record is %s and can no longer be modified", record.Status)
	}
	if !record.EnhancedDDRequired {
		return nil, dErrors.New(dErrors.CodeInvalidTransition,
			"enhanced due diligence was never required for this record")
	}

	record.EnhancedDDCompleted = true
	if notes != "" {
		record.OfficerNotes = notes
	}

	if err := s.store.Update(ctx, record, version); err != nil {
		return nil, err
	}

	s.emit(ctx, audit.ActionEnhancedDDCompleted, actor, record, nil)
	return record, nil
}

// load fetches the record and resolves the caller's version expectation.
// expectedVersion 0 means "whatever is current"; a non-zero mismatch is a
// stale write before any mutation happens.
func (s *Service) load(ctx context.Context, screeningID string, expectedVersion int) (*domain.ScreeningRecord, int, error) {
	record, err := s.store.Get(ctx, screeningID)
	if err != nil {
		return nil, 0, err
	}
	if expectedVersion == 0 {
		return record, record.Version, nil
	}
	if expectedVersion != record.Version {
		return nil, 0, store.ErrStaleVersion
	}
	return record, expectedVersion, nil
}

func (s *Service) emit(ctx context.Context, action audit.Action, actor string, record *domain.ScreeningRecord, detail map[string]string) {
	event := audit.NewEvent(action, actor)
	event.ScreeningID = record.ScreeningID
	event.ShipmentID = record.ShipmentID
	event.Detail = detail
	if err := s.audit.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish audit event",
			"action", string(action),
			"screening_id", record.ScreeningID,
			"error", err)
	}
}
