package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"complyd/internal/domain"
	"complyd/internal/platform/middleware"
	"complyd/internal/workflow/handler/mocks"
	"complyd/internal/workflow/service"
	dErrors "complyd/pkg/domain-errors"
)

type WorkflowHandlerSuite struct {
	suite.Suite
	router  chi.Router
	service *mocks.MockService
}

func TestWorkflowHandlerSuite(t *testing.T) {
	suite.Run(t, new(WorkflowHandlerSuite))
}

func (s *WorkflowHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.T().Cleanup(ctrl.Finish)
	s.service = mocks.NewMockService(ctrl)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := New(s.service, logger)

	s.router = chi.NewRouter()
	// Stand-in for RequireAuth: the officer identity is already validated
	// by the time handlers run.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.ContextKeyOfficerID, "officer-9")
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	h.Register(s.router)
}

func (s *WorkflowHandlerSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *WorkflowHandlerSuite) TestCreateScreening() {
	s.service.EXPECT().Create(gomock.Any(), "officer-9", service.CreateParams{
		ShipmentID:      "shp-1",
		EndUser:         domain.EndUser{CompanyName: "Helvetia Precision AG", Country: "CH"},
		AssignedOfficer: "officer-9",
	}).Return(&domain.ScreeningRecord{
		ScreeningID: "scr-1",
		ShipmentID:  "shp-1",
		Status:      domain.StatusPending,
		Version:     1,
	}, nil)

	w := s.do(http.MethodPost, "/compliance/screenings", createScreeningRequest{
		ShipmentID:      "shp-1",
		EndUser:         domain.EndUser{CompanyName: "Helvetia Precision AG", Country: "CH"},
		AssignedOfficer: "officer-9",
	})

	s.Equal(http.StatusCreated, w.Code)
	var record domain.ScreeningRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &record))
	s.Equal("scr-1", record.ScreeningID)
	s.Equal(domain.StatusPending, record.Status)
}

func (s *WorkflowHandlerSuite) TestCreateValidationErrorListsFields() {
	s.service.EXPECT().Create(gomock.Any(), "officer-9", gomock.Any()).
		Return(nil, dErrors.NewWithFields(dErrors.CodeValidation,
			"required fields are missing", []string{"shipment_id", "end_user.company_name"}))

	w := s.do(http.MethodPost, "/compliance/screenings", createScreeningRequest{})

	s.Equal(http.StatusBadRequest, w.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("validation_error", body["error"])
	s.Len(body["fields"], 2)
}

func (s *WorkflowHandlerSuite) TestGetScreening() {
	s.service.EXPECT().Get(gomock.Any(), "scr-1").
		Return(&domain.ScreeningRecord{ScreeningID: "scr-1", Version: 3}, nil)

	w := s.do(http.MethodGet, "/compliance/screenings/scr-1", nil)

	s.Equal(http.StatusOK, w.Code)
}

func (s *WorkflowHandlerSuite) TestGetScreeningNotFound() {
	s.service.EXPECT().Get(gomock.Any(), "scr-missing").
		Return(nil, dErrors.New(dErrors.CodeNotFound, "screening record not found"))

	w := s.do(http.MethodGet, "/compliance/screenings/scr-missing", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *WorkflowHandlerSuite) TestUpdateRiskScores() {
	scores := domain.RiskScores{
		Geographic:  domain.RiskScore{Value: 7},
		Product:     domain.RiskScore{Value: 8},
		EndUser:     domain.RiskScore{Value: 6},
		Transaction: domain.RiskScore{Value: 7},
	}
	s.service.EXPECT().UpdateRiskScores(gomock.Any(), "scr-1", "officer-9", scores, 2).
		Return(&domain.ScreeningRecord{
			ScreeningID: "scr-1",
			RiskScores:  scores,
			OverallRisk: 7,
			RiskTier:    domain.RiskTierHigh,
			Version:     3,
		}, nil)

	w := s.do(http.MethodPost, "/compliance/screenings/scr-1/risk-scores", riskScoresRequest{
		Scores:  scores,
		Version: 2,
	})

	s.Equal(http.StatusOK, w.Code)
	var record domain.ScreeningRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &record))
	s.Equal(domain.RiskTierHigh, record.RiskTier)
}

func (s *WorkflowHandlerSuite) TestScreenRunWithEmptyBody() {
	s.service.EXPECT().RecordScreening(gomock.Any(), "scr-1", "officer-9", 0).
		Return(&domain.ScreeningRecord{ScreeningID: "scr-1", Version: 2}, nil)

	w := s.do(http.MethodPost, "/compliance/screenings/scr-1/screen", nil)

	s.Equal(http.StatusOK, w.Code)
}

func (s *WorkflowHandlerSuite) TestTransition() {
	s.service.EXPECT().Transition(gomock.Any(), "scr-1", "officer-9", domain.StatusInReview, "", 1).
		Return(&domain.ScreeningRecord{
			ScreeningID: "scr-1",
			Status:      domain.StatusInReview,
			Version:     2,
		}, nil)

	w := s.do(http.MethodPost, "/compliance/workflow/transition", transitionRequest{
		ScreeningID: "scr-1",
		TargetState: "in_review",
		Version:     1,
	})

	s.Equal(http.StatusOK, w.Code)
}

func (s *WorkflowHandlerSuite) TestTransitionPayloadActorWins() {
	s.service.EXPECT().Transition(gomock.Any(), "scr-1", "supervisor-2", domain.StatusDenied, "sanctions exposure", 1).
		Return(&domain.ScreeningRecord{ScreeningID: "scr-1", Status: domain.StatusDenied, Version: 2}, nil)

	w := s.do(http.MethodPost, "/compliance/workflow/transition", transitionRequest{
		ScreeningID: "scr-1",
		TargetState: "denied",
		Actor:       "supervisor-2",
		Reason:      "sanctions exposure",
		Version:     1,
	})

	s.Equal(http.StatusOK, w.Code)
}

func (s *WorkflowHandlerSuite) TestTransitionUnknownTargetState() {
	w := s.do(http.MethodPost, "/compliance/workflow/transition", transitionRequest{
		ScreeningID: "scr-1",
		TargetState: "archived",
	})

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *WorkflowHandlerSuite) TestTransitionIncompleteChecklistConflict() {
	s.service.EXPECT().Transition(gomock.Any(), "scr-1", "officer-9", domain.StatusApproved, "", 1).
		Return(nil, dErrors.NewWithFields(dErrors.CodeIncompleteChecklist,
			"approval checklist is incomplete",
			[]string{"watchlist_screening", "assigned_officer"}))

	w := s.do(http.MethodPost, "/compliance/workflow/transition", transitionRequest{
		ScreeningID: "scr-1",
		TargetState: "approved",
		Version:     1,
	})

	s.Equal(http.StatusConflict, w.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("incomplete_checklist", body["error"])
	s.ElementsMatch([]any{"watchlist_screening", "assigned_officer"}, body["fields"])
}

func (s *WorkflowHandlerSuite) TestTransitionStaleWriteConflict() {
	s.service.EXPECT().Transition(gomock.Any(), "scr-1", "officer-9", domain.StatusInReview, "", 1).
		Return(nil, dErrors.New(dErrors.CodeStaleWrite, "screening record was modified concurrently"))

	w := s.do(http.MethodPost, "/compliance/workflow/transition", transitionRequest{
		ScreeningID: "scr-1",
		TargetState: "in_review",
		Version:     1,
	})

	s.Equal(http.StatusConflict, w.Code)
	var body map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	s.Equal("stale_write", body["error"])
}

func (s *WorkflowHandlerSuite) TestCompleteEnhancedDD() {
	s.service.EXPECT().CompleteEnhancedDD(gomock.Any(), "scr-1", "officer-9", "ownership chain verified", 2).
		Return(&domain.ScreeningRecord{
			ScreeningID:         "scr-1",
			EnhancedDDRequired:  true,
			EnhancedDDCompleted: true,
			Version:             3,
		}, nil)

	w := s.do(http.MethodPost, "/compliance/screenings/scr-1/enhanced-dd/complete", completeEnhancedDDRequest{
		Notes:   "ownership chain verified",
		Version: 2,
	})

	s.Equal(http.StatusOK, w.Code)
	var record domain.ScreeningRecord
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &record))
	s.True(record.EnhancedDDCompleted)
}

func (s *WorkflowHandlerSuite) TestMalformedBody() {
	req := httptest.NewRequest(http.MethodPost, "/compliance/workflow/transition", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}
