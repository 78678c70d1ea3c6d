package handler

import "complyd/internal/domain"

type createScreeningRequest struct {
	ShipmentID         string                    `json:"shipment_id"`
	EndUser            domain.EndUser            `json:"end_user"`
	TransactionContext domain.TransactionContext `json:"transaction_context"`
	AssignedOfficer    string                    `json:"assigned_officer,omitempty"`
}

type riskScoresRequest struct {
	Scores  domain.RiskScores `json:"scores"`
	Version int               `json:"version,omitempty"`
}

type screenRunRequest struct {
	Version int `json:"version,omitempty"`
}

type transitionRequest struct {
	ScreeningID string `json:"screening_id"`
	TargetState string `json:"target_state"`
	Actor       string `json:"actor,omitempty"`
	Reason      string `json:"reason,omitempty"`
	Version     int    `json:"version,omitempty"`
}

type completeEnhancedDDRequest struct {
	Notes   string `json:"notes,omitempty"`
	Version int    `json:"version,omitempty"`
}
