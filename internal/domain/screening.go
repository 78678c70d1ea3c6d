package domain

import (
	"time"

	dErrors "complyd/pkg/domain-errors"
)

// WatchlistName identifies one of the fixed set of restricted-party lists.
type WatchlistName string

const (
	WatchlistEntityList      WatchlistName = "entity_list"
	WatchlistSDN             WatchlistName = "sdn_list"
	WatchlistUnverified      WatchlistName = "unverified_list"
	WatchlistMilitaryEndUser WatchlistName = "military_end_user_list"
	WatchlistEUConsolidated  WatchlistName = "eu_consolidated_list"
	WatchlistUNSanctions     WatchlistName = "un_sanctions_list"
	WatchlistDeniedPersons   WatchlistName = "denied_persons_list"
)

// AllWatchlists is the canonical screening order. Screening output preserves
// this order regardless of lookup completion order.
func AllWatchlists() []WatchlistName {
	return []WatchlistName{
		WatchlistEntityList,
		WatchlistSDN,
		WatchlistUnverified,
		WatchlistMilitaryEndUser,
		WatchlistEUConsolidated,
		WatchlistUNSanctions,
		WatchlistDeniedPersons,
	}
}

func (n WatchlistName) String() string {
	return string(n)
}

// WatchlistResult is one list's verdict for a screening run. Immutable once
// produced; re-running screening replaces the whole sequence.
type WatchlistResult struct {
	ListName          WatchlistName `json:"list_name"`
	MatchFound        bool          `json:"match_found"`
	MatchedEntityName string        `json:"matched_entity_name,omitempty"`
	MatchConfidence   float64       `json:"match_confidence,omitempty"`
	MatchReason       string        `json:"match_reason,omitempty"`
}

// HasAnyMatch is the sole screening signal consumed downstream; per-list
// detail is display-only.
func HasAnyMatch(results []WatchlistResult) bool {
	for _, r := range results {
		if r.MatchFound {
			return true
		}
	}
	return false
}

// RiskTier buckets an overall risk score.
type RiskTier string

const (
	RiskTierLow    RiskTier = "Low"
	RiskTierMedium RiskTier = "Medium"
	RiskTierHigh   RiskTier = "High"
)

// RiskScore is one category score on the 1-10 scale with officer notes.
// A zero Value means "not yet assessed" and aggregates as the neutral
// midpoint 5.
type RiskScore struct {
	Value int    `json:"value"`
	Notes string `json:"notes,omitempty"`
}

// RiskScores holds the four assessment categories.
type RiskScores struct {
	Geographic  RiskScore `json:"geographic"`
	Product     RiskScore `json:"product"`
	EndUser     RiskScore `json:"end_user"`
	Transaction RiskScore `json:"transaction"`
}

// ScreeningStatus is the workflow state of a screening record.
type ScreeningStatus string

const (
	StatusPending            ScreeningStatus = "pending"
	StatusInReview           ScreeningStatus = "in_review"
	StatusApproved           ScreeningStatus = "approved"
	StatusDenied             ScreeningStatus = "denied"
	StatusRequiresEnhancedDD ScreeningStatus = "requires_enhanced_dd"
)

var validStatuses = map[ScreeningStatus]bool{
	StatusPending:            true,
	StatusInReview:           true,
	StatusApproved:           true,
	StatusDenied:             true,
	StatusRequiresEnhancedDD: true,
}

// ParseScreeningStatus constructs a ScreeningStatus from external input.
func ParseScreeningStatus(s string) (ScreeningStatus, error) {
	st := ScreeningStatus(s)
	if !validStatuses[st] {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown status: %s", s)
	}
	return st, nil
}

// IsTerminal reports whether no further transitions are legal.
func (s ScreeningStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusDenied
}

func (s ScreeningStatus) String() string {
	return string(s)
}

// EndUser is the screened counterparty.
type EndUser struct {
	CompanyName        string `json:"company_name"`
	Country            string `json:"country"`
	RegistrationNumber string `json:"registration_number"`
	ContactName        string `json:"contact_name,omitempty"`
	ContactEmail       string `json:"contact_email,omitempty"`
	Address            string `json:"address,omitempty"`
}

// TransactionContext describes the commercial context being assessed.
type TransactionContext struct {
	Value             Amount     `json:"value"`
	Currency          string     `json:"currency"`
	ProductCategories []Category `json:"product_categories,omitempty"`
	EndUseDeclaration string     `json:"end_use_declaration"`
	Frequency         string     `json:"frequency,omitempty"`
}

// ApprovalDetails records who moved the record into a terminal state and why.
type ApprovalDetails struct {
	Actor     string    `json:"actor"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// ScreeningRecord is the unit the compliance workflow operates on. It is
// owned by exactly one shipment and mutated only through declared workflow
// operations. Version implements the optimistic concurrency contract:
// writes against a stale version fail rather than overwrite.
type ScreeningRecord struct {
	ScreeningID        string             `json:"screening_id"`
	ShipmentID         string             `json:"shipment_id"`
	EndUser            EndUser            `json:"end_user"`
	TransactionContext TransactionContext `json:"transaction_context"`
	RiskScores         RiskScores         `json:"risk_scores"`
	OverallRisk        float64            `json:"overall_risk"`
	RiskTier           RiskTier           `json:"risk_tier"`
	WatchlistResults   []WatchlistResult  `json:"watchlist_results,omitempty"`
	ScreenedAt         *time.Time         `json:"screened_at,omitempty"`

	// Documents maps required document slots to their upload state.
	Documents map[string]bool `json:"documents,omitempty"`

	Status              ScreeningStatus  `json:"status"`
	AssignedOfficer     string           `json:"assigned_officer,omitempty"`
	OfficerNotes        string           `json:"officer_notes,omitempty"`
	EnhancedDDRequired  bool             `json:"enhanced_dd_required"`
	EnhancedDDCompleted bool             `json:"enhanced_dd_completed"`
	ApprovalDetails     *ApprovalDetails `json:"approval_details,omitempty"`

	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy so stores can hand out records without aliasing
// their internal state.
func (r *ScreeningRecord) Clone() *ScreeningRecord {
	if r == nil {
		return nil
	}
	cp := *r
	if r.WatchlistResults != nil {
		cp.WatchlistResults = make([]WatchlistResult, len(r.WatchlistResults))
		copy(cp.WatchlistResults, r.WatchlistResults)
	}
	if r.Documents != nil {
		cp.Documents = make(map[string]bool, len(r.Documents))
		for k, v := range r.Documents {
			cp.Documents[k] = v
		}
	}
	if r.TransactionContext.ProductCategories != nil {
		cp.TransactionContext.ProductCategories = append([]Category(nil), r.TransactionContext.ProductCategories...)
	}
	if r.ScreenedAt != nil {
		t := *r.ScreenedAt
		cp.ScreenedAt = &t
	}
	if r.ApprovalDetails != nil {
		d := *r.ApprovalDetails
		cp.ApprovalDetails = &d
	}
	return &cp
}
