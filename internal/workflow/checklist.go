package workflow

import (
	"strings"

	"complyd/internal/domain"
)

// Checklist item identifiers reported to callers when an approval is
// blocked. These are stable API values; the UI keys remediation hints off
// them.
const (
	ItemEndUserRegistration = "end_user_registration"
	ItemEndUserCompanyName  = "end_user_company_name"
	ItemEndUseDeclaration   = "end_use_declaration"
	ItemWatchlistScreening  = "watchlist_screening"
	ItemAssignedOfficer     = "assigned_officer"
)

// minDeclarationLength is the minimum end-use declaration length accepted
// for approval.
const minDeclarationLength = 20

// MissingChecklistItems returns every unmet approval precondition, in a
// fixed order so rejections are stable across calls.
func MissingChecklistItems(record *domain.ScreeningRecord) []string {
	var missing []string

	if strings.TrimSpace(record.EndUser.RegistrationNumber) == "" {
		missing = append(missing, ItemEndUserRegistration)
	}
	if strings.TrimSpace(record.EndUser.CompanyName) == "" {
		missing = append(missing, ItemEndUserCompanyName)
	}
	if len(record.TransactionContext.EndUseDeclaration) < minDeclarationLength {
		missing = append(missing, ItemEndUseDeclaration)
	}
	// A recorded run counts even when every list came back clean.
	if record.ScreenedAt == nil || len(record.WatchlistResults) == 0 {
		missing = append(missing, ItemWatchlistScreening)
	}
	if strings.TrimSpace(record.AssignedOfficer) == "" {
		missing = append(missing, ItemAssignedOfficer)
	}

	return missing
}
