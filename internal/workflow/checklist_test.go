package workflow

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"complyd/internal/domain"
)

func completeRecord() *domain.ScreeningRecord {
	screened := time.Now().UTC()
	return &domain.ScreeningRecord{
		ScreeningID: "scr-1",
		EndUser: domain.EndUser{
			CompanyName:        "Helvetia Precision AG",
			Country:            "CH",
			RegistrationNumber: "CHE-273.441.002",
		},
		TransactionContext: domain.TransactionContext{
			EndUseDeclaration: strings.Repeat("x", 20),
		},
		WatchlistResults: []domain.WatchlistResult{{ListName: domain.WatchlistSDN}},
		ScreenedAt:       &screened,
		AssignedOfficer:  "officer-1",
	}
}

func TestMissingChecklistItemsCompleteRecord(t *testing.T) {
	assert.Empty(t, MissingChecklistItems(completeRecord()))
}

func TestDeclarationLengthBoundary(t *testing.T) {
	record := completeRecord()

	record.TransactionContext.EndUseDeclaration = strings.Repeat("x", 19)
	assert.Equal(t, []string{ItemEndUseDeclaration}, MissingChecklistItems(record))

	record.TransactionContext.EndUseDeclaration = strings.Repeat("x", 20)
	assert.Empty(t, MissingChecklistItems(record))
}

func TestCleanScreeningRunStillCounts(t *testing.T) {
	record := completeRecord()
	// All seven lists clean: the run itself is what the checklist requires.
	record.WatchlistResults = nil
	for _, name := range domain.AllWatchlists() {
		record.WatchlistResults = append(record.WatchlistResults, domain.WatchlistResult{ListName: name})
	}
	assert.Empty(t, MissingChecklistItems(record))
}

func TestEveryMissingItemReported(t *testing.T) {
	record := &domain.ScreeningRecord{}
	assert.Equal(t, []string{
		ItemEndUserRegistration,
		ItemEndUserCompanyName,
		ItemEndUseDeclaration,
		ItemWatchlistScreening,
		ItemAssignedOfficer,
	}, MissingChecklistItems(record))
}
