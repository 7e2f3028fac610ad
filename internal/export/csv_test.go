package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/models"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		minor int64
		want  string
	}{
		{0, "0.00"},
		{5, "0.05"},
		{1000, "10.00"},
		{123456, "1234.56"},
		{-250, "-2.50"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.minor))
	}
}

func TestWriteLedger(t *testing.T) {
	ledger := &models.Ledger{
		Group: &models.Group{
			ID:       "g1",
			Currency: "$",
			Participants: []models.Participant{
				{ID: "a", Name: "Alice"},
				{ID: "b", Name: "Bob"},
				{ID: "c", Name: "Carol"},
			},
		},
		Expenses: []*models.Expense{
			{
				ID:          "e1",
				Title:       "Dinner",
				ExpenseDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
				Amount:      1000,
				PaidBy:      "a",
				SplitMode:   models.SplitModeEvenly,
				PaidFor: []models.ExpenseShare{
					{ParticipantID: "a", Shares: 1},
					{ParticipantID: "b", Shares: 1},
					{ParticipantID: "c", Shares: 1},
				},
				CategoryID: 0,
			},
			{
				ID:              "e2",
				Title:           "Payback",
				ExpenseDate:     time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
				Amount:          333,
				PaidBy:          "b",
				SplitMode:       models.SplitModeEvenly,
				PaidFor:         []models.ExpenseShare{{ParticipantID: "a", Shares: 1}},
				IsReimbursement: true,
				CategoryID:      1,
			},
		},
	}
	categories := map[int64]models.Category{
		0: {ID: 0, Grouping: "Uncategorized", Name: "General"},
		1: {ID: 1, Grouping: "Uncategorized", Name: "Payment"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLedger(&buf, ledger, categories))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Date", "Title", "Category", "Amount", "Currency", "Paid By", "Split Mode", "Reimbursement", "Alice", "Bob", "Carol"}, records[0])
	assert.Equal(t, []string{"2024-01-02", "Dinner", "General", "10.00", "$", "Alice", "EVENLY", "false", "3.34", "3.33", "3.33"}, records[1])
	assert.Equal(t, []string{"2024-01-03", "Payback", "Payment", "3.33", "$", "Bob", "EVENLY", "true", "3.33", "", ""}, records[2])
}

func TestWriteLedger_InvalidExpense(t *testing.T) {
	ledger := &models.Ledger{
		Group: &models.Group{ID: "g1"},
		Expenses: []*models.Expense{
			{ID: "e1", Amount: 100, SplitMode: models.SplitModeEvenly},
		},
	}

	err := WriteLedger(&bytes.Buffer{}, ledger, nil)
	assert.ErrorIs(t, err, apperrors.ErrDataIntegrity)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
