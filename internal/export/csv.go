// Package export renders a group's ledger as CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/models"
)

// minorUnitExponent converts stored minor units to major units (cents to dollars).
const minorUnitExponent = -2

// FormatAmount renders minor units as a fixed two-decimal major amount.
func FormatAmount(minor int64) string {
	return decimal.New(minor, minorUnitExponent).StringFixed(-minorUnitExponent)
}

// WriteLedger writes one row per expense, followed by each participant's
// resolved share of it. Category names are looked up in categories.
func WriteLedger(w io.Writer, ledger *models.Ledger, categories map[int64]models.Category) error {
	group := ledger.Group
	names := make(map[string]string, len(group.Participants))
	for _, p := range group.Participants {
		names[p.ID] = p.Name
	}

	cw := csv.NewWriter(w)

	header := []string{"Date", "Title", "Category", "Amount", "Currency", "Paid By", "Split Mode", "Reimbursement"}
	for _, p := range group.Participants {
		header = append(header, p.Name)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, e := range ledger.Expenses {
		paidFor := make([]calculator.Share, len(e.PaidFor))
		for i, pf := range e.PaidFor {
			paidFor[i] = calculator.Share{ParticipantID: pf.ParticipantID, Value: pf.Shares}
		}
		owed, err := calculator.ResolveSplit(e.Amount, e.SplitMode, paidFor)
		if err != nil {
			return fmt.Errorf("%w: expense %s: %w", apperrors.ErrDataIntegrity, e.ID, err)
		}
		owedBy := make(map[string]int64, len(owed))
		for _, o := range owed {
			owedBy[o.ParticipantID] = o.Amount
		}

		row := []string{
			e.ExpenseDate.Format(models.DateLayout),
			e.Title,
			categories[e.CategoryID].Name,
			FormatAmount(e.Amount),
			group.Currency,
			names[e.PaidBy],
			string(e.SplitMode),
			strconv.FormatBool(e.IsReimbursement),
		}
		for _, p := range group.Participants {
			amount, ok := owedBy[p.ID]
			if !ok {
				row = append(row, "")
				continue
			}
			row = append(row, FormatAmount(amount))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
