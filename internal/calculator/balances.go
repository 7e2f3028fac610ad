package calculator

import (
	"fmt"
	"math"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/models"
)

// ExpenseForBalance represents an expense with the minimal information needed
// for balance calculations.
type ExpenseForBalance struct {
	ID              string
	Amount          int64
	PaidBy          string
	SplitMode       models.SplitMode
	PaidFor         []Share
	IsReimbursement bool
}

// Balance is one participant's position in a group, in minor units.
type Balance struct {
	Paid  int64 // Sum of amounts this participant paid
	Owed  int64 // Sum of this participant's shares
	Total int64 // Paid - Owed; positive = owed money, negative = owes money
}

// ExpensesFromModels converts stored expenses to calculator input.
func ExpensesFromModels(expenses []*models.Expense) []ExpenseForBalance {
	out := make([]ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		shares := make([]Share, len(e.PaidFor))
		for j, pf := range e.PaidFor {
			shares[j] = Share{ParticipantID: pf.ParticipantID, Value: pf.Shares}
		}
		out[i] = ExpenseForBalance{
			ID:              e.ID,
			Amount:          e.Amount,
			PaidBy:          e.PaidBy,
			SplitMode:       e.SplitMode,
			PaidFor:         shares,
			IsReimbursement: e.IsReimbursement,
		}
	}
	return out
}

// CalculateBalances folds every expense of a group into per-participant
// balances.
//
// Algorithm:
//   - Every participant starts at {0, 0, 0}, so inactive participants still appear
//   - For each expense: payer's Paid += amount, each resolved share adds to Owed
//   - Total = Paid - Owed
//
// An expense that references a participant outside participantIDs, or whose
// stored split no longer resolves, is reported as apperrors.ErrDataIntegrity
// rather than skipped, since dropping it would break the zero-sum property.
// So is a sum that does not fit in an int64.
func CalculateBalances(participantIDs []string, expenses []ExpenseForBalance) (map[string]Balance, error) {
	balances := make(map[string]*Balance, len(participantIDs))
	for _, id := range participantIDs {
		balances[id] = &Balance{}
	}

	for _, e := range expenses {
		payer, ok := balances[e.PaidBy]
		if !ok {
			return nil, fmt.Errorf("%w: expense %s is paid by unknown participant %q",
				apperrors.ErrDataIntegrity, e.ID, e.PaidBy)
		}

		owed, err := ResolveSplit(e.Amount, e.SplitMode, e.PaidFor)
		if err != nil {
			return nil, fmt.Errorf("%w: expense %s: %w", apperrors.ErrDataIntegrity, e.ID, err)
		}

		if payer.Paid, ok = addAmount(payer.Paid, e.Amount); !ok {
			return nil, overflowError(e.ID, e.PaidBy)
		}
		for _, o := range owed {
			b, ok := balances[o.ParticipantID]
			if !ok {
				return nil, fmt.Errorf("%w: expense %s is shared with unknown participant %q",
					apperrors.ErrDataIntegrity, e.ID, o.ParticipantID)
			}
			if b.Owed, ok = addAmount(b.Owed, o.Amount); !ok {
				return nil, overflowError(e.ID, o.ParticipantID)
			}
		}
	}

	result := make(map[string]Balance, len(balances))
	var sum int64
	for id, b := range balances {
		total, ok := subAmount(b.Paid, b.Owed)
		// Totals are negated when planning, so MinInt64 is out of range too.
		if !ok || total == math.MinInt64 {
			return nil, fmt.Errorf("%w: balance of %q overflows", apperrors.ErrDataIntegrity, id)
		}
		if sum, ok = addAmount(sum, total); !ok {
			return nil, fmt.Errorf("%w: balance totals overflow", apperrors.ErrDataIntegrity)
		}
		b.Total = total
		result[id] = *b
	}
	return result, nil
}

// CheckZeroSum returns apperrors.ErrDataIntegrity if the totals do not net to zero.
func CheckZeroSum(balances map[string]Balance) error {
	if sum := sumTotals(balances); sum != 0 {
		return fmt.Errorf("%w: balances sum to %d instead of zero", apperrors.ErrDataIntegrity, sum)
	}
	return nil
}

func sumTotals(balances map[string]Balance) int64 {
	var sum int64
	for _, b := range balances {
		sum += b.Total
	}
	return sum
}

// addAmount returns a+b and false if the sum does not fit in an int64.
func addAmount(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// subAmount returns a-b and false if the difference does not fit in an int64.
func subAmount(a, b int64) (int64, bool) {
	diff := a - b
	if (b > 0 && diff > a) || (b < 0 && diff < a) {
		return 0, false
	}
	return diff, true
}

func overflowError(expenseID, participantID string) error {
	return fmt.Errorf("%w: expense %s overflows the balance of %q", apperrors.ErrDataIntegrity, expenseID, participantID)
}
