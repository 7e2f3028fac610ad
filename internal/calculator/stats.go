package calculator

import (
	"fmt"

	"github.com/mmynk/groupledger/internal/apperrors"
)

// Stats summarises the spending of a group.
type Stats struct {
	// TotalGroupSpending is the sum of all non-reimbursement expenses.
	TotalGroupSpending int64

	// ParticipantPaid and ParticipantShare are set only when a participant
	// was requested: what they paid and what they consumed, both excluding
	// reimbursements.
	ParticipantPaid  int64
	ParticipantShare int64
}

// CalculateStats computes spending statistics. Reimbursements move money
// between participants without buying anything, so they are ignored.
// participantID may be empty.
func CalculateStats(expenses []ExpenseForBalance, participantID string) (Stats, error) {
	var stats Stats
	for _, e := range expenses {
		if e.IsReimbursement {
			continue
		}
		var ok bool
		if stats.TotalGroupSpending, ok = addAmount(stats.TotalGroupSpending, e.Amount); !ok {
			return Stats{}, fmt.Errorf("%w: total spending overflows at expense %s", apperrors.ErrDataIntegrity, e.ID)
		}
		if participantID == "" {
			continue
		}

		if e.PaidBy == participantID {
			if stats.ParticipantPaid, ok = addAmount(stats.ParticipantPaid, e.Amount); !ok {
				return Stats{}, overflowError(e.ID, participantID)
			}
		}
		owed, err := ResolveSplit(e.Amount, e.SplitMode, e.PaidFor)
		if err != nil {
			return Stats{}, fmt.Errorf("%w: expense %s: %w", apperrors.ErrDataIntegrity, e.ID, err)
		}
		for _, o := range owed {
			if o.ParticipantID == participantID {
				if stats.ParticipantShare, ok = addAmount(stats.ParticipantShare, o.Amount); !ok {
					return Stats{}, overflowError(e.ID, participantID)
				}
			}
		}
	}
	return stats, nil
}
