package calculator

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/models"
)

// Share is one participant's raw share input for an expense.
type Share struct {
	ParticipantID string
	Value         int64
}

// OwedShare is the amount one participant owes for an expense, in minor units.
type OwedShare struct {
	ParticipantID string
	Amount        int64
}

// ResolveSplit converts an expense amount and its raw share inputs into exact
// owed amounts. The result has one entry per input share, in input order, and
// the owed amounts always sum to amount.
//
// Rounding remainders go one unit at a time to participants in list order
// (participants with a zero share are skipped), so the same inputs always
// produce the same distribution.
//
// Algorithm per mode:
//   - EVENLY: floor(amount / n) each, the first amount mod n get one more
//   - BY_SHARES, BY_PERCENTAGE: floor(amount × share / Σshares) each
//   - BY_AMOUNT: declared amounts as-is; they must sum to amount
//
// Negative amounts are resolved on their absolute value and negated.
func ResolveSplit(amount int64, mode models.SplitMode, paidFor []Share) ([]OwedShare, error) {
	if len(paidFor) == 0 {
		return nil, fmt.Errorf("%w: at least one participant is required", apperrors.ErrValidation)
	}
	if amount == math.MinInt64 {
		return nil, fmt.Errorf("%w: amount out of range", apperrors.ErrValidation)
	}
	seen := make(map[string]bool, len(paidFor))
	for _, s := range paidFor {
		if s.ParticipantID == "" {
			return nil, fmt.Errorf("%w: participant id is required", apperrors.ErrValidation)
		}
		if seen[s.ParticipantID] {
			return nil, fmt.Errorf("%w: participant %s appears more than once", apperrors.ErrValidation, s.ParticipantID)
		}
		seen[s.ParticipantID] = true
	}

	switch mode {
	case models.SplitModeEvenly:
		weights := make([]int64, len(paidFor))
		for i := range weights {
			weights[i] = 1
		}
		return splitProportionally(amount, paidFor, weights)
	case models.SplitModeByShares, models.SplitModeByPercentage:
		weights := make([]int64, len(paidFor))
		for i, s := range paidFor {
			if s.Value < 0 {
				return nil, fmt.Errorf("%w: share for %s must not be negative", apperrors.ErrValidation, s.ParticipantID)
			}
			weights[i] = s.Value
		}
		return splitProportionally(amount, paidFor, weights)
	case models.SplitModeByAmount:
		return splitByAmount(amount, paidFor)
	default:
		return nil, fmt.Errorf("%w: unknown split mode %q", apperrors.ErrValidation, mode)
	}
}

func splitByAmount(amount int64, paidFor []Share) ([]OwedShare, error) {
	owed := make([]OwedShare, len(paidFor))
	var sum int64
	for i, s := range paidFor {
		next := sum + s.Value
		if (s.Value > 0 && next < sum) || (s.Value < 0 && next > sum) {
			return nil, fmt.Errorf("%w: declared amounts overflow", apperrors.ErrValidation)
		}
		sum = next
		owed[i] = OwedShare{ParticipantID: s.ParticipantID, Amount: s.Value}
	}
	if sum != amount {
		return nil, fmt.Errorf("%w: declared amounts sum to %d, expected %d", apperrors.ErrValidation, sum, amount)
	}
	return owed, nil
}

// splitProportionally divides |amount| by weight and hands out the remainder
// in list order to participants with a positive weight.
func splitProportionally(amount int64, paidFor []Share, weights []int64) ([]OwedShare, error) {
	var total uint64
	for _, w := range weights {
		next := total + uint64(w)
		if next < total {
			return nil, fmt.Errorf("%w: share total overflows", apperrors.ErrValidation)
		}
		total = next
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: total shares must be greater than zero", apperrors.ErrValidation)
	}

	negative := amount < 0
	abs := uint64(amount)
	if negative {
		abs = uint64(-amount)
	}

	owed := make([]OwedShare, len(paidFor))
	var assigned uint64
	for i, s := range paidFor {
		part := mulDiv(abs, uint64(weights[i]), total)
		assigned += part
		owed[i] = OwedShare{ParticipantID: s.ParticipantID, Amount: int64(part)}
	}

	// Each floor loses less than one unit, so the remainder is smaller than
	// the number of positive weights and one pass normally suffices.
	remainder := abs - assigned
	for remainder > 0 {
		for i := range owed {
			if remainder == 0 {
				break
			}
			if weights[i] == 0 {
				continue
			}
			owed[i].Amount++
			remainder--
		}
	}

	if negative {
		for i := range owed {
			owed[i].Amount = -owed[i].Amount
		}
	}
	return owed, nil
}

// mulDiv returns floor(a*b/c) using a 128-bit intermediate product.
// b must not exceed c, which keeps the quotient within 64 bits.
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	q, _ := bits.Div64(hi, lo, c)
	return q
}
