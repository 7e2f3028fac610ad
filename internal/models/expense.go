package models

import "time"

// SplitMode governs how an expense amount is divided among participants.
type SplitMode string

const (
	SplitModeEvenly       SplitMode = "EVENLY"
	SplitModeByShares     SplitMode = "BY_SHARES"
	SplitModeByPercentage SplitMode = "BY_PERCENTAGE"
	SplitModeByAmount     SplitMode = "BY_AMOUNT"
)

// Valid reports whether m is one of the known split modes.
func (m SplitMode) Valid() bool {
	switch m {
	case SplitModeEvenly, SplitModeByShares, SplitModeByPercentage, SplitModeByAmount:
		return true
	}
	return false
}

// DateLayout is the layout of Expense.ExpenseDate on the wire and in storage.
const DateLayout = "2006-01-02"

// Expense is a monetary event paid by one participant for some of the others.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group that owns this expense.
	GroupID string

	Title string

	// ExpenseDate is the calendar day of the expense (UTC midnight).
	ExpenseDate time.Time

	// Amount is the total in minor currency units. Negative amounts are refunds.
	Amount int64

	// PaidBy is the participant ID of the payer.
	PaidBy string

	SplitMode SplitMode

	// PaidFor lists the participants sharing the expense and their raw share
	// values. The meaning of Shares depends on SplitMode:
	//   - EVENLY: ignored
	//   - BY_SHARES: share count
	//   - BY_PERCENTAGE: percentage points, normalised by their sum
	//   - BY_AMOUNT: exact amount in minor units
	PaidFor []ExpenseShare

	// IsReimbursement marks a transfer that settles a debt rather than a purchase.
	IsReimbursement bool

	Notes string

	CategoryID int64

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseShare is one participant's raw share input for an expense.
type ExpenseShare struct {
	ParticipantID string
	Shares        int64
}

// Category classifies expenses. Categories are seeded and read-only.
type Category struct {
	ID       int64
	Grouping string
	Name     string
}
