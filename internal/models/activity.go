package models

// ActivityType names the kind of change an Activity records.
type ActivityType string

const (
	ActivityUpdateGroup   ActivityType = "UPDATE_GROUP"
	ActivityCreateExpense ActivityType = "CREATE_EXPENSE"
	ActivityUpdateExpense ActivityType = "UPDATE_EXPENSE"
	ActivityDeleteExpense ActivityType = "DELETE_EXPENSE"
)

// Activity is an entry in a group's change log.
type Activity struct {
	ID        string
	GroupID   string
	Type      ActivityType
	ExpenseID string // empty for group-level activities
	Data      string // human readable detail, usually the expense title
	Time      int64  // Unix nanoseconds
}

// Ledger is a consistent snapshot of a group and all of its expenses.
type Ledger struct {
	Group    *Group
	Expenses []*Expense
}
