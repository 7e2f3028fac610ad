// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/pagination"
)

// ExpenseQuery selects one page of a group's expenses.
type ExpenseQuery struct {
	GroupID string
	Limit   int
	After   *pagination.ExpenseCursor // nil for the first page
}

// ActivityQuery selects one page of a group's activity log.
type ActivityQuery struct {
	GroupID string
	Limit   int
	After   *pagination.ActivityCursor
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
//
// Lookups of missing rows return errors wrapping apperrors.ErrNotFound.
// Every mutation of a group or its expenses records a models.Activity in the
// same transaction and returns it so callers can publish it.
type Store interface {
	// CreateGroup persists a new group with its participants.
	// ID, CreatedAt and participant IDs are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group with its participants in display order.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// UpdateGroup replaces the group's attributes and participant list.
	// Participants with an ID are renamed, participants without an ID are
	// created, and existing participants missing from the list are removed.
	// Removing a participant referenced by an expense fails with
	// apperrors.ErrConflict.
	UpdateGroup(ctx context.Context, group *models.Group) (*models.Activity, error)

	// DeleteGroup removes a group and everything it owns.
	DeleteGroup(ctx context.Context, groupID string) error

	// ParticipantsWithExpenses returns the IDs of participants referenced by
	// at least one expense of the group.
	ParticipantsWithExpenses(ctx context.Context, groupID string) ([]string, error)

	// CreateExpense persists a new expense. ID and CreatedAt are populated by the store.
	CreateExpense(ctx context.Context, expense *models.Expense) (*models.Activity, error)

	// GetExpense retrieves one expense of a group.
	GetExpense(ctx context.Context, groupID, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense.
	UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Activity, error)

	// DeleteExpense removes an expense from its group.
	DeleteExpense(ctx context.Context, groupID, expenseID string) (*models.Activity, error)

	// ListExpenses returns up to q.Limit expenses after the cursor, newest first.
	ListExpenses(ctx context.Context, q ExpenseQuery) ([]*models.Expense, error)

	// GetGroupLedger reads a group and all of its expenses in a single
	// transaction so balance calculations see a consistent snapshot.
	GetGroupLedger(ctx context.Context, groupID string) (*models.Ledger, error)

	// ListCategories returns every expense category ordered by ID.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategory retrieves one category.
	GetCategory(ctx context.Context, categoryID int64) (*models.Category, error)

	// ListActivities returns up to q.Limit activities after the cursor, newest first.
	ListActivities(ctx context.Context, q ActivityQuery) ([]*models.Activity, error)

	// Close releases any resources held by the store.
	Close() error
}
