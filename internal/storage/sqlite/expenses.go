package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

const expenseColumns = `id, group_id, title, expense_date, amount, paid_by_id, split_mode,
	is_reimbursement, notes, category_id, created_at`

// CreateExpense persists a new expense and its paid-for shares.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) (*models.Activity, error) {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	var activity *models.Activity
	err := s.withTx(ctx, nil, func(tx *sql.Tx) error {
		if err := ensureGroup(ctx, tx, expense.GroupID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			expense.ID, expense.GroupID, expense.Title, expense.ExpenseDate.Format(models.DateLayout),
			expense.Amount, expense.PaidBy, string(expense.SplitMode), expense.IsReimbursement,
			expense.Notes, expense.CategoryID, expense.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		if err := insertPaidFor(ctx, tx, expense); err != nil {
			return err
		}

		activity, err = recordActivity(ctx, tx, expense.GroupID, models.ActivityCreateExpense, expense.ID, expense.Title)
		return err
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// GetExpense retrieves an expense by ID within a group.
func (s *SQLiteStore) GetExpense(ctx context.Context, groupID, expenseID string) (*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ? AND group_id = ?`,
		expenseID, groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	expenses, err := scanExpenses(rows)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	if err := attachPaidFor(ctx, s.db, expenses); err != nil {
		return nil, err
	}
	return expenses[0], nil
}

// UpdateExpense replaces an existing expense and its paid-for shares.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Activity, error) {
	var activity *models.Activity
	err := s.withTx(ctx, nil, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE expenses SET title = ?, expense_date = ?, amount = ?, paid_by_id = ?, split_mode = ?,
				is_reimbursement = ?, notes = ?, category_id = ?
			 WHERE id = ? AND group_id = ?`,
			expense.Title, expense.ExpenseDate.Format(models.DateLayout), expense.Amount, expense.PaidBy,
			string(expense.SplitMode), expense.IsReimbursement, expense.Notes, expense.CategoryID,
			expense.ID, expense.GroupID,
		)
		if err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expense.ID)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM expense_paid_for WHERE expense_id = ?", expense.ID); err != nil {
			return fmt.Errorf("failed to clear expense shares: %w", err)
		}
		if err := insertPaidFor(ctx, tx, expense); err != nil {
			return err
		}

		activity, err = recordActivity(ctx, tx, expense.GroupID, models.ActivityUpdateExpense, expense.ID, expense.Title)
		return err
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteExpense removes an expense from a group.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, groupID, expenseID string) (*models.Activity, error) {
	var activity *models.Activity
	err := s.withTx(ctx, nil, func(tx *sql.Tx) error {
		var title string
		err := tx.QueryRowContext(ctx,
			"SELECT title FROM expenses WHERE id = ? AND group_id = ?",
			expenseID, groupID,
		).Scan(&title)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
		}
		if err != nil {
			return fmt.Errorf("failed to check expense existence: %w", err)
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM expense_paid_for WHERE expense_id = ?", expenseID); err != nil {
			return fmt.Errorf("failed to delete expense shares: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID); err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}

		activity, err = recordActivity(ctx, tx, groupID, models.ActivityDeleteExpense, expenseID, title)
		return err
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// ListExpenses returns one page of a group's expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context, q storage.ExpenseQuery) ([]*models.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE group_id = ?`
	args := []any{q.GroupID}
	if q.After != nil {
		query += ` AND (expense_date, created_at, id) < (?, ?, ?)`
		args = append(args, q.After.ExpenseDate.Format(models.DateLayout), q.After.CreatedAt, q.After.ID)
	}
	query += ` ORDER BY expense_date DESC, created_at DESC, id DESC LIMIT ?`
	args = append(args, q.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	expenses, err := scanExpenses(rows)
	if err != nil {
		return nil, err
	}
	if err := attachPaidFor(ctx, s.db, expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

// GetGroupLedger reads a group and all of its expenses in one read transaction.
func (s *SQLiteStore) GetGroupLedger(ctx context.Context, groupID string) (*models.Ledger, error) {
	var ledger models.Ledger
	err := s.withTx(ctx, &sql.TxOptions{ReadOnly: true}, func(tx *sql.Tx) error {
		group, err := loadGroup(ctx, tx, groupID)
		if err != nil {
			return err
		}

		rows, err := tx.QueryContext(ctx,
			`SELECT `+expenseColumns+` FROM expenses WHERE group_id = ?
			 ORDER BY expense_date DESC, created_at DESC, id DESC`,
			groupID,
		)
		if err != nil {
			return fmt.Errorf("failed to list expenses: %w", err)
		}
		expenses, err := scanExpenses(rows)
		if err != nil {
			return err
		}
		if err := attachPaidFor(ctx, tx, expenses); err != nil {
			return err
		}

		ledger = models.Ledger{Group: group, Expenses: expenses}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

func ensureGroup(ctx context.Context, tx *sql.Tx, groupID string) error {
	var exists int
	err := tx.QueryRowContext(ctx, "SELECT 1 FROM groups WHERE id = ?", groupID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: group %s", apperrors.ErrNotFound, groupID)
	}
	if err != nil {
		return fmt.Errorf("failed to check group existence: %w", err)
	}
	return nil
}

func insertPaidFor(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for i, pf := range expense.PaidFor {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO expense_paid_for (expense_id, participant_id, shares, position) VALUES (?, ?, ?, ?)",
			expense.ID, pf.ParticipantID, pf.Shares, i,
		); err != nil {
			return fmt.Errorf("failed to insert expense share: %w", err)
		}
	}
	return nil
}

// scanExpenses reads every row and closes rows. Paid-for shares are loaded
// separately so no second query runs while rows is open.
func scanExpenses(rows *sql.Rows) ([]*models.Expense, error) {
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e := &models.Expense{}
		var date, splitMode string
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Title, &date, &e.Amount, &e.PaidBy, &splitMode,
			&e.IsReimbursement, &e.Notes, &e.CategoryID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		parsed, err := time.Parse(models.DateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("%w: expense %s has invalid date %q", apperrors.ErrDataIntegrity, e.ID, date)
		}
		e.ExpenseDate = parsed
		e.SplitMode = models.SplitMode(splitMode)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// attachPaidFor loads the paid-for shares of expenses in stored order.
func attachPaidFor(ctx context.Context, q queryer, expenses []*models.Expense) error {
	if len(expenses) == 0 {
		return nil
	}

	byID := make(map[string]*models.Expense, len(expenses))
	args := make([]any, len(expenses))
	for i, e := range expenses {
		byID[e.ID] = e
		args[i] = e.ID
	}

	rows, err := q.QueryContext(ctx,
		`SELECT expense_id, participant_id, shares FROM expense_paid_for
		 WHERE expense_id IN (`+placeholders(len(expenses))+`)
		 ORDER BY expense_id, position`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var expenseID string
		var share models.ExpenseShare
		if err := rows.Scan(&expenseID, &share.ParticipantID, &share.Shares); err != nil {
			return fmt.Errorf("failed to scan expense share: %w", err)
		}
		if e, ok := byID[expenseID]; ok {
			e.PaidFor = append(e.PaidFor, share)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense shares: %w", err)
	}
	return nil
}
