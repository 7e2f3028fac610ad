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
)

// CreateGroup persists a new group and its participants.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	return s.withTx(ctx, nil, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO groups (id, name, currency, information, created_at) VALUES (?, ?, ?, ?, ?)",
			group.ID, group.Name, group.Currency, group.Information, group.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		for i := range group.Participants {
			p := &group.Participants[i]
			if p.ID == "" {
				p.ID = uuid.New().String()
			}
			p.GroupID = group.ID
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO participants (id, group_id, name, position) VALUES (?, ?, ?, ?)",
				p.ID, group.ID, p.Name, i,
			); err != nil {
				return fmt.Errorf("failed to insert participant: %w", err)
			}
		}
		return nil
	})
}

// GetGroup retrieves a group by ID, including its participants.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return loadGroup(ctx, s.db, groupID)
}

func loadGroup(ctx context.Context, q queryer, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := q.QueryRowContext(ctx,
		"SELECT id, name, currency, information, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.Currency, &group.Information, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: group %s", apperrors.ErrNotFound, groupID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	rows, err := q.QueryContext(ctx,
		"SELECT id, name FROM participants WHERE group_id = ? ORDER BY position, id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p := models.Participant{GroupID: groupID}
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		group.Participants = append(group.Participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return group, nil
}

// UpdateGroup updates a group's attributes and reconciles its participants.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) (*models.Activity, error) {
	var activity *models.Activity
	err := s.withTx(ctx, nil, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE groups SET name = ?, currency = ?, information = ? WHERE id = ?",
			group.Name, group.Currency, group.Information, group.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update group: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: group %s", apperrors.ErrNotFound, group.ID)
		}

		existing, err := participantIDs(ctx, tx, group.ID)
		if err != nil {
			return err
		}

		kept := make(map[string]bool, len(group.Participants))
		for i := range group.Participants {
			p := &group.Participants[i]
			p.GroupID = group.ID
			if p.ID == "" {
				p.ID = uuid.New().String()
				if _, err := tx.ExecContext(ctx,
					"INSERT INTO participants (id, group_id, name, position) VALUES (?, ?, ?, ?)",
					p.ID, group.ID, p.Name, i,
				); err != nil {
					return fmt.Errorf("failed to insert participant: %w", err)
				}
				kept[p.ID] = true
				continue
			}

			if !existing[p.ID] {
				return fmt.Errorf("%w: participant %s does not belong to group %s", apperrors.ErrValidation, p.ID, group.ID)
			}
			if _, err := tx.ExecContext(ctx,
				"UPDATE participants SET name = ?, position = ? WHERE id = ?",
				p.Name, i, p.ID,
			); err != nil {
				return fmt.Errorf("failed to update participant: %w", err)
			}
			kept[p.ID] = true
		}

		for id := range existing {
			if kept[id] {
				continue
			}
			used, err := participantHasExpenses(ctx, tx, id)
			if err != nil {
				return err
			}
			if used {
				return fmt.Errorf("%w: participant %s has expenses and cannot be removed", apperrors.ErrConflict, id)
			}
			if _, err := tx.ExecContext(ctx, "DELETE FROM participants WHERE id = ?", id); err != nil {
				return fmt.Errorf("failed to delete participant: %w", err)
			}
		}

		activity, err = recordActivity(ctx, tx, group.ID, models.ActivityUpdateGroup, "", group.Name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return activity, nil
}

// DeleteGroup removes a group by ID. Participants, expenses and activities
// are removed by cascade.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	return s.withTx(ctx, nil, func(tx *sql.Tx) error {
		// expense_paid_for and expenses reference participants without
		// cascade, so remove them before the group row.
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM expense_paid_for WHERE expense_id IN (SELECT id FROM expenses WHERE group_id = ?)",
			groupID,
		); err != nil {
			return fmt.Errorf("failed to delete expense shares: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM expenses WHERE group_id = ?", groupID); err != nil {
			return fmt.Errorf("failed to delete expenses: %w", err)
		}

		res, err := tx.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
		if err != nil {
			return fmt.Errorf("failed to delete group: %w", err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("%w: group %s", apperrors.ErrNotFound, groupID)
		}
		return nil
	})
}

// ParticipantsWithExpenses returns the participants that are payers or
// beneficiaries of at least one expense.
func (s *SQLiteStore) ParticipantsWithExpenses(ctx context.Context, groupID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id FROM participants p
		WHERE p.group_id = ?
		  AND (EXISTS (SELECT 1 FROM expenses e WHERE e.paid_by_id = p.id)
		    OR EXISTS (SELECT 1 FROM expense_paid_for pf WHERE pf.participant_id = p.id))
		ORDER BY p.position, p.id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants with expenses: %w", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return ids, nil
}

func participantIDs(ctx context.Context, tx *sql.Tx, groupID string) (map[string]bool, error) {
	rows, err := tx.QueryContext(ctx, "SELECT id FROM participants WHERE group_id = ?", groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return ids, nil
}

func participantHasExpenses(ctx context.Context, tx *sql.Tx, participantID string) (bool, error) {
	var used bool
	err := tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM expenses WHERE paid_by_id = ?)
		    OR EXISTS (SELECT 1 FROM expense_paid_for WHERE participant_id = ?)`,
		participantID, participantID,
	).Scan(&used)
	if err != nil {
		return false, fmt.Errorf("failed to check participant expenses: %w", err)
	}
	return used, nil
}
