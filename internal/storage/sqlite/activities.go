package sqlite

import (
	"context"
	"fmt"

	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

// ListActivities returns one page of a group's activity log, newest first.
func (s *SQLiteStore) ListActivities(ctx context.Context, q storage.ActivityQuery) ([]*models.Activity, error) {
	query := "SELECT id, group_id, activity_type, expense_id, data, time FROM activities WHERE group_id = ?"
	args := []any{q.GroupID}
	if q.After != nil {
		query += " AND (time, id) < (?, ?)"
		args = append(args, q.After.Time, q.After.ID)
	}
	query += " ORDER BY time DESC, id DESC LIMIT ?"
	args = append(args, q.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	activities := []*models.Activity{}
	for rows.Next() {
		a := &models.Activity{}
		var activityType string
		if err := rows.Scan(&a.ID, &a.GroupID, &activityType, &a.ExpenseID, &a.Data, &a.Time); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		a.Type = models.ActivityType(activityType)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate activities: %w", err)
	}
	return activities, nil
}
