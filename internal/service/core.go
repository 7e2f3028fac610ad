// Package service implements the Connect RPC services of the ledger.
package service

import (
	"context"
	"log/slog"

	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/metrics"
	"github.com/mmynk/groupledger/internal/models"
	"github.com/mmynk/groupledger/internal/storage"
)

// Core holds the dependencies shared by every service.
type Core struct {
	store     storage.Store
	locks     *GroupLocks
	balances  *BalanceCache
	publisher events.Publisher
	metrics   *metrics.Metrics
}

// NewCore wires the shared dependencies. A nil publisher disables events.
func NewCore(store storage.Store, balances *BalanceCache, publisher events.Publisher, m *metrics.Metrics) *Core {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Core{
		store:     store,
		locks:     NewGroupLocks(),
		balances:  balances,
		publisher: publisher,
		metrics:   m,
	}
}

// afterWrite invalidates derived state of the group and publishes the
// recorded activity. Publishing is best effort: the write has committed.
func (c *Core) afterWrite(ctx context.Context, groupID string, activity *models.Activity) {
	c.balances.Invalidate(groupID)
	if activity == nil {
		return
	}

	if err := c.publisher.Publish(ctx, events.FromActivity(activity)); err != nil {
		c.metrics.EventPublishFailures.Inc()
		slog.Warn("Failed to publish activity event",
			"group_id", groupID,
			"activity_type", activity.Type,
			"error", err,
		)
	}
}

// groupBalances returns the balances and reimbursement plan of a group,
// computed from a consistent snapshot of its ledger.
func (c *Core) groupBalances(ctx context.Context, groupID string) (*GroupBalances, error) {
	return c.balances.Get(ctx, groupID, func(ctx context.Context) (*GroupBalances, error) {
		ledger, err := c.store.GetGroupLedger(ctx, groupID)
		if err != nil {
			return nil, err
		}

		balances, err := calculator.CalculateBalances(
			ledger.Group.ParticipantIDs(),
			calculator.ExpensesFromModels(ledger.Expenses),
		)
		if err != nil {
			return nil, err
		}

		plan := calculator.PlanReimbursements(balances)
		if !plan.Balanced() {
			c.metrics.IntegrityFailures.Inc()
			slog.Warn("Group balances do not net to zero",
				"group_id", groupID,
				"imbalance", plan.Imbalance,
				"error", calculator.CheckZeroSum(balances),
			)
		} else {
			for id, left := range calculator.ApplyReimbursements(balances, plan.Reimbursements) {
				if left != 0 {
					c.metrics.IntegrityFailures.Inc()
					slog.Error("Reimbursement plan leaves participant unsettled",
						"group_id", groupID,
						"participant_id", id,
						"remaining", left,
					)
				}
			}
		}

		return &GroupBalances{Balances: balances, Plan: plan}, nil
	})
}
