package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/models"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

func (e *testEnv) addExpense(t *testing.T, groupID string, form *pb.ExpenseFormValues) string {
	t.Helper()
	resp, err := e.expenses.CreateExpense(context.Background(), connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           groupID,
		ExpenseFormValues: form,
	}))
	require.NoError(t, err)
	return resp.Msg.ExpenseId
}

func TestListBalances_NoExpenses(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, "Quiet Group", "Alice", "Bob")

	resp, err := env.balances.ListBalances(context.Background(), connect.NewRequest(&pb.ListBalancesRequest{
		GroupId: group.Id,
	}))
	require.NoError(t, err)

	assert.True(t, resp.Msg.Balanced)
	assert.Empty(t, resp.Msg.Reimbursements)
	require.Len(t, resp.Msg.Balances, 2)
	for _, p := range group.Participants {
		assertProtoEqual(t, &pb.Balance{}, resp.Msg.Balances[p.Id])
	}
}

func TestListBalances(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, "Trip", "Alice", "Bob", "Charlie")
	alice, bob, charlie := group.Participants[0].Id, group.Participants[1].Id, group.Participants[2].Id

	form := newExpenseForm("Cabin", 600, alice)
	form.SplitMode = "BY_SHARES"
	form.PaidFor = []*pb.PaidForFormValues{{Participant: bob, Shares: 1}, {Participant: charlie, Shares: 2}}
	env.addExpense(t, group.Id, form)

	resp, err := env.balances.ListBalances(context.Background(), connect.NewRequest(&pb.ListBalancesRequest{
		GroupId: group.Id,
	}))
	require.NoError(t, err)

	assert.True(t, resp.Msg.Balanced)
	want := map[string]*pb.Balance{
		alice:   {Paid: 600, Owed: 0, Total: 600},
		bob:     {Paid: 0, Owed: 200, Total: -200},
		charlie: {Paid: 0, Owed: 400, Total: -400},
	}
	require.Len(t, resp.Msg.Balances, len(want))
	for id, balance := range want {
		assertProtoEqual(t, balance, resp.Msg.Balances[id])
	}
	assertProtoSlice(t, []*pb.Reimbursement{
		{From: charlie, To: alice, Amount: 400},
		{From: bob, To: alice, Amount: 200},
	}, resp.Msg.Reimbursements)
	assert.Zero(t, testutil.ToFloat64(env.metrics.IntegrityFailures))
}

func TestListBalances_SettledByReimbursement(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, "Flat", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	env.addExpense(t, group.Id, newExpenseForm("Rent", 2000, alice, alice, bob))
	payback := newExpenseForm("Payback", 1000, bob, alice)
	payback.IsReimbursement = true
	payback.Category = 1
	env.addExpense(t, group.Id, payback)

	resp, err := env.balances.ListBalances(context.Background(), connect.NewRequest(&pb.ListBalancesRequest{
		GroupId: group.Id,
	}))
	require.NoError(t, err)
	assert.True(t, resp.Msg.Balanced)
	assert.Empty(t, resp.Msg.Reimbursements)
	assert.Equal(t, int64(0), resp.Msg.Balances[alice].Total)
	assert.Equal(t, int64(0), resp.Msg.Balances[bob].Total)
}

func TestListBalances_CacheInvalidatedByWrites(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id
	req := func() *connect.Request[pb.ListBalancesRequest] {
		return connect.NewRequest(&pb.ListBalancesRequest{GroupId: group.Id})
	}

	expenseID := env.addExpense(t, group.Id, newExpenseForm("Lunch", 1000, alice, alice, bob))

	first, err := env.balances.ListBalances(ctx, req())
	require.NoError(t, err)
	assert.Equal(t, int64(500), first.Msg.Balances[alice].Total)

	_, err = env.balances.ListBalances(ctx, req())
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.BalanceCacheHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.BalanceCacheMisses))

	_, err = env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
		GroupId:           group.Id,
		ExpenseId:         expenseID,
		ExpenseFormValues: newExpenseForm("Lunch", 3000, alice, alice, bob),
	}))
	require.NoError(t, err)

	updated, err := env.balances.ListBalances(ctx, req())
	require.NoError(t, err)
	assert.Equal(t, int64(1500), updated.Msg.Balances[alice].Total)

	_, err = env.expenses.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: expenseID,
	}))
	require.NoError(t, err)

	deleted, err := env.balances.ListBalances(ctx, req())
	require.NoError(t, err)
	assert.Equal(t, int64(0), deleted.Msg.Balances[alice].Total)
	assert.Equal(t, 3.0, testutil.ToFloat64(env.metrics.BalanceCacheMisses))
}

func TestListBalances_CorruptExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	// Written directly to the store, bypassing validation.
	_, err := env.store.CreateExpense(ctx, &models.Expense{
		GroupID:     group.Id,
		Title:       "Broken",
		ExpenseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:      1000,
		PaidBy:      alice,
		SplitMode:   models.SplitModeByAmount,
		PaidFor: []models.ExpenseShare{
			{ParticipantID: alice, Shares: 100},
			{ParticipantID: bob, Shares: 100},
		},
	})
	require.NoError(t, err)

	_, err = env.balances.ListBalances(ctx, connect.NewRequest(&pb.ListBalancesRequest{GroupId: group.Id}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeDataLoss, connect.CodeOf(err))

	_, err = env.balances.GetGroupStats(ctx, connect.NewRequest(&pb.GetGroupStatsRequest{
		GroupId:       group.Id,
		ParticipantId: bob,
	}))
	assert.Equal(t, connect.CodeDataLoss, connect.CodeOf(err))
}

func TestListBalances_Overflow(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	// Each expense fits in an int64 but their sum does not.
	for i := 0; i < 2; i++ {
		_, err := env.store.CreateExpense(ctx, &models.Expense{
			GroupID:     group.Id,
			Title:       "Imported",
			ExpenseDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Amount:      5_000_000_000_000_000_000,
			PaidBy:      alice,
			SplitMode:   models.SplitModeEvenly,
			PaidFor:     []models.ExpenseShare{{ParticipantID: bob, Shares: 1}},
		})
		require.NoError(t, err)
	}

	_, err := env.balances.ListBalances(ctx, connect.NewRequest(&pb.ListBalancesRequest{GroupId: group.Id}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeDataLoss, connect.CodeOf(err))

	_, err = env.balances.GetGroupStats(ctx, connect.NewRequest(&pb.GetGroupStatsRequest{GroupId: group.Id}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeDataLoss, connect.CodeOf(err))
}

func TestListBalances_NotFound(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.balances.ListBalances(context.Background(), connect.NewRequest(&pb.ListBalancesRequest{
		GroupId: "missing",
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestGetGroupStats(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	env.addExpense(t, group.Id, newExpenseForm("Dinner", 3000, alice, alice, bob))
	env.addExpense(t, group.Id, newExpenseForm("Taxi", 1000, bob, bob))
	payback := newExpenseForm("Payback", 1500, bob, alice)
	payback.IsReimbursement = true
	env.addExpense(t, group.Id, payback)

	t.Run("group only", func(t *testing.T) {
		resp, err := env.balances.GetGroupStats(ctx, connect.NewRequest(&pb.GetGroupStatsRequest{GroupId: group.Id}))
		require.NoError(t, err)
		assert.Equal(t, int64(4000), resp.Msg.TotalGroupSpending)
		assert.Nil(t, resp.Msg.ParticipantPaid)
		assert.Nil(t, resp.Msg.ParticipantShare)
	})

	t.Run("with participant", func(t *testing.T) {
		resp, err := env.balances.GetGroupStats(ctx, connect.NewRequest(&pb.GetGroupStatsRequest{
			GroupId:       group.Id,
			ParticipantId: bob,
		}))
		require.NoError(t, err)
		assert.Equal(t, int64(4000), resp.Msg.TotalGroupSpending)
		require.NotNil(t, resp.Msg.ParticipantPaid)
		require.NotNil(t, resp.Msg.ParticipantShare)
		assert.Equal(t, int64(1000), *resp.Msg.ParticipantPaid)
		assert.Equal(t, int64(2500), *resp.Msg.ParticipantShare)
	})

	t.Run("unknown participant", func(t *testing.T) {
		_, err := env.balances.GetGroupStats(ctx, connect.NewRequest(&pb.GetGroupStatsRequest{
			GroupId:       group.Id,
			ParticipantId: "stranger",
		}))
		assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	})
}

func TestListCategories(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.categories.ListCategories(context.Background(), connect.NewRequest(&pb.ListCategoriesRequest{}))
	require.NoError(t, err)
	require.NotEmpty(t, resp.Msg.Categories)
	assertProtoEqual(t, &pb.Category{Id: 0, Grouping: "Uncategorized", Name: "General"}, resp.Msg.Categories[0])
	assertProtoEqual(t, &pb.Category{Id: 1, Grouping: "Uncategorized", Name: "Payment"}, resp.Msg.Categories[1])

	for i := 1; i < len(resp.Msg.Categories); i++ {
		assert.Less(t, resp.Msg.Categories[i-1].Id, resp.Msg.Categories[i].Id)
	}
}
