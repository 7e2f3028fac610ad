package service

import (
	"context"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/groupledger/pkg/proto"
)

// newExpenseForm builds an evenly split expense dated 2024-01-15.
func newExpenseForm(title string, amount int64, paidBy string, paidFor ...string) *pb.ExpenseFormValues {
	form := &pb.ExpenseFormValues{
		ExpenseDate: "2024-01-15",
		Title:       title,
		Amount:      amount,
		PaidBy:      paidBy,
		SplitMode:   "EVENLY",
	}
	for _, id := range paidFor {
		form.PaidFor = append(form.PaidFor, &pb.PaidForFormValues{Participant: id, Shares: 1})
	}
	return form
}

func TestCreateExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Dinner Club", "Alice", "Bob", "Charlie")
	alice, bob, charlie := group.Participants[0].Id, group.Participants[1].Id, group.Participants[2].Id

	form := newExpenseForm("Pizza night", 1000, alice, alice, bob, charlie)
	form.Notes = "extra cheese"
	form.Category = 1
	created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           group.Id,
		ExpenseFormValues: form,
	}))
	require.NoError(t, err)
	require.NotEmpty(t, created.Msg.ExpenseId)

	resp, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: created.Msg.ExpenseId,
	}))
	require.NoError(t, err)

	expense := resp.Msg.Expense
	assert.Equal(t, created.Msg.ExpenseId, expense.Id)
	assert.Equal(t, group.Id, expense.GroupId)
	assert.Equal(t, "Pizza night", expense.Title)
	assert.Equal(t, "2024-01-15", expense.ExpenseDate)
	assert.Equal(t, int64(1000), expense.Amount)
	assert.Equal(t, alice, expense.PaidBy)
	assert.Equal(t, "EVENLY", expense.SplitMode)
	assert.Equal(t, "extra cheese", expense.Notes)
	assert.Equal(t, int64(1), expense.CategoryId)
	assert.NotZero(t, expense.CreatedAt)

	// The first participant absorbs the remainder cent.
	assertProtoSlice(t, []*pb.OwedShare{
		{ParticipantId: alice, Amount: 334},
		{ParticipantId: bob, Amount: 333},
		{ParticipantId: charlie, Amount: 333},
	}, expense.Owed)
}

func TestCreateExpense_SplitModes(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	tests := []struct {
		name   string
		mode   string
		shares [2]int64
		want   [2]int64
	}{
		{"by shares", "BY_SHARES", [2]int64{2, 1}, [2]int64{667, 333}},
		{"by percentage", "BY_PERCENTAGE", [2]int64{70, 30}, [2]int64{700, 300}},
		{"by amount", "BY_AMOUNT", [2]int64{250, 750}, [2]int64{250, 750}},
		{"zero share", "BY_SHARES", [2]int64{0, 1}, [2]int64{0, 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newExpenseForm("Hotel", 1000, alice)
			form.SplitMode = tt.mode
			form.PaidFor = []*pb.PaidForFormValues{
				{Participant: alice, Shares: tt.shares[0]},
				{Participant: bob, Shares: tt.shares[1]},
			}
			created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
				GroupId:           group.Id,
				ExpenseFormValues: form,
			}))
			require.NoError(t, err)

			resp, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{
				GroupId:   group.Id,
				ExpenseId: created.Msg.ExpenseId,
			}))
			require.NoError(t, err)
			require.Len(t, resp.Msg.Expense.Owed, 2)
			assert.Equal(t, tt.want[0], resp.Msg.Expense.Owed[0].Amount)
			assert.Equal(t, tt.want[1], resp.Msg.Expense.Owed[1].Amount)
		})
	}
}

func TestCreateExpense_Validation(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	other := env.createGroup(t, "Other", "Mallory")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id
	mallory := other.Participants[0].Id

	tests := []struct {
		name   string
		modify func(*pb.ExpenseFormValues)
	}{
		{"title too short", func(f *pb.ExpenseFormValues) { f.Title = "A" }},
		{"zero amount", func(f *pb.ExpenseFormValues) { f.Amount = 0 }},
		{"missing date", func(f *pb.ExpenseFormValues) { f.ExpenseDate = "" }},
		{"malformed date", func(f *pb.ExpenseFormValues) { f.ExpenseDate = "15/01/2024" }},
		{"payer outside group", func(f *pb.ExpenseFormValues) { f.PaidBy = mallory }},
		{"beneficiary outside group", func(f *pb.ExpenseFormValues) {
			f.PaidFor = append(f.PaidFor, &pb.PaidForFormValues{Participant: mallory, Shares: 1})
		}},
		{"no beneficiaries", func(f *pb.ExpenseFormValues) { f.PaidFor = nil }},
		{"duplicate beneficiary", func(f *pb.ExpenseFormValues) {
			f.PaidFor = append(f.PaidFor, &pb.PaidForFormValues{Participant: alice, Shares: 1})
		}},
		{"unknown category", func(f *pb.ExpenseFormValues) { f.Category = 9999 }},
		{"unknown split mode", func(f *pb.ExpenseFormValues) { f.SplitMode = "RANDOM" }},
		{"amounts do not add up", func(f *pb.ExpenseFormValues) {
			f.SplitMode = "BY_AMOUNT"
			f.PaidFor = []*pb.PaidForFormValues{{Participant: alice, Shares: 400}, {Participant: bob, Shares: 400}}
		}},
		{"all shares zero", func(f *pb.ExpenseFormValues) {
			f.SplitMode = "BY_SHARES"
			f.PaidFor = []*pb.PaidForFormValues{{Participant: alice, Shares: 0}, {Participant: bob, Shares: 0}}
		}},
		{"negative share", func(f *pb.ExpenseFormValues) {
			f.SplitMode = "BY_SHARES"
			f.PaidFor = []*pb.PaidForFormValues{{Participant: alice, Shares: -1}, {Participant: bob, Shares: 2}}
		}},
		{"amount above bound", func(f *pb.ExpenseFormValues) { f.Amount = maxAmount + 1 }},
		{"refund below bound", func(f *pb.ExpenseFormValues) { f.Amount = -(maxAmount + 1) }},
		{"share above bound", func(f *pb.ExpenseFormValues) {
			f.SplitMode = "BY_SHARES"
			f.PaidFor = []*pb.PaidForFormValues{{Participant: alice, Shares: maxAmount + 1}, {Participant: bob, Shares: 1}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := newExpenseForm("Groceries", 1000, alice, alice, bob)
			tt.modify(form)

			_, err := env.expenses.CreateExpense(context.Background(), connect.NewRequest(&pb.CreateExpenseRequest{
				GroupId:           group.Id,
				ExpenseFormValues: form,
			}))
			require.Error(t, err)
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}

	assert.Empty(t, env.publisher.types())
}

func TestCreateExpense_AmountBound(t *testing.T) {
	env := setupTestServer(t)
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	for _, amount := range []int64{maxAmount, -maxAmount} {
		_, err := env.expenses.CreateExpense(context.Background(), connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId:           group.Id,
			ExpenseFormValues: newExpenseForm("Apartment", amount, alice, alice, bob),
		}))
		require.NoError(t, err, "amount %d", amount)
	}
}

func TestCreateExpense_Refund(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob", "Carol")
	alice, bob, carol := group.Participants[0].Id, group.Participants[1].Id, group.Participants[2].Id

	created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           group.Id,
		ExpenseFormValues: newExpenseForm("Deposit back", -100, alice, alice, bob, carol),
	}))
	require.NoError(t, err)

	resp, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: created.Msg.ExpenseId,
	}))
	require.NoError(t, err)
	assertProtoSlice(t, []*pb.OwedShare{
		{ParticipantId: alice, Amount: -34},
		{ParticipantId: bob, Amount: -33},
		{ParticipantId: carol, Amount: -33},
	}, resp.Msg.Expense.Owed)
}

func TestCreateExpense_GroupNotFound(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.expenses.CreateExpense(context.Background(), connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           "missing",
		ExpenseFormValues: newExpenseForm("Groceries", 1000, "a", "a"),
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestGetExpense_NotFound(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice")
	other := env.createGroup(t, "Other", "Bob")

	created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           other.Id,
		ExpenseFormValues: newExpenseForm("Snacks", 300, other.Participants[0].Id, other.Participants[0].Id),
	}))
	require.NoError(t, err)

	tests := []struct {
		name      string
		expenseID string
	}{
		{"unknown expense", "missing"},
		{"expense of another group", created.Msg.ExpenseId},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{
				GroupId:   group.Id,
				ExpenseId: tt.expenseID,
			}))
			require.Error(t, err)
			assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
		})
	}
}

func TestUpdateExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           group.Id,
		ExpenseFormValues: newExpenseForm("Fuel", 6000, alice, alice, bob),
	}))
	require.NoError(t, err)

	form := newExpenseForm("Fuel and tolls", 8000, bob)
	form.SplitMode = "BY_AMOUNT"
	form.PaidFor = []*pb.PaidForFormValues{{Participant: bob, Shares: 5000}, {Participant: alice, Shares: 3000}}
	_, err = env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
		GroupId:           group.Id,
		ExpenseId:         created.Msg.ExpenseId,
		ExpenseFormValues: form,
	}))
	require.NoError(t, err)

	resp, err := env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: created.Msg.ExpenseId,
	}))
	require.NoError(t, err)
	expense := resp.Msg.Expense
	assert.Equal(t, "Fuel and tolls", expense.Title)
	assert.Equal(t, int64(8000), expense.Amount)
	assert.Equal(t, bob, expense.PaidBy)
	assertProtoSlice(t, []*pb.ExpenseShare{
		{ParticipantId: bob, Shares: 5000},
		{ParticipantId: alice, Shares: 3000},
	}, expense.PaidFor)

	_, err = env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
		GroupId:           group.Id,
		ExpenseId:         "missing",
		ExpenseFormValues: form,
	}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	form.Amount = 0
	_, err = env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
		GroupId:           group.Id,
		ExpenseId:         created.Msg.ExpenseId,
		ExpenseFormValues: form,
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestDeleteExpense(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice := group.Participants[0].Id

	created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           group.Id,
		ExpenseFormValues: newExpenseForm("Coffee", 450, alice, alice),
	}))
	require.NoError(t, err)

	_, err = env.expenses.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: created.Msg.ExpenseId,
	}))
	require.NoError(t, err)

	_, err = env.expenses.GetExpense(ctx, connect.NewRequest(&pb.GetExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: created.Msg.ExpenseId,
	}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = env.expenses.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: created.Msg.ExpenseId,
	}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestListExpenses_Pagination(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	const total = 25
	for i := 1; i <= total; i++ {
		form := newExpenseForm(fmt.Sprintf("Expense %02d", i), int64(i*100), alice, alice, bob)
		form.ExpenseDate = fmt.Sprintf("2024-01-%02d", i)
		_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
			GroupId:           group.Id,
			ExpenseFormValues: form,
		}))
		require.NoError(t, err)
	}

	var titles []string
	cursor := ""
	pages := 0
	for {
		resp, err := env.expenses.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{
			GroupId: group.Id,
			Limit:   10,
			Cursor:  cursor,
		}))
		require.NoError(t, err)
		pages++
		for _, e := range resp.Msg.Expenses {
			titles = append(titles, e.Title)
		}
		if !resp.Msg.HasMore {
			assert.Empty(t, resp.Msg.NextCursor)
			break
		}
		require.NotEmpty(t, resp.Msg.NextCursor)
		cursor = resp.Msg.NextCursor
	}

	assert.Equal(t, 3, pages)
	require.Len(t, titles, total)
	assert.Equal(t, "Expense 25", titles[0])
	assert.Equal(t, "Expense 16", titles[9])
	assert.Equal(t, "Expense 01", titles[total-1])
}

func TestListExpenses_Errors(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice")

	resp, err := env.expenses.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Expenses)
	assert.False(t, resp.Msg.HasMore)

	_, err = env.expenses.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{
		GroupId: group.Id,
		Cursor:  "not a cursor!",
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = env.expenses.ListExpenses(ctx, connect.NewRequest(&pb.ListExpensesRequest{GroupId: "missing"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
