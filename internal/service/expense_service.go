package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/pagination"
	"github.com/mmynk/groupledger/internal/storage"
	pb "github.com/mmynk/groupledger/pkg/proto"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler
	*Core
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(core *Core) *ExpenseService {
	return &ExpenseService{Core: core}
}

// ListExpenses returns one page of a group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	slog.Debug("ListExpenses request received", "group_id", req.Msg.GroupId, "limit", req.Msg.Limit)

	query := storage.ExpenseQuery{
		GroupID: req.Msg.GroupId,
		Limit:   pagination.NormalizeLimit(req.Msg.Limit),
	}
	if req.Msg.Cursor != "" {
		cursor, err := pagination.DecodeExpenseCursor(req.Msg.Cursor)
		if err != nil {
			return nil, connectError(err)
		}
		query.After = &cursor
	}

	if _, err := s.store.GetGroup(ctx, req.Msg.GroupId); err != nil {
		return nil, connectError(err)
	}

	// Fetch one extra row to learn whether another page exists.
	pageSize := query.Limit
	query.Limit++
	expenses, err := s.store.ListExpenses(ctx, query)
	if err != nil {
		slog.Error("ListExpenses failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}

	resp := &pb.ListExpensesResponse{Expenses: []*pb.Expense{}}
	if len(expenses) > pageSize {
		expenses = expenses[:pageSize]
		last := expenses[len(expenses)-1]
		resp.HasMore = true
		resp.NextCursor = pagination.EncodeExpenseCursor(pagination.ExpenseCursor{
			ExpenseDate: last.ExpenseDate,
			CreatedAt:   last.CreatedAt,
			ID:          last.ID,
		})
	}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, expenseToAPI(e, nil))
	}

	return connect.NewResponse(resp), nil
}

// GetExpense retrieves an expense together with its resolved split.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[pb.GetExpenseRequest]) (*connect.Response[pb.GetExpenseResponse], error) {
	slog.Info("GetExpense request received", "group_id", req.Msg.GroupId, "expense_id", req.Msg.ExpenseId)

	expense, err := s.store.GetExpense(ctx, req.Msg.GroupId, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("GetExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, connectError(err)
	}

	owed, err := calculator.ResolveSplit(expense.Amount, expense.SplitMode, sharesFromModel(expense))
	if err != nil {
		slog.Error("Stored expense does not split", "expense_id", expense.ID, "error", err)
		return nil, connectError(dataIntegrity(expense.ID, err))
	}

	return connect.NewResponse(&pb.GetExpenseResponse{
		Expense: expenseToAPI(expense, owed),
	}), nil
}

// CreateExpense validates and records a new expense.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	form := req.Msg.GetExpenseFormValues()
	slog.Info("CreateExpense request received",
		"group_id", req.Msg.GroupId,
		"amount", form.GetAmount(),
		"split_mode", form.GetSplitMode(),
		"paid_for_count", len(form.GetPaidFor()),
	)

	unlock := s.locks.Lock(req.Msg.GroupId)
	defer unlock()

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError(err)
	}

	expense, err := expenseFromForm(ctx, s.store, group, form)
	if err != nil {
		slog.Warn("CreateExpense validation failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}

	activity, err := s.store.CreateExpense(ctx, expense)
	if err != nil {
		slog.Error("CreateExpense failed", "group_id", group.ID, "error", err)
		return nil, connectError(err)
	}
	s.afterWrite(ctx, group.ID, activity)

	slog.Info("Expense created", "group_id", group.ID, "expense_id", expense.ID)

	return connect.NewResponse(&pb.CreateExpenseResponse{ExpenseId: expense.ID}), nil
}

// UpdateExpense replaces an existing expense.
func (s *ExpenseService) UpdateExpense(ctx context.Context, req *connect.Request[pb.UpdateExpenseRequest]) (*connect.Response[pb.UpdateExpenseResponse], error) {
	slog.Info("UpdateExpense request received", "group_id", req.Msg.GroupId, "expense_id", req.Msg.ExpenseId)

	unlock := s.locks.Lock(req.Msg.GroupId)
	defer unlock()

	group, err := s.store.GetGroup(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError(err)
	}

	expense, err := expenseFromForm(ctx, s.store, group, req.Msg.GetExpenseFormValues())
	if err != nil {
		slog.Warn("UpdateExpense validation failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, connectError(err)
	}
	expense.ID = req.Msg.ExpenseId

	activity, err := s.store.UpdateExpense(ctx, expense)
	if err != nil {
		slog.Error("UpdateExpense failed", "expense_id", expense.ID, "error", err)
		return nil, connectError(err)
	}
	s.afterWrite(ctx, group.ID, activity)

	slog.Info("Expense updated", "group_id", group.ID, "expense_id", expense.ID)

	return connect.NewResponse(&pb.UpdateExpenseResponse{}), nil
}

// DeleteExpense removes an expense from its group.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "group_id", req.Msg.GroupId, "expense_id", req.Msg.ExpenseId)

	unlock := s.locks.Lock(req.Msg.GroupId)
	defer unlock()

	activity, err := s.store.DeleteExpense(ctx, req.Msg.GroupId, req.Msg.ExpenseId)
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseId, "error", err)
		return nil, connectError(err)
	}
	s.afterWrite(ctx, req.Msg.GroupId, activity)

	slog.Info("Expense deleted", "group_id", req.Msg.GroupId, "expense_id", req.Msg.ExpenseId)

	return connect.NewResponse(&pb.DeleteExpenseResponse{}), nil
}
