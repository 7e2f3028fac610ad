package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/calculator"
	pb "github.com/mmynk/groupledger/pkg/proto"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

// BalanceService implements the Connect BalanceService
type BalanceService struct {
	protoconnect.UnimplementedBalanceServiceHandler
	*Core
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(core *Core) *BalanceService {
	return &BalanceService{Core: core}
}

// ListBalances returns every participant's balance and the reimbursements
// that settle the group.
func (s *BalanceService) ListBalances(ctx context.Context, req *connect.Request[pb.ListBalancesRequest]) (*connect.Response[pb.ListBalancesResponse], error) {
	slog.Info("ListBalances request received", "group_id", req.Msg.GroupId)

	balances, err := s.groupBalances(ctx, req.Msg.GroupId)
	if err != nil {
		slog.Error("ListBalances failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}

	slog.Info("ListBalances successful",
		"group_id", req.Msg.GroupId,
		"participants", len(balances.Balances),
		"reimbursements", len(balances.Plan.Reimbursements),
	)

	return connect.NewResponse(balancesToAPI(balances)), nil
}

// GetGroupStats returns the group's total spending and, when a participant
// is given, what that participant paid and consumed.
func (s *BalanceService) GetGroupStats(ctx context.Context, req *connect.Request[pb.GetGroupStatsRequest]) (*connect.Response[pb.GetGroupStatsResponse], error) {
	slog.Info("GetGroupStats request received", "group_id", req.Msg.GroupId, "participant_id", req.Msg.ParticipantId)

	ledger, err := s.store.GetGroupLedger(ctx, req.Msg.GroupId)
	if err != nil {
		return nil, connectError(err)
	}

	participantID := req.Msg.ParticipantId
	if participantID != "" && !ledger.Group.HasParticipant(participantID) {
		return nil, connectError(fmt.Errorf("%w: participant %q is not a participant of the group",
			apperrors.ErrValidation, participantID))
	}

	stats, err := calculator.CalculateStats(calculator.ExpensesFromModels(ledger.Expenses), participantID)
	if err != nil {
		slog.Error("GetGroupStats failed", "group_id", req.Msg.GroupId, "error", err)
		return nil, connectError(err)
	}

	resp := &pb.GetGroupStatsResponse{TotalGroupSpending: stats.TotalGroupSpending}
	if participantID != "" {
		resp.ParticipantPaid = &stats.ParticipantPaid
		resp.ParticipantShare = &stats.ParticipantShare
	}
	return connect.NewResponse(resp), nil
}
