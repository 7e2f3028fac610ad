package service

import (
	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/models"
	pb "github.com/mmynk/groupledger/pkg/proto"
)

func groupToAPI(g *models.Group) *pb.Group {
	participants := make([]*pb.Participant, len(g.Participants))
	for i, p := range g.Participants {
		participants[i] = &pb.Participant{Id: p.ID, Name: p.Name}
	}
	return &pb.Group{
		Id:           g.ID,
		Name:         g.Name,
		Currency:     g.Currency,
		Information:  g.Information,
		Participants: participants,
		CreatedAt:    g.CreatedAt,
	}
}

// expenseToAPI converts e; owed may be nil when the breakdown is not needed.
func expenseToAPI(e *models.Expense, owed []calculator.OwedShare) *pb.Expense {
	paidFor := make([]*pb.ExpenseShare, len(e.PaidFor))
	for i, pf := range e.PaidFor {
		paidFor[i] = &pb.ExpenseShare{ParticipantId: pf.ParticipantID, Shares: pf.Shares}
	}

	var owedShares []*pb.OwedShare
	if owed != nil {
		owedShares = make([]*pb.OwedShare, len(owed))
		for i, o := range owed {
			owedShares[i] = &pb.OwedShare{ParticipantId: o.ParticipantID, Amount: o.Amount}
		}
	}

	return &pb.Expense{
		Id:              e.ID,
		GroupId:         e.GroupID,
		Title:           e.Title,
		ExpenseDate:     e.ExpenseDate.Format(models.DateLayout),
		Amount:          e.Amount,
		PaidBy:          e.PaidBy,
		SplitMode:       string(e.SplitMode),
		PaidFor:         paidFor,
		Owed:            owedShares,
		IsReimbursement: e.IsReimbursement,
		Notes:           e.Notes,
		CategoryId:      e.CategoryID,
		CreatedAt:       e.CreatedAt,
	}
}

func activityToAPI(a *models.Activity) *pb.Activity {
	return &pb.Activity{
		Id:           a.ID,
		GroupId:      a.GroupID,
		ActivityType: string(a.Type),
		ExpenseId:    a.ExpenseID,
		Data:         a.Data,
		Time:         a.Time,
	}
}

func balancesToAPI(b *GroupBalances) *pb.ListBalancesResponse {
	balances := make(map[string]*pb.Balance, len(b.Balances))
	for id, bal := range b.Balances {
		balances[id] = &pb.Balance{Paid: bal.Paid, Owed: bal.Owed, Total: bal.Total}
	}
	reimbursements := make([]*pb.Reimbursement, len(b.Plan.Reimbursements))
	for i, r := range b.Plan.Reimbursements {
		reimbursements[i] = &pb.Reimbursement{From: r.From, To: r.To, Amount: r.Amount}
	}
	return &pb.ListBalancesResponse{
		Balances:       balances,
		Reimbursements: reimbursements,
		Balanced:       b.Plan.Balanced(),
	}
}

func sharesFromModel(e *models.Expense) []calculator.Share {
	shares := make([]calculator.Share, len(e.PaidFor))
	for i, pf := range e.PaidFor {
		shares[i] = calculator.Share{ParticipantID: pf.ParticipantID, Value: pf.Shares}
	}
	return shares
}
