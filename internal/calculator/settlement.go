package calculator

import "sort"

// Reimbursement is a suggested payment from a debtor to a creditor.
type Reimbursement struct {
	From   string // Person who owes
	To     string // Person who is owed
	Amount int64
}

// Plan is the outcome of PlanReimbursements.
type Plan struct {
	Reimbursements []Reimbursement

	// Imbalance is the sum of the input totals. It is zero for consistent
	// input; otherwise the plan could not settle everybody.
	Imbalance int64
}

// Balanced reports whether the plan settles every participant.
func (p Plan) Balanced() bool {
	return p.Imbalance == 0
}

type position struct {
	id     string
	amount int64 // always positive
}

// PlanReimbursements computes transfers that bring every total to zero.
//
// Greedy algorithm: the largest debtor pays the largest creditor
// min(debt, credit), the settled side drops out, and the next largest pair is
// selected. Ties are broken by participant ID so the result is deterministic.
// Every step settles at least one side, so the loop terminates even when the
// totals do not sum to zero; Plan.Imbalance then reports the difference.
func PlanReimbursements(balances map[string]Balance) Plan {
	var creditors, debtors []position
	for id, b := range balances {
		switch {
		case b.Total > 0:
			creditors = append(creditors, position{id: id, amount: b.Total})
		case b.Total < 0:
			debtors = append(debtors, position{id: id, amount: -b.Total})
		}
	}

	plan := Plan{Imbalance: sumTotals(balances)}
	for len(creditors) > 0 && len(debtors) > 0 {
		sortPositions(creditors)
		sortPositions(debtors)

		debtor, creditor := &debtors[0], &creditors[0]
		amount := min(debtor.amount, creditor.amount)
		plan.Reimbursements = append(plan.Reimbursements, Reimbursement{
			From:   debtor.id,
			To:     creditor.id,
			Amount: amount,
		})
		debtor.amount -= amount
		creditor.amount -= amount

		if debtor.amount == 0 {
			debtors = debtors[1:]
		}
		if creditor.amount == 0 {
			creditors = creditors[1:]
		}
	}
	return plan
}

// sortPositions orders by amount descending, then by ID ascending.
func sortPositions(ps []position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].amount != ps[j].amount {
			return ps[i].amount > ps[j].amount
		}
		return ps[i].id < ps[j].id
	})
}

// ApplyReimbursements returns the totals left after every reimbursement is paid.
func ApplyReimbursements(balances map[string]Balance, reimbursements []Reimbursement) map[string]int64 {
	totals := make(map[string]int64, len(balances))
	for id, b := range balances {
		totals[id] = b.Total
	}
	for _, r := range reimbursements {
		totals[r.From] += r.Amount
		totals[r.To] -= r.Amount
	}
	return totals
}
