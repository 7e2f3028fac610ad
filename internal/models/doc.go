// Package models defines the domain models persisted by the ledger.
//
// A Group owns its Participants and Expenses. Expenses reference
// participants by ID; the order of an expense's PaidFor entries is
// significant because it decides who absorbs rounding remainders.
//
// Balances and reimbursements are never stored. They are derived on read
// by the calculator package.
//
// All monetary amounts are int64 values in minor currency units (cents).
package models
