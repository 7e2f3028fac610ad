// Package apperrors defines the error categories shared by the calculator,
// the storage layer and the RPC services.
package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks,
// e.g. an empty participant set or a BY_AMOUNT sum mismatch.
var ErrValidation = errors.New("validation error")

// ErrDataIntegrity indicates that stored data is internally inconsistent,
// e.g. an expense references a participant outside its group.
var ErrDataIntegrity = errors.New("data integrity error")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrConflict indicates that an operation is not allowed in the current state,
// e.g. removing a participant who still has expenses.
var ErrConflict = errors.New("conflict")
