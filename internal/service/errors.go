package service

import (
	"context"
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/groupledger/internal/apperrors"
	"github.com/mmynk/groupledger/internal/auth"
)

// connectError maps an application error to a Connect error code.
// ErrDataIntegrity is checked first because integrity errors may wrap the
// validation error of the stored expense that caused them.
func connectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, apperrors.ErrDataIntegrity):
		return connect.NewError(connect.CodeDataLoss, err)
	case errors.Is(err, apperrors.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, apperrors.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, apperrors.ErrConflict):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// dataIntegrity marks err, raised while reading stored data, as an integrity failure.
func dataIntegrity(expenseID string, err error) error {
	return fmt.Errorf("%w: expense %s: %w", apperrors.ErrDataIntegrity, expenseID, err)
}
