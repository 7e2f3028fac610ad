package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// with the group and expense it targets. Rejected input is logged as a
// warning; ledger integrity failures and internal errors as errors.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			attrs := requestAttrs(ctx, req)

			resp, err := next(ctx, req)

			attrs = append(attrs, slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			if err == nil {
				slog.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, slog.String("code", code.String()))
			var connectErr *connect.Error
			if errors.As(err, &connectErr) {
				attrs = append(attrs, slog.String("error", connectErr.Message()))
			} else {
				attrs = append(attrs, slog.Any("error", err))
			}
			slog.LogAttrs(ctx, errorLevel(code), "RPC error", attrs...)
			return resp, err
		}
	}
}

func requestAttrs(ctx context.Context, req connect.AnyRequest) []slog.Attr {
	attrs := []slog.Attr{slog.String("procedure", req.Spec().Procedure)}
	if id := chimiddleware.GetReqID(ctx); id != "" {
		attrs = append(attrs, slog.String("request_id", id))
	}
	if m, ok := req.Any().(interface{ GetGroupId() string }); ok && m.GetGroupId() != "" {
		attrs = append(attrs, slog.String("group_id", m.GetGroupId()))
	}
	if m, ok := req.Any().(interface{ GetExpenseId() string }); ok && m.GetExpenseId() != "" {
		attrs = append(attrs, slog.String("expense_id", m.GetExpenseId()))
	}
	return attrs
}

func errorLevel(code connect.Code) slog.Level {
	switch code {
	case connect.CodeInvalidArgument, connect.CodeNotFound, connect.CodeFailedPrecondition,
		connect.CodeUnauthenticated, connect.CodeCanceled, connect.CodeResourceExhausted:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
