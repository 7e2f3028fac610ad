package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ulule/limiter/v3"
	limiterstdlib "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit limits requests per client IP using an in-memory store.
// rate uses the limiter format, e.g. "300-M" for 300 requests per minute.
func RateLimit(rate string) (func(http.Handler) http.Handler, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}
	ipLimiter := limiter.New(memory.NewStore(), parsed)

	mw := limiterstdlib.NewMiddleware(ipLimiter,
		limiterstdlib.WithLimitReachedHandler(func(w http.ResponseWriter, r *http.Request) {
			slog.Warn("Rate limit exceeded",
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path,
				"limit", parsed.Limit,
			)
			http.Error(w, "Too many requests. Please try again later.", http.StatusTooManyRequests)
		}),
		limiterstdlib.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("Failed to get rate limit context", "remote_addr", r.RemoteAddr, "error", err)
			http.Error(w, "Internal server error during rate limit check", http.StatusInternalServerError)
		}),
	)
	return mw.Handler, nil
}
