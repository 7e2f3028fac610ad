// Package server assembles the HTTP routes of the ledger server.
package server

import (
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/metrics"
	"github.com/mmynk/groupledger/internal/middleware"
	"github.com/mmynk/groupledger/internal/service"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

const requestTimeout = 30 * time.Second

// Options configures the router.
type Options struct {
	CORSOrigin string
	RateLimit  string // limiter format, e.g. "300-M"
}

// NewRouter mounts the Connect services, the CSV export, health and metrics
// endpoints. RPC and export routes are rate limited per client IP.
func NewRouter(core *service.Core, shareTokens *auth.ShareTokenManager, m *metrics.Metrics, opts Options) (http.Handler, error) {
	rateLimit, err := middleware.RateLimit(opts.RateLimit)
	if err != nil {
		return nil, err
	}

	interceptors := connect.WithInterceptors(
		middleware.MetricsInterceptor(m),
		middleware.LoggingInterceptor(),
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.CORS(opts.CORSOrigin))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Group(func(r chi.Router) {
		r.Use(rateLimit)

		groupPath, groupHandler := protoconnect.NewGroupServiceHandler(service.NewGroupService(core, shareTokens), interceptors)
		r.Handle(groupPath+"*", groupHandler)

		expensePath, expenseHandler := protoconnect.NewExpenseServiceHandler(service.NewExpenseService(core), interceptors)
		r.Handle(expensePath+"*", expenseHandler)

		balancePath, balanceHandler := protoconnect.NewBalanceServiceHandler(service.NewBalanceService(core), interceptors)
		r.Handle(balancePath+"*", balanceHandler)

		categoryPath, categoryHandler := protoconnect.NewCategoryServiceHandler(service.NewCategoryService(core), interceptors)
		r.Handle(categoryPath+"*", categoryHandler)

		r.Method(http.MethodGet, "/groups/{groupID}/export.csv", service.NewExportHandler(core))
	})

	return r, nil
}
