package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/metrics"
	"github.com/mmynk/groupledger/internal/service"
	"github.com/mmynk/groupledger/internal/storage/sqlite"
	pb "github.com/mmynk/groupledger/pkg/proto"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

func setupRouter(t *testing.T, rate string) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "router.db"))
	require.NoError(t, err)

	m := metrics.New()
	core := service.NewCore(store, service.NewBalanceCache(16, time.Minute, m), events.NopPublisher{}, m)
	handler, err := NewRouter(core, auth.NewShareTokenManager("test-secret", time.Hour), m, Options{
		CORSOrigin: "*",
		RateLimit:  rate,
	})
	require.NoError(t, err)

	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestRouter_Healthz(t *testing.T) {
	server := setupRouter(t, "100-M")

	resp, body := get(t, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRouter_InvalidRateLimit(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "router.db"))
	require.NoError(t, err)
	defer store.Close()

	m := metrics.New()
	core := service.NewCore(store, service.NewBalanceCache(16, time.Minute, m), nil, m)
	_, err = NewRouter(core, auth.NewShareTokenManager("test-secret", time.Hour), m, Options{RateLimit: "lots"})
	assert.Error(t, err)
}

func TestRouter_RPCAndExport(t *testing.T) {
	server := setupRouter(t, "100-M")
	ctx := context.Background()

	groups := protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL)
	expenses := protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL)

	created, err := groups.CreateGroup(ctx, connect.NewRequest(&pb.CreateGroupRequest{
		GroupFormValues: &pb.GroupFormValues{
			Name:         "Road Trip",
			Currency:     "$",
			Participants: []*pb.ParticipantFormValues{{Name: "Alice"}, {Name: "Bob"}},
		},
	}))
	require.NoError(t, err)
	group := created.Msg.Group
	alice, bob := group.Participants[0].Id, group.Participants[1].Id

	_, err = expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId: group.Id,
		ExpenseFormValues: &pb.ExpenseFormValues{
			ExpenseDate: "2024-03-02",
			Title:       "Gas",
			Amount:      4501,
			PaidBy:      alice,
			PaidFor:     []*pb.PaidForFormValues{{Participant: alice, Shares: 1}, {Participant: bob, Shares: 1}},
			SplitMode:   "EVENLY",
		},
	}))
	require.NoError(t, err)

	resp, body := get(t, server.URL+"/groups/"+group.Id+"/export.csv")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimSpace(body), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ",Alice,Bob"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-02,Gas,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ",22.51,22.50"), lines[1])

	resp, _ = get(t, server.URL+"/groups/missing/export.csv")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = get(t, server.URL+"/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "ledger_rpc_requests_total")
	assert.Contains(t, body, `procedure="/ledger.v1.GroupService/CreateGroup"`)
}

func TestRouter_RateLimit(t *testing.T) {
	server := setupRouter(t, "2-M")

	for i := 0; i < 2; i++ {
		resp, _ := get(t, server.URL+"/groups/missing/export.csv")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	}
	resp, _ := get(t, server.URL+"/groups/missing/export.csv")
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	// Health checks are not limited.
	resp, _ = get(t, server.URL+"/healthz")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
