package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/mmynk/groupledger/internal/auth"
	"github.com/mmynk/groupledger/internal/events"
	"github.com/mmynk/groupledger/internal/metrics"
	"github.com/mmynk/groupledger/internal/storage/sqlite"
	pb "github.com/mmynk/groupledger/pkg/proto"
	"github.com/mmynk/groupledger/pkg/proto/protoconnect"
)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type testEnv struct {
	store     *sqlite.SQLiteStore
	metrics   *metrics.Metrics
	publisher *recordingPublisher

	groups     protoconnect.GroupServiceClient
	expenses   protoconnect.ExpenseServiceClient
	balances   protoconnect.BalanceServiceClient
	categories protoconnect.CategoryServiceClient
}

// setupTestServer creates a test server with every service backed by a
// temp-file SQLite store.
func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	m := metrics.New()
	publisher := &recordingPublisher{}
	core := NewCore(store, NewBalanceCache(16, time.Minute, m), publisher, m)
	shareTokens := auth.NewShareTokenManager("test-secret", time.Hour)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(core, shareTokens)))
	mux.Handle(protoconnect.NewExpenseServiceHandler(NewExpenseService(core)))
	mux.Handle(protoconnect.NewBalanceServiceHandler(NewBalanceService(core)))
	mux.Handle(protoconnect.NewCategoryServiceHandler(NewCategoryService(core)))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testEnv{
		store:      store,
		metrics:    m,
		publisher:  publisher,
		groups:     protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		expenses:   protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		balances:   protoconnect.NewBalanceServiceClient(http.DefaultClient, server.URL),
		categories: protoconnect.NewCategoryServiceClient(http.DefaultClient, server.URL),
	}
}

func assertProtoEqual(t *testing.T, want, got proto.Message) {
	t.Helper()
	assert.True(t, proto.Equal(want, got), "want %v, got %v", want, got)
}

func assertProtoSlice[T proto.Message](t *testing.T, want, got []T) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assertProtoEqual(t, want[i], got[i])
	}
}

func newGroupForm(name string, participants ...string) *pb.GroupFormValues {
	form := &pb.GroupFormValues{Name: name, Currency: "$"}
	for _, p := range participants {
		form.Participants = append(form.Participants, &pb.ParticipantFormValues{Name: p})
	}
	return form
}

func (e *testEnv) createGroup(t *testing.T, name string, participants ...string) *pb.Group {
	t.Helper()
	resp, err := e.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
		GroupFormValues: newGroupForm(name, participants...),
	}))
	require.NoError(t, err)
	return resp.Msg.Group
}

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)

	group := env.createGroup(t, "Roommates", "Alice", "Bob", "Charlie")

	assert.NotEmpty(t, group.Id)
	assert.Equal(t, "Roommates", group.Name)
	assert.Equal(t, "$", group.Currency)
	require.Len(t, group.Participants, 3)
	assert.Equal(t, "Alice", group.Participants[0].Name)
	assert.NotEmpty(t, group.Participants[0].Id)
	assert.NotZero(t, group.CreatedAt)
}

func TestCreateGroup_Validation(t *testing.T) {
	env := setupTestServer(t)

	tests := []struct {
		name string
		form *pb.GroupFormValues
	}{
		{"name too short", newGroupForm("A", "Alice")},
		{"name too long", newGroupForm("This group name is definitely longer than fifty chars", "Alice")},
		{"no participants", newGroupForm("Trip")},
		{"duplicate participant names", newGroupForm("Trip", "Alice", "Alice")},
		{"blank participant name", newGroupForm("Trip", "Alice", "   ")},
		{"missing currency", &pb.GroupFormValues{Name: "Trip", Participants: []*pb.ParticipantFormValues{{Name: "Alice"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.groups.CreateGroup(context.Background(), connect.NewRequest(&pb.CreateGroupRequest{
				GroupFormValues: tt.form,
			}))
			require.Error(t, err)
			assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
		})
	}
}

func TestGetGroup(t *testing.T) {
	env := setupTestServer(t)
	created := env.createGroup(t, "Work Lunch", "Diana", "Eve")

	resp, err := env.groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{
		GroupId: created.Id,
	}))
	require.NoError(t, err)
	assertProtoEqual(t, created, resp.Msg.Group)
}

func TestGetGroup_NotFound(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.groups.GetGroup(context.Background(), connect.NewRequest(&pb.GetGroupRequest{
		GroupId: "non-existent-id",
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestUpdateGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob", "Carol")

	form := &pb.GroupFormValues{
		Name:     "Ski Trip",
		Currency: "EUR",
		Participants: []*pb.ParticipantFormValues{
			{Id: group.Participants[0].Id, Name: "Alicia"},
			{Id: group.Participants[1].Id, Name: "Bob"},
			{Name: "Dave"},
		},
	}
	resp, err := env.groups.UpdateGroup(ctx, connect.NewRequest(&pb.UpdateGroupRequest{
		GroupId:         group.Id,
		GroupFormValues: form,
	}))
	require.NoError(t, err)

	updated := resp.Msg.Group
	assert.Equal(t, "Ski Trip", updated.Name)
	assert.Equal(t, "EUR", updated.Currency)
	assert.Equal(t, group.CreatedAt, updated.CreatedAt)
	require.Len(t, updated.Participants, 3)
	assert.Equal(t, group.Participants[0].Id, updated.Participants[0].Id)
	assert.Equal(t, "Alicia", updated.Participants[0].Name)
	assert.Equal(t, "Dave", updated.Participants[2].Name)

	assert.Equal(t, []string{"UPDATE_GROUP"}, env.publisher.types())
}

func TestUpdateGroup_RemoveParticipantWithExpenses(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob", "Carol")
	alice, bob, carol := group.Participants[0], group.Participants[1], group.Participants[2]

	_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           group.Id,
		ExpenseFormValues: newExpenseForm("Dinner", 1000, alice.Id, alice.Id, bob.Id),
	}))
	require.NoError(t, err)

	details, err := env.groups.GetGroupDetails(ctx, connect.NewRequest(&pb.GetGroupDetailsRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{alice.Id, bob.Id}, details.Msg.ParticipantsWithExpenses)

	// Bob has expenses and cannot be removed.
	_, err = env.groups.UpdateGroup(ctx, connect.NewRequest(&pb.UpdateGroupRequest{
		GroupId: group.Id,
		GroupFormValues: &pb.GroupFormValues{
			Name:         "Trip",
			Currency:     "$",
			Participants: []*pb.ParticipantFormValues{{Id: alice.Id, Name: alice.Name}, {Id: carol.Id, Name: carol.Name}},
		},
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	// Carol has none and can.
	resp, err := env.groups.UpdateGroup(ctx, connect.NewRequest(&pb.UpdateGroupRequest{
		GroupId: group.Id,
		GroupFormValues: &pb.GroupFormValues{
			Name:         "Trip",
			Currency:     "$",
			Participants: []*pb.ParticipantFormValues{{Id: alice.Id, Name: alice.Name}, {Id: bob.Id, Name: bob.Name}},
		},
	}))
	require.NoError(t, err)
	assert.Len(t, resp.Msg.Group.Participants, 2)
}

func TestUpdateGroup_NotFound(t *testing.T) {
	env := setupTestServer(t)

	_, err := env.groups.UpdateGroup(context.Background(), connect.NewRequest(&pb.UpdateGroupRequest{
		GroupId:         "missing",
		GroupFormValues: newGroupForm("Trip", "Alice"),
	}))
	require.Error(t, err)
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestListGroups(t *testing.T) {
	env := setupTestServer(t)
	g1 := env.createGroup(t, "Group 1", "Alice")
	g2 := env.createGroup(t, "Group 2", "Bob")
	g3 := env.createGroup(t, "Group 3", "Carol")

	resp, err := env.groups.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{
		GroupIds: []string{g3.Id, "unknown", g1.Id, g2.Id},
	}))
	require.NoError(t, err)

	names := make([]string, len(resp.Msg.Groups))
	for i, g := range resp.Msg.Groups {
		names[i] = g.Name
	}
	assert.Equal(t, []string{"Group 3", "Group 1", "Group 2"}, names)
}

func TestListGroups_Empty(t *testing.T) {
	env := setupTestServer(t)

	resp, err := env.groups.ListGroups(context.Background(), connect.NewRequest(&pb.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, resp.Msg.Groups)
}

func TestDeleteGroup(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "To Delete", "Alice", "Bob")

	_, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           group.Id,
		ExpenseFormValues: newExpenseForm("Taxi", 500, group.Participants[0].Id, group.Participants[1].Id),
	}))
	require.NoError(t, err)

	_, err = env.groups.DeleteGroup(ctx, connect.NewRequest(&pb.DeleteGroupRequest{GroupId: group.Id}))
	require.NoError(t, err)

	_, err = env.groups.GetGroup(ctx, connect.NewRequest(&pb.GetGroupRequest{GroupId: group.Id}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	_, err = env.groups.DeleteGroup(ctx, connect.NewRequest(&pb.DeleteGroupRequest{GroupId: group.Id}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestListActivities(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Trip", "Alice", "Bob")
	alice := group.Participants[0].Id

	created, err := env.expenses.CreateExpense(ctx, connect.NewRequest(&pb.CreateExpenseRequest{
		GroupId:           group.Id,
		ExpenseFormValues: newExpenseForm("Museum", 2000, alice, alice),
	}))
	require.NoError(t, err)
	_, err = env.expenses.UpdateExpense(ctx, connect.NewRequest(&pb.UpdateExpenseRequest{
		GroupId:           group.Id,
		ExpenseId:         created.Msg.ExpenseId,
		ExpenseFormValues: newExpenseForm("Museum tickets", 2000, alice, alice),
	}))
	require.NoError(t, err)
	_, err = env.expenses.DeleteExpense(ctx, connect.NewRequest(&pb.DeleteExpenseRequest{
		GroupId:   group.Id,
		ExpenseId: created.Msg.ExpenseId,
	}))
	require.NoError(t, err)

	first, err := env.groups.ListActivities(ctx, connect.NewRequest(&pb.ListActivitiesRequest{
		GroupId: group.Id,
		Limit:   2,
	}))
	require.NoError(t, err)
	require.Len(t, first.Msg.Activities, 2)
	assert.True(t, first.Msg.HasMore)
	assert.Equal(t, "DELETE_EXPENSE", first.Msg.Activities[0].ActivityType)
	assert.Equal(t, "UPDATE_EXPENSE", first.Msg.Activities[1].ActivityType)
	assert.Equal(t, "Museum tickets", first.Msg.Activities[1].Data)

	second, err := env.groups.ListActivities(ctx, connect.NewRequest(&pb.ListActivitiesRequest{
		GroupId: group.Id,
		Limit:   2,
		Cursor:  first.Msg.NextCursor,
	}))
	require.NoError(t, err)
	require.Len(t, second.Msg.Activities, 1)
	assert.False(t, second.Msg.HasMore)
	assert.Empty(t, second.Msg.NextCursor)
	assert.Equal(t, "CREATE_EXPENSE", second.Msg.Activities[0].ActivityType)

	assert.Equal(t, []string{"CREATE_EXPENSE", "UPDATE_EXPENSE", "DELETE_EXPENSE"}, env.publisher.types())
}

func TestShareLink(t *testing.T) {
	env := setupTestServer(t)
	ctx := context.Background()
	group := env.createGroup(t, "Shared", "Alice", "Bob")

	link, err := env.groups.CreateShareLink(ctx, connect.NewRequest(&pb.CreateShareLinkRequest{GroupId: group.Id}))
	require.NoError(t, err)
	assert.NotEmpty(t, link.Msg.Token)
	assert.Greater(t, link.Msg.ExpiresAt, time.Now().Unix())

	resolved, err := env.groups.ResolveShareLink(ctx, connect.NewRequest(&pb.ResolveShareLinkRequest{Token: link.Msg.Token}))
	require.NoError(t, err)
	assert.Equal(t, group.Id, resolved.Msg.Group.Id)

	_, err = env.groups.ResolveShareLink(ctx, connect.NewRequest(&pb.ResolveShareLinkRequest{Token: "garbage"}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	_, err = env.groups.CreateShareLink(ctx, connect.NewRequest(&pb.CreateShareLinkRequest{GroupId: "missing"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}
