package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupledger/internal/models"
)

func TestFromActivity(t *testing.T) {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	event := FromActivity(&models.Activity{
		ID:        "a1",
		GroupID:   "g1",
		Type:      models.ActivityCreateExpense,
		ExpenseID: "e1",
		Data:      "Dinner",
		Time:      ts.UnixNano(),
	})

	assert.Equal(t, "group.create_expense", event.RoutingKey())
	assert.True(t, ts.Equal(event.Timestamp))

	body, err := event.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "g1", decoded["groupId"])
	assert.Equal(t, "CREATE_EXPENSE", decoded["type"])
	assert.Equal(t, "e1", decoded["expenseId"])
}

func TestNopPublisher(t *testing.T) {
	var p Publisher = NopPublisher{}
	assert.NoError(t, p.Publish(context.Background(), Event{}))
	assert.NoError(t, p.Close())
}
