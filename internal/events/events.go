// Package events publishes group activity to downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/mmynk/groupledger/internal/models"
)

// Event is the message published for every recorded activity.
type Event struct {
	ActivityID string    `json:"activityId"`
	GroupID    string    `json:"groupId"`
	Type       string    `json:"type"`
	ExpenseID  string    `json:"expenseId,omitempty"`
	Data       string    `json:"data,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// FromActivity builds the event describing a.
func FromActivity(a *models.Activity) Event {
	return Event{
		ActivityID: a.ID,
		GroupID:    a.GroupID,
		Type:       string(a.Type),
		ExpenseID:  a.ExpenseID,
		Data:       a.Data,
		Timestamp:  time.Unix(0, a.Time).UTC(),
	}
}

// RoutingKey is the topic key of the event, e.g. "group.create_expense".
func (e Event) RoutingKey() string {
	return "group." + strings.ToLower(e.Type)
}

// ToJSON converts the event to JSON bytes.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
