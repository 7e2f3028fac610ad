package models

// Group represents a set of people sharing expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski trip").
	Name string

	// Currency is the symbol shown next to amounts (e.g., "$", "EUR").
	Currency string

	// Information is free text shared with the group participants.
	Information string

	// Participants are the members of the group in display order.
	Participants []Participant

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Participant is a member of a group.
type Participant struct {
	ID      string
	GroupID string
	Name    string
}

// ParticipantIDs returns the IDs of the group participants in display order.
func (g *Group) ParticipantIDs() []string {
	ids := make([]string, len(g.Participants))
	for i, p := range g.Participants {
		ids[i] = p.ID
	}
	return ids
}

// HasParticipant reports whether id belongs to one of the group participants.
func (g *Group) HasParticipant(id string) bool {
	for _, p := range g.Participants {
		if p.ID == id {
			return true
		}
	}
	return false
}
