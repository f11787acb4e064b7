package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated    EventType = "ticket_created"
	EventTicketUpdated    EventType = "ticket_updated"
	EventTicketDeleted    EventType = "ticket_deleted"
	EventRegistryReplaced EventType = "registry_replaced"
)

// Event represents a domain event emitted by the ticket service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketUpsertedPayload accompanies create and update events.
type TicketUpsertedPayload struct {
	Status       string     `json:"status"`
	OpenedAt     time.Time  `json:"opened_at"`
	PendingSince *time.Time `json:"pending_since,omitempty"`
}

// TicketDeletedPayload accompanies delete events.
type TicketDeletedPayload struct {
	Remaining int `json:"remaining"`
}

// RegistryReplacedPayload accompanies registry replacement events.
type RegistryReplacedPayload struct {
	Labels []string `json:"labels"`
}
