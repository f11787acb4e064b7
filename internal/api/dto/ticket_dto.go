package dto

import "time"

// SubmitTicketRequest is the raw form payload; every field arrives as text
// and goes through the validator before touching the store.
type SubmitTicketRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	OpenedAt     string `json:"openedAt"`
	Description  string `json:"description"`
	PendingSince string `json:"pendingSince,omitempty"`
}

// TicketResponse mirrors a stored ticket.
type TicketResponse struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	OpenedAt     time.Time  `json:"openedAt"`
	Description  string     `json:"description"`
	PendingSince *time.Time `json:"pendingSince,omitempty"`
}

// ReplaceStatusesRequest carries the wholesale registry replacement.
type ReplaceStatusesRequest struct {
	Statuses []string `json:"statuses"`
}

// SelectViewRequest switches the active view; EditingID opens the form on a
// specific ticket.
type SelectViewRequest struct {
	View      string  `json:"view"`
	EditingID *string `json:"editingId,omitempty"`
}
