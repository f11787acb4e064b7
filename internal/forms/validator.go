package forms

import (
	"strings"
	"time"

	"github.com/spec-kit/ticket-tracker/internal/domain"
)

// TicketDraft is a raw form submission before validation.
type TicketDraft struct {
	ID           string
	Status       string
	OpenedAt     string
	Description  string
	PendingSince string
}

// FieldError describes one invalid form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Details flattens field errors into an error-response details map.
func Details(errs []FieldError) map[string]any {
	details := make(map[string]any, len(errs))
	for _, fe := range errs {
		details[fe.Field] = fe.Message
	}
	return details
}

// Validate checks the draft and, on success, returns a normalized Ticket
// ready for the store: strings trimmed, dates in canonical form. All field
// errors are collected so the caller can highlight every invalid field at
// once rather than one per round trip.
func Validate(draft TicketDraft) (*domain.Ticket, []FieldError) {
	var errs []FieldError

	id := strings.TrimSpace(draft.ID)
	if id == "" {
		errs = append(errs, FieldError{Field: "id", Message: "ticket number is required"})
	}

	status := strings.TrimSpace(draft.Status)
	if status == "" {
		errs = append(errs, FieldError{Field: "status", Message: "status is required"})
	}

	description := strings.TrimSpace(draft.Description)
	if description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "description is required"})
	}

	openedAt, err := parseDate(draft.OpenedAt)
	if err != nil {
		errs = append(errs, FieldError{Field: "openedAt", Message: "open date must be a valid date"})
	}

	var pendingSince *time.Time
	if strings.TrimSpace(draft.PendingSince) != "" {
		parsed, err := parseDate(draft.PendingSince)
		if err != nil {
			errs = append(errs, FieldError{Field: "pendingSince", Message: "pending-since must be a valid date"})
		} else {
			pendingSince = &parsed
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &domain.Ticket{
		ID:           id,
		Status:       status,
		OpenedAt:     openedAt,
		Description:  description,
		PendingSince: pendingSince,
	}, nil
}

// parseDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates, the two
// shapes the form produces.
func parseDate(val string) (time.Time, error) {
	val = strings.TrimSpace(val)
	if t, err := time.Parse(time.RFC3339, val); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", val)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
