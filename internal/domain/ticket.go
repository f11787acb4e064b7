package domain

import "time"

// Canonical status labels referenced by the dashboard KPIs. The registry is
// user-editable data, but these two labels carry dashboard semantics.
const (
	StatusResolved    = "Resolvido"
	StatusPendingUser = "Pendente Usuário"
)

// DefaultStatuses seeds the registry on first run.
func DefaultStatuses() []string {
	return []string{
		StatusResolved,
		StatusPendingUser,
		"Pendente Fornecedor",
		"N1",
		"Exaudi",
		"2G",
		"Pendente PO",
	}
}

// Ticket is a single support-request record. ID doubles as the ticket number
// and the primary key; OpenedAt is set at creation and never changes.
type Ticket struct {
	ID           string     `json:"id"`
	Status       string     `json:"status"`
	OpenedAt     time.Time  `json:"openedAt"`
	Description  string     `json:"description"`
	PendingSince *time.Time `json:"pendingSince,omitempty"`
}

// PendingFor reports how long the ticket has been waiting on the user.
// Zero when PendingSince is unset.
func (t Ticket) PendingFor(now time.Time) time.Duration {
	if t.PendingSince == nil {
		return 0
	}
	return now.Sub(*t.PendingSince)
}
