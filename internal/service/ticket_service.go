package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/ticket-tracker/internal/config"
	"github.com/spec-kit/ticket-tracker/internal/domain"
	"github.com/spec-kit/ticket-tracker/internal/events"
	"github.com/spec-kit/ticket-tracker/internal/forms"
	"github.com/spec-kit/ticket-tracker/internal/stats"
	"github.com/spec-kit/ticket-tracker/internal/store"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// TicketService coordinates form submissions, the store, the registry and
// the dashboard derivation.
type TicketService struct {
	store      *store.TicketStore
	registry   *store.StatusRegistry
	alerts     config.AlertConfig
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Store      *store.TicketStore
	Registry   *store.StatusRegistry
	Alerts     config.AlertConfig
	Dispatcher events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		store:      deps.Store,
		registry:   deps.Registry,
		alerts:     deps.Alerts,
		dispatcher: deps.Dispatcher,
	}
}

// Submit validates a form draft and funnels it into the store. Create and
// edit are the same operation keyed by ticket id. The returned error is
// either a validation failure carrying every invalid field, or a non-fatal
// storage warning from the synchronous save.
func (s *TicketService) Submit(ctx context.Context, draft forms.TicketDraft) ([]domain.Ticket, error) {
	ticket, fieldErrs := forms.Validate(draft)
	if len(fieldErrs) > 0 {
		return nil, apperrors.NewValidationError("invalid ticket", forms.Details(fieldErrs))
	}

	if err := s.checkStatus(*ticket); err != nil {
		return nil, err
	}

	existed := s.store.Has(ticket.ID)
	list, warn := s.store.Upsert(ctx, *ticket)

	eventType := events.EventTicketCreated
	if existed {
		eventType = events.EventTicketUpdated
	}
	s.publishEvent(ctx, events.Event{
		Type:     eventType,
		TicketID: ticket.ID,
		Payload: events.TicketUpsertedPayload{
			Status:       ticket.Status,
			OpenedAt:     ticket.OpenedAt,
			PendingSince: ticket.PendingSince,
		},
	})
	return list, warn
}

// checkStatus enforces registry membership for new or changed statuses.
// Tickets already carrying a label later removed from the registry keep it
// across edits; they are never retroactively invalidated.
func (s *TicketService) checkStatus(ticket domain.Ticket) error {
	if existing, err := s.store.Get(ticket.ID); err == nil && existing.Status == ticket.Status {
		return nil
	}
	for _, label := range s.registry.List() {
		if label == ticket.Status {
			return nil
		}
	}
	return apperrors.NewValidationError("invalid ticket", map[string]any{
		"status": "status is not in the registry",
	})
}

// Delete removes a ticket. Deleting an unknown id is a no-op.
func (s *TicketService) Delete(ctx context.Context, id string) ([]domain.Ticket, error) {
	list, removed, warn := s.store.Remove(ctx, id)
	if removed {
		s.publishEvent(ctx, events.Event{
			Type:     events.EventTicketDeleted,
			TicketID: id,
			Payload:  events.TicketDeletedPayload{Remaining: len(list)},
		})
	}
	return list, warn
}

// List returns a snapshot of all tickets in insertion order.
func (s *TicketService) List() []domain.Ticket {
	return s.store.List()
}

// Get fetches a single ticket by id.
func (s *TicketService) Get(id string) (domain.Ticket, error) {
	return s.store.Get(id)
}

// Dashboard derives the KPI stats from the current snapshot.
func (s *TicketService) Dashboard(now time.Time) domain.DashboardStats {
	return stats.Aggregate(s.store.List(), now, s.alerts.PendingThreshold())
}

// Statuses returns the current registry labels.
func (s *TicketService) Statuses() []string {
	return s.registry.List()
}

// ReplaceStatuses swaps the registry wholesale.
func (s *TicketService) ReplaceStatuses(ctx context.Context, labels []string) ([]string, error) {
	stored, warn := s.registry.Replace(ctx, labels)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventRegistryReplaced,
		Payload: events.RegistryReplacedPayload{Labels: stored},
	})
	return stored, warn
}

func (s *TicketService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
