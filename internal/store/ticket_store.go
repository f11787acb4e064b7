package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/domain"
	"github.com/spec-kit/ticket-tracker/internal/repository"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// TicketStore owns the canonical ticket list. All mutations funnel through
// Upsert and Remove; every mutation saves synchronously so in-memory and
// persisted state agree after each call. Views only ever see snapshots.
type TicketStore struct {
	mu      sync.Mutex
	tickets []domain.Ticket
	repo    repository.TicketRepository
	logger  *zap.Logger
}

// NewTicketStore constructs an empty store; call Load to hydrate it.
func NewTicketStore(repo repository.TicketRepository, logger *zap.Logger) *TicketStore {
	return &TicketStore{
		tickets: []domain.Ticket{},
		repo:    repo,
		logger:  logger,
	}
}

// Load hydrates the store from persistence. Fails soft: absent or malformed
// state yields an empty list, never an error.
func (s *TicketStore) Load(ctx context.Context) []domain.Ticket {
	tickets, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("ticket load failed; starting empty", zap.Error(err))
		tickets = []domain.Ticket{}
	}

	s.mu.Lock()
	s.tickets = tickets
	s.mu.Unlock()

	s.logger.Info("tickets loaded", zap.Int("count", len(tickets)))
	return s.snapshot()
}

// Upsert replaces the ticket with the same id in place, preserving its
// position, or appends a new one. Both create and edit funnel through here.
// A failed save comes back as a storage warning; the in-memory list stays
// authoritative for the session either way.
func (s *TicketStore) Upsert(ctx context.Context, ticket domain.Ticket) ([]domain.Ticket, error) {
	s.mu.Lock()
	replaced := false
	for i := range s.tickets {
		if s.tickets[i].ID == ticket.ID {
			s.tickets[i] = ticket
			replaced = true
			break
		}
	}
	if !replaced {
		s.tickets = append(s.tickets, ticket)
	}
	s.mu.Unlock()

	return s.snapshot(), s.save(ctx)
}

// Remove filters out the ticket with the given id. Removing an absent id is
// a no-op, not an error; the second return reports whether anything changed.
func (s *TicketStore) Remove(ctx context.Context, id string) ([]domain.Ticket, bool, error) {
	s.mu.Lock()
	removed := false
	kept := s.tickets[:0]
	for _, t := range s.tickets {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	s.tickets = kept
	s.mu.Unlock()

	if !removed {
		return s.snapshot(), false, nil
	}
	return s.snapshot(), true, s.save(ctx)
}

// List returns a snapshot in insertion order.
func (s *TicketStore) List() []domain.Ticket {
	return s.snapshot()
}

// Get looks up a single ticket by id.
func (s *TicketStore) Get(id string) (domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range s.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Ticket{}, domain.ErrNotFound
}

// Has reports whether a ticket with the given id exists.
func (s *TicketStore) Has(id string) bool {
	_, err := s.Get(id)
	return err == nil
}

func (s *TicketStore) save(ctx context.Context) error {
	s.mu.Lock()
	tickets := make([]domain.Ticket, len(s.tickets))
	copy(tickets, s.tickets)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, tickets); err != nil {
		s.logger.Warn("ticket save failed; in-memory state kept", zap.Error(err))
		return apperrors.NewStorageWarning(err)
	}
	return nil
}

func (s *TicketStore) snapshot() []domain.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}
