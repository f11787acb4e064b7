package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/domain"
	"github.com/spec-kit/ticket-tracker/internal/persistence"
)

// TicketRepository persists the full ticket list as one JSON blob.
type TicketRepository interface {
	Load(ctx context.Context) ([]domain.Ticket, error)
	Save(ctx context.Context, tickets []domain.Ticket) error
}

type ticketRepository struct {
	slot   persistence.Slot
	key    string
	logger *zap.Logger
}

// NewTicketRepository instantiates repository over the given slot key.
func NewTicketRepository(slot persistence.Slot, key string, logger *zap.Logger) TicketRepository {
	return &ticketRepository{slot: slot, key: key, logger: logger}
}

// Load deserializes the ticket list. An absent or malformed blob yields an
// empty list and no error: startup never fails on bad persisted state.
func (r *ticketRepository) Load(ctx context.Context) ([]domain.Ticket, error) {
	blob, err := r.slot.Load(ctx, r.key)
	if errors.Is(err, persistence.ErrSlotEmpty) {
		return []domain.Ticket{}, nil
	}
	if err != nil {
		r.logger.Warn("failed to read tickets slot; starting empty", zap.Error(err))
		return []domain.Ticket{}, nil
	}

	var tickets []domain.Ticket
	if err := json.Unmarshal(blob, &tickets); err != nil {
		r.logger.Warn("malformed tickets blob; starting empty", zap.Error(err))
		return []domain.Ticket{}, nil
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

// Save serializes the ticket list, overwriting prior content wholesale.
func (r *ticketRepository) Save(ctx context.Context, tickets []domain.Ticket) error {
	blob, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("encode tickets: %w", err)
	}
	return r.slot.Save(ctx, r.key, blob)
}
