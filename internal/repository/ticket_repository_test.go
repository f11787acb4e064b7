package repository

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/domain"
	"github.com/spec-kit/ticket-tracker/internal/persistence"
)

type memorySlot struct {
	blobs map[string][]byte
}

func newMemorySlot() *memorySlot {
	return &memorySlot{blobs: make(map[string][]byte)}
}

func (m *memorySlot) Load(ctx context.Context, key string) ([]byte, error) {
	blob, ok := m.blobs[key]
	if !ok {
		return nil, persistence.ErrSlotEmpty
	}
	return blob, nil
}

func (m *memorySlot) Save(ctx context.Context, key string, blob []byte) error {
	m.blobs[key] = blob
	return nil
}

func (m *memorySlot) Ping(ctx context.Context) error { return nil }
func (m *memorySlot) Close()                         {}

func TestTicketRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	repo := NewTicketRepository(slot, "tickets_data", zap.NewNop())

	pending := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	tickets := []domain.Ticket{
		{
			ID:          "1001",
			Status:      "N1",
			OpenedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			Description: "no pendingSince",
		},
		{
			ID:           "1002",
			Status:       domain.StatusPendingUser,
			OpenedAt:     time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
			Description:  "with pendingSince",
			PendingSince: &pending,
		},
	}

	if err := repo.Save(ctx, tickets); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, tickets) {
		t.Fatalf("round trip lost data:\nsaved  %+v\nloaded %+v", tickets, loaded)
	}
}

func TestUnsetPendingSinceIsAbsentFromBlob(t *testing.T) {
	ctx := context.Background()
	slot := newMemorySlot()
	repo := NewTicketRepository(slot, "tickets_data", zap.NewNop())

	tickets := []domain.Ticket{{
		ID:          "1001",
		Status:      "N1",
		OpenedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Description: "x",
	}}
	if err := repo.Save(ctx, tickets); err != nil {
		t.Fatalf("save: %v", err)
	}

	if strings.Contains(string(slot.blobs["tickets_data"]), "pendingSince") {
		t.Fatal("unset pendingSince must be absent from the blob, not null")
	}
}

func TestLoadEmptySlot(t *testing.T) {
	repo := NewTicketRepository(newMemorySlot(), "tickets_data", zap.NewNop())

	tickets, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("expected empty list, got %d", len(tickets))
	}
}

func TestLoadMalformedBlob(t *testing.T) {
	slot := newMemorySlot()
	slot.blobs["tickets_data"] = []byte("{not json")
	repo := NewTicketRepository(slot, "tickets_data", zap.NewNop())

	tickets, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("malformed blob must fail soft, got %v", err)
	}
	if len(tickets) != 0 {
		t.Fatalf("expected empty list, got %d", len(tickets))
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistryRepository(newMemorySlot(), "statuses_data", zap.NewNop())

	labels := []string{"A", "B", "C"}
	if err := repo.Save(ctx, labels); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(loaded, labels) {
		t.Fatalf("expected %v, got %v", labels, loaded)
	}
}

func TestRegistryLoadEmptySlotReturnsNil(t *testing.T) {
	repo := NewRegistryRepository(newMemorySlot(), "statuses_data", zap.NewNop())

	labels, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if labels != nil {
		t.Fatalf("empty slot must return nil so defaults are seeded, got %v", labels)
	}
}
