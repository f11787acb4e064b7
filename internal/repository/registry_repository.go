package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/persistence"
)

// RegistryRepository persists the ordered status label list as one JSON blob.
type RegistryRepository interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, labels []string) error
}

type registryRepository struct {
	slot   persistence.Slot
	key    string
	logger *zap.Logger
}

// NewRegistryRepository instantiates repository over the given slot key.
func NewRegistryRepository(slot persistence.Slot, key string, logger *zap.Logger) RegistryRepository {
	return &registryRepository{slot: slot, key: key, logger: logger}
}

// Load deserializes the label list; nil result means "no saved registry",
// letting the caller seed defaults.
func (r *registryRepository) Load(ctx context.Context) ([]string, error) {
	blob, err := r.slot.Load(ctx, r.key)
	if errors.Is(err, persistence.ErrSlotEmpty) {
		return nil, nil
	}
	if err != nil {
		r.logger.Warn("failed to read statuses slot; using defaults", zap.Error(err))
		return nil, nil
	}

	var labels []string
	if err := json.Unmarshal(blob, &labels); err != nil {
		r.logger.Warn("malformed statuses blob; using defaults", zap.Error(err))
		return nil, nil
	}
	return labels, nil
}

// Save serializes the label list, overwriting prior content wholesale.
func (r *registryRepository) Save(ctx context.Context, labels []string) error {
	blob, err := json.Marshal(labels)
	if err != nil {
		return fmt.Errorf("encode statuses: %w", err)
	}
	return r.slot.Save(ctx, r.key, blob)
}
