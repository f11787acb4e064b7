package store

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/domain"
	"github.com/spec-kit/ticket-tracker/internal/repository"
	apperrors "github.com/spec-kit/ticket-tracker/pkg/util"
)

// StatusRegistry holds the ordered, user-editable status label list. Removing
// a label never touches tickets already carrying it.
type StatusRegistry struct {
	mu     sync.Mutex
	labels []string
	repo   repository.RegistryRepository
	logger *zap.Logger
}

// NewStatusRegistry seeds the default labels. Pass a nil repo to keep the
// registry memory-only for the session.
func NewStatusRegistry(repo repository.RegistryRepository, logger *zap.Logger) *StatusRegistry {
	return &StatusRegistry{
		labels: domain.DefaultStatuses(),
		repo:   repo,
		logger: logger,
	}
}

// Load hydrates the registry from persistence when enabled. An empty or
// unreadable slot keeps the default seed.
func (r *StatusRegistry) Load(ctx context.Context) []string {
	if r.repo == nil {
		return r.List()
	}
	labels, err := r.repo.Load(ctx)
	if err != nil {
		r.logger.Warn("status registry load failed; keeping defaults", zap.Error(err))
		return r.List()
	}
	if labels == nil {
		return r.List()
	}

	labels = dedupe(labels)
	r.mu.Lock()
	r.labels = labels
	r.mu.Unlock()
	return r.List()
}

// List returns the current labels in order.
func (r *StatusRegistry) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.labels))
	copy(out, r.labels)
	return out
}

// Replace swaps the whole label list, de-duplicating while preserving first
// occurrence order. A failed save comes back as a storage warning.
func (r *StatusRegistry) Replace(ctx context.Context, labels []string) ([]string, error) {
	labels = dedupe(labels)

	r.mu.Lock()
	r.labels = labels
	r.mu.Unlock()

	if r.repo == nil {
		return r.List(), nil
	}
	if err := r.repo.Save(ctx, labels); err != nil {
		r.logger.Warn("status registry save failed; in-memory state kept", zap.Error(err))
		return r.List(), apperrors.NewStorageWarning(err)
	}
	return r.List(), nil
}

func dedupe(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		out = append(out, label)
	}
	return out
}
