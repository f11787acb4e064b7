package store

import (
	"context"
	"reflect"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/ticket-tracker/internal/domain"
)

type fakeRegistryRepo struct {
	labels  []string
	loadErr error
	saveErr error
}

func (f *fakeRegistryRepo) Load(ctx context.Context) ([]string, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.labels, nil
}

func (f *fakeRegistryRepo) Save(ctx context.Context, labels []string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.labels = labels
	return nil
}

func TestRegistrySeedsDefaults(t *testing.T) {
	r := NewStatusRegistry(nil, zap.NewNop())
	if !reflect.DeepEqual(r.List(), domain.DefaultStatuses()) {
		t.Fatalf("expected default seed, got %v", r.List())
	}
}

func TestReplaceCollapsesDuplicates(t *testing.T) {
	r := NewStatusRegistry(nil, zap.NewNop())

	stored, err := r.Replace(context.Background(), []string{"A", "A", "B"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !reflect.DeepEqual(stored, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v", stored)
	}
	if !reflect.DeepEqual(r.List(), []string{"A", "B"}) {
		t.Fatalf("List disagrees with Replace result: %v", r.List())
	}
}

func TestReplaceTrimsAndDropsEmpties(t *testing.T) {
	r := NewStatusRegistry(nil, zap.NewNop())

	stored, err := r.Replace(context.Background(), []string{" A ", "", "B", "A"})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !reflect.DeepEqual(stored, []string{"A", "B"}) {
		t.Fatalf("expected [A B], got %v", stored)
	}
}

func TestRegistryLoadKeepsDefaultsOnEmptySlot(t *testing.T) {
	r := NewStatusRegistry(&fakeRegistryRepo{}, zap.NewNop())

	labels := r.Load(context.Background())
	if !reflect.DeepEqual(labels, domain.DefaultStatuses()) {
		t.Fatalf("expected defaults on empty slot, got %v", labels)
	}
}

func TestRegistryLoadUsesPersistedLabels(t *testing.T) {
	repo := &fakeRegistryRepo{labels: []string{"X", "Y"}}
	r := NewStatusRegistry(repo, zap.NewNop())

	labels := r.Load(context.Background())
	if !reflect.DeepEqual(labels, []string{"X", "Y"}) {
		t.Fatalf("expected persisted labels, got %v", labels)
	}
}

func TestReplacePersists(t *testing.T) {
	repo := &fakeRegistryRepo{}
	r := NewStatusRegistry(repo, zap.NewNop())

	if _, err := r.Replace(context.Background(), []string{"A", "B"}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if !reflect.DeepEqual(repo.labels, []string{"A", "B"}) {
		t.Fatalf("expected labels persisted, repo has %v", repo.labels)
	}
}
