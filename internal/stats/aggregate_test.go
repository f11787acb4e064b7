package stats

import (
	"reflect"
	"testing"
	"time"

	"github.com/spec-kit/ticket-tracker/internal/domain"
)

const day = 24 * time.Hour

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func TestAggregateEmptyList(t *testing.T) {
	stats := Aggregate(nil, date("2024-01-10"), 3*day)

	if stats.Total != 0 || stats.Resolved != 0 || stats.PendingUser != 0 || stats.ActiveAlerts != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
	if len(stats.ByStatus) != 0 {
		t.Fatalf("expected empty breakdown, got %v", stats.ByStatus)
	}
}

func TestAggregateActiveAlertScenario(t *testing.T) {
	tickets := []domain.Ticket{{
		ID:           "1001",
		Status:       domain.StatusPendingUser,
		OpenedAt:     date("2024-01-01"),
		Description:  "x",
		PendingSince: datePtr("2024-01-01"),
	}}

	stats := Aggregate(tickets, date("2024-01-10"), 3*day)
	if stats.ActiveAlerts != 1 {
		t.Fatalf("expected 1 active alert, got %d", stats.ActiveAlerts)
	}
	if stats.PendingUser != 1 {
		t.Fatalf("expected 1 pending-user ticket, got %d", stats.PendingUser)
	}
}

func TestAggregateAlertRequiresPendingSinceAndAge(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "1", Status: domain.StatusPendingUser, OpenedAt: date("2024-01-01"), Description: "no pendingSince"},
		{ID: "2", Status: domain.StatusPendingUser, OpenedAt: date("2024-01-01"), Description: "fresh", PendingSince: datePtr("2024-01-09")},
		{ID: "3", Status: domain.StatusResolved, OpenedAt: date("2024-01-01"), Description: "resolved", PendingSince: datePtr("2024-01-01")},
	}

	stats := Aggregate(tickets, date("2024-01-10"), 3*day)
	if stats.ActiveAlerts != 0 {
		t.Fatalf("expected 0 active alerts, got %d", stats.ActiveAlerts)
	}
	if stats.PendingUser != 2 {
		t.Fatalf("expected 2 pending-user tickets, got %d", stats.PendingUser)
	}
	if stats.Resolved != 1 {
		t.Fatalf("expected 1 resolved ticket, got %d", stats.Resolved)
	}
}

func TestAggregateByStatusIncludesUnregisteredLabels(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "1", Status: "N1", OpenedAt: date("2024-01-01"), Description: "a"},
		{ID: "2", Status: "Arcaico", OpenedAt: date("2024-01-02"), Description: "b"},
		{ID: "3", Status: "N1", OpenedAt: date("2024-01-03"), Description: "c"},
	}

	stats := Aggregate(tickets, date("2024-01-10"), 3*day)
	want := map[string]int{"N1": 2, "Arcaico": 1}
	if !reflect.DeepEqual(stats.ByStatus, want) {
		t.Fatalf("expected %v, got %v", want, stats.ByStatus)
	}
}

func TestByStatusSumsToTotal(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "1", Status: "A", OpenedAt: date("2024-01-01"), Description: "x"},
		{ID: "2", Status: "B", OpenedAt: date("2024-01-01"), Description: "x"},
		{ID: "3", Status: "A", OpenedAt: date("2024-01-01"), Description: "x"},
		{ID: "4", Status: domain.StatusResolved, OpenedAt: date("2024-01-01"), Description: "x"},
	}

	stats := Aggregate(tickets, date("2024-01-10"), 3*day)
	sum := 0
	for _, count := range stats.ByStatus {
		sum += count
	}
	if sum != stats.Total {
		t.Fatalf("byStatus sums to %d, total is %d", sum, stats.Total)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	tickets := []domain.Ticket{
		{ID: "1", Status: domain.StatusPendingUser, OpenedAt: date("2024-01-01"), Description: "x", PendingSince: datePtr("2024-01-02")},
		{ID: "2", Status: domain.StatusResolved, OpenedAt: date("2024-01-01"), Description: "y"},
	}
	now := date("2024-01-10")

	first := Aggregate(tickets, now, 3*day)
	for i := 0; i < 5; i++ {
		if got := Aggregate(tickets, now, 3*day); !reflect.DeepEqual(got, first) {
			t.Fatalf("call %d differs: %+v vs %+v", i, got, first)
		}
	}
}
