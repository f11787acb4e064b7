package stats

import (
	"time"

	"github.com/spec-kit/ticket-tracker/internal/domain"
)

// Aggregate derives the dashboard KPIs from a ticket snapshot in a single
// pass. It is a pure function of its inputs: same tickets and same now give
// the same result on every call.
//
// ByStatus covers every status observed among tickets, including labels that
// have since been removed from the registry; registry drift never drops data
// from the breakdown.
func Aggregate(tickets []domain.Ticket, now time.Time, pendingThreshold time.Duration) domain.DashboardStats {
	stats := domain.DashboardStats{
		ByStatus: make(map[string]int, len(tickets)),
	}

	for _, t := range tickets {
		stats.Total++
		stats.ByStatus[t.Status]++

		switch t.Status {
		case domain.StatusResolved:
			stats.Resolved++
		case domain.StatusPendingUser:
			stats.PendingUser++
			if t.PendingSince != nil && t.PendingFor(now) > pendingThreshold {
				stats.ActiveAlerts++
			}
		}
	}

	return stats
}
