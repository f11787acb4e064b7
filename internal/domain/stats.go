package domain

// DashboardStats is derived from the ticket list; it is never stored.
type DashboardStats struct {
	Total        int            `json:"total"`
	Resolved     int            `json:"resolved"`
	PendingUser  int            `json:"pendingUser"`
	ActiveAlerts int            `json:"activeAlerts"`
	ByStatus     map[string]int `json:"byStatus"`
}
