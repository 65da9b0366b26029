package models

// DashboardStats are the counters shown at the top of the admin dashboard.
type DashboardStats struct {
	TotalEnrollments   int `json:"total_enrollments"`
	PendingEnrollments int `json:"pending_enrollments"`
	UnreadMessages     int `json:"unread_messages"`
	TotalPackages      int `json:"total_packages"`
	TotalDestinations  int `json:"total_destinations"`
}

// DashboardSnapshot is everything the admin dashboard loads at once.
type DashboardSnapshot struct {
	Packages     []Package      `json:"packages"`
	Enrollments  []Enrollment   `json:"enrollments"`
	Messages     []Message      `json:"messages"`
	Destinations []Destination  `json:"destinations"`
	Stats        DashboardStats `json:"stats"`
}

// ComputeStats derives dashboard counters from the snapshot lists.
func ComputeStats(packages []Package, enrollments []Enrollment, messages []Message, destinations []Destination) DashboardStats {
	stats := DashboardStats{
		TotalEnrollments:  len(enrollments),
		TotalPackages:     len(packages),
		TotalDestinations: len(destinations),
	}
	for _, e := range enrollments {
		if e.Status == EnrollmentStatusPending {
			stats.PendingEnrollments++
		}
	}
	for _, m := range messages {
		if m.Status == MessageStatusUnread {
			stats.UnreadMessages++
		}
	}
	return stats
}
