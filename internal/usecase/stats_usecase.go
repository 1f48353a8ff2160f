package usecase

import "context"

// DashboardStats aggregates the counts shown on the admin dashboard.
type DashboardStats struct {
	PendingJobs    int64 `json:"pending_jobs"`
	AssignedJobs   int64 `json:"assigned_jobs"`
	InProgressJobs int64 `json:"in_progress_jobs"`
	CompletedJobs  int64 `json:"completed_jobs"`
	CancelledJobs  int64 `json:"cancelled_jobs"`
	ActiveDrivers  int64 `json:"active_drivers"`
	OnlineDrivers  int64 `json:"online_drivers"`
	LocationPoints int64 `json:"location_points"`
}

// StatsUsecase defines the interface for admin dashboard aggregates.
type StatsUsecase interface {
	// GetDashboardStats issues the independent count queries concurrently and
	// returns the combined result.
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
