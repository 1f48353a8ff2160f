package impl

import (
	"context"
	"time"

	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// onlineWindow is how recently a driver heartbeat must have arrived for the
// driver to count as online.
const onlineWindow = 5 * time.Minute

// statsService implements the StatsUsecase interface.
type statsService struct {
	jobRepo      repository.JobRepository
	profileRepo  repository.ProfileRepository
	statusRepo   repository.DeviceStatusRepository
	locationRepo repository.LocationRepository
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	JobRepo      repository.JobRepository
	ProfileRepo  repository.ProfileRepository
	StatusRepo   repository.DeviceStatusRepository
	LocationRepo repository.LocationRepository
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		jobRepo:      params.JobRepo,
		profileRepo:  params.ProfileRepo,
		statusRepo:   params.StatusRepo,
		locationRepo: params.LocationRepo,
	}
}

// GetDashboardStats issues the independent count queries concurrently. The
// counts have no ordering dependency between them, so one errgroup collects
// them all and the first failure aborts the rest.
func (s *statsService) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	stats := &usecase.DashboardStats{}
	group, groupCtx := errgroup.WithContext(ctx)

	jobCounts := []struct {
		status entity.JobStatus
		target *int64
	}{
		{entity.JobStatusPending, &stats.PendingJobs},
		{entity.JobStatusAssigned, &stats.AssignedJobs},
		{entity.JobStatusInProgress, &stats.InProgressJobs},
		{entity.JobStatusCompleted, &stats.CompletedJobs},
		{entity.JobStatusCancelled, &stats.CancelledJobs},
	}
	for _, jc := range jobCounts {
		group.Go(func() error {
			count, err := s.jobRepo.CountByStatus(groupCtx, jc.status)
			if err != nil {
				return errors.Wrapf(err, "failed to count %s jobs", jc.status)
			}
			*jc.target = count

			return nil
		})
	}

	group.Go(func() error {
		count, err := s.profileRepo.CountByRole(groupCtx, entity.RoleDriver)
		if err != nil {
			return errors.Wrap(err, "failed to count active drivers")
		}
		stats.ActiveDrivers = count

		return nil
	})

	group.Go(func() error {
		count, err := s.statusRepo.CountSeenSince(groupCtx, entity.AppTypeMobile, time.Now().Add(-onlineWindow))
		if err != nil {
			return errors.Wrap(err, "failed to count online drivers")
		}
		stats.OnlineDrivers = count

		return nil
	})

	group.Go(func() error {
		count, err := s.locationRepo.CountPoints(groupCtx)
		if err != nil {
			return errors.Wrap(err, "failed to count location points")
		}
		stats.LocationPoints = count

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}
