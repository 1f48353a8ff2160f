package impl

import (
	"context"
	"testing"

	"fleet/internal/domain/entity"
	mockRepo "fleet/internal/mocks/repository"
	"fleet/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service      usecase.StatsUsecase
	jobRepo      *mockRepo.MockJobRepository
	profileRepo  *mockRepo.MockProfileRepository
	statusRepo   *mockRepo.MockDeviceStatusRepository
	locationRepo *mockRepo.MockLocationRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	jobRepo := mockRepo.NewMockJobRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	statusRepo := mockRepo.NewMockDeviceStatusRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewStatsService(StatsServiceParams{
		JobRepo:      jobRepo,
		ProfileRepo:  profileRepo,
		StatusRepo:   statusRepo,
		LocationRepo: locationRepo,
	})

	return statsServiceFixtures{
		service:      service,
		jobRepo:      jobRepo,
		profileRepo:  profileRepo,
		statusRepo:   statusRepo,
		locationRepo: locationRepo,
	}
}

func TestStatsService_GetDashboardStats_Success(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	counts := map[entity.JobStatus]int64{
		entity.JobStatusPending:    4,
		entity.JobStatusAssigned:   3,
		entity.JobStatusInProgress: 2,
		entity.JobStatusCompleted:  11,
		entity.JobStatusCancelled:  1,
	}
	for status, count := range counts {
		fx.jobRepo.EXPECT().
			CountByStatus(mock.Anything, status).
			Return(count, nil)
	}

	fx.profileRepo.EXPECT().
		CountByRole(mock.Anything, entity.RoleDriver).
		Return(int64(7), nil)

	fx.statusRepo.EXPECT().
		CountSeenSince(mock.Anything, entity.AppTypeMobile, mock.AnythingOfType("time.Time")).
		Return(int64(5), nil)

	fx.locationRepo.EXPECT().
		CountPoints(mock.Anything).
		Return(int64(90210), nil)

	stats, err := fx.service.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, &usecase.DashboardStats{
		PendingJobs:    4,
		AssignedJobs:   3,
		InProgressJobs: 2,
		CompletedJobs:  11,
		CancelledJobs:  1,
		ActiveDrivers:  7,
		OnlineDrivers:  5,
		LocationPoints: 90210,
	}, stats)
}

func TestStatsService_GetDashboardStats_CountError(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	fx.jobRepo.EXPECT().
		CountByStatus(mock.Anything, mock.AnythingOfType("entity.JobStatus")).
		Return(int64(0), errors.New("db error")).
		Maybe()

	fx.profileRepo.EXPECT().
		CountByRole(mock.Anything, entity.RoleDriver).
		Return(int64(0), nil).
		Maybe()

	fx.statusRepo.EXPECT().
		CountSeenSince(mock.Anything, entity.AppTypeMobile, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil).
		Maybe()

	fx.locationRepo.EXPECT().
		CountPoints(mock.Anything).
		Return(int64(0), nil).
		Maybe()

	stats, err := fx.service.GetDashboardStats(ctx)
	assert.Error(t, err)
	assert.Nil(t, stats)
}
