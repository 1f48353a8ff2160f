package impl

import (
	"context"
	"testing"
	"time"

	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	mockRepo "fleet/internal/mocks/repository"
	mockSvc "fleet/internal/mocks/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// jobServiceFixtures holds all test dependencies for job service tests.
type jobServiceFixtures struct {
	service        usecase.JobUsecase
	txManager      *mockRepo.MockTransactionManager
	jobRepo        *mockRepo.MockJobRepository
	profileRepo    *mockRepo.MockProfileRepository
	eventPublisher *mockSvc.MockEventPublisher
	qrcodeService  *mockSvc.MockQRCodeService
	routeService   *mockSvc.MockRouteService
}

func createTestJobService(t *testing.T) jobServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	jobRepo := mockRepo.NewMockJobRepository(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	eventPublisher := mockSvc.NewMockEventPublisher(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)
	routeService := mockSvc.NewMockRouteService(t)

	service := NewJobService(JobServiceParams{
		TxManager:      txManager,
		JobRepo:        jobRepo,
		ProfileRepo:    profileRepo,
		EventPublisher: eventPublisher,
		QRCodeService:  qrcodeService,
		RouteService:   routeService,
		Logger:         newDiscardLogger(),
	})

	return jobServiceFixtures{
		service:        service,
		txManager:      txManager,
		jobRepo:        jobRepo,
		profileRepo:    profileRepo,
		eventPublisher: eventPublisher,
		qrcodeService:  qrcodeService,
		routeService:   routeService,
	}
}

// runInTransaction makes the transaction mock invoke the unit of work with a
// factory backed by the given repositories.
func runInTransaction(fx jobServiceFixtures, t *testing.T, jobRepo repository.JobRepository, timeLogRepo repository.TimeLogRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewJobRepository().Return(jobRepo).Maybe()
	factory.EXPECT().NewTimeLogRepository().Return(timeLogRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestJobService_CreateJob_Success(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	input := usecase.CreateJobInput{
		Reference:        "LOAD-2024-001",
		PickupAddress:    "1 Dock Rd",
		DeliveryAddress:  "9 Depot St",
		CargoDescription: "pallets",
	}

	fx.jobRepo.EXPECT().
		CreateJob(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	job, err := fx.service.CreateJob(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, job)
	assert.Equal(t, input.Reference, job.Reference)
	assert.Equal(t, entity.JobStatusPending, job.Status)
	assert.Nil(t, job.DriverID)
}

func TestJobService_CreateJob_DuplicateReference(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()

	fx.jobRepo.EXPECT().
		CreateJob(ctx, mock.AnythingOfType("*entity.Job")).
		Return(repository.ErrDuplicateJob)

	job, err := fx.service.CreateJob(ctx, usecase.CreateJobInput{Reference: "LOAD-2024-001"})
	assert.Error(t, err)
	assert.Nil(t, job)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrConflict.ErrorCode(), appErr.ErrorCode())
}

func TestJobService_GetJob_NotFound(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(nil, repository.ErrJobNotFound)

	job, err := fx.service.GetJob(ctx, jobID, usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin})
	assert.Error(t, err)
	assert.Nil(t, job)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotFound)
}

func TestJobService_GetJob_DriverNotOwner(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &ownerID}, nil)

	job, err := fx.service.GetJob(ctx, jobID, usecase.Actor{ID: uuid.New(), Role: entity.RoleDriver})
	assert.Error(t, err)
	assert.Nil(t, job)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotOwned)
}

func TestJobService_GetJob_DriverReadsOwnJob(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &driverID}, nil)

	job, err := fx.service.GetJob(ctx, jobID, usecase.Actor{ID: driverID, Role: entity.RoleDriver})
	require.NoError(t, err)
	assert.Equal(t, jobID, job.ID)
}

func TestJobService_AssignJob_Success(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	driver := &entity.Profile{
		ID:       driverID,
		Role:     entity.RoleDriver,
		IsActive: true,
	}
	job := &entity.Job{
		ID:        jobID,
		Reference: "LOAD-2024-002",
		Status:    entity.JobStatusPending,
	}

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, driverID).
		Return(driver, nil)

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(job, nil)

	fx.jobRepo.EXPECT().
		UpdateJob(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishJobEvent(ctx, mock.AnythingOfType("*service.JobEvent")).
		Return(nil)

	updated, err := fx.service.AssignJob(ctx, jobID, driverID)
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusAssigned, updated.Status)
	require.NotNil(t, updated.DriverID)
	assert.Equal(t, driverID, *updated.DriverID)
	assert.NotNil(t, updated.AssignedAt)
}

func TestJobService_AssignJob_NotADriver(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, driverID).
		Return(&entity.Profile{ID: driverID, Role: entity.RoleUser, IsActive: true}, nil)

	job, err := fx.service.AssignJob(ctx, jobID, driverID)
	assert.Error(t, err)
	assert.Nil(t, job)
}

func TestJobService_AssignJob_InactiveDriver(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, driverID).
		Return(&entity.Profile{ID: driverID, Role: entity.RoleDriver, IsActive: false}, nil)

	job, err := fx.service.AssignJob(ctx, jobID, driverID)
	assert.Error(t, err)
	assert.Nil(t, job)
}

func TestJobService_AssignJob_AlreadyAssigned(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	fx.profileRepo.EXPECT().
		FindProfileByID(ctx, driverID).
		Return(&entity.Profile{ID: driverID, Role: entity.RoleDriver, IsActive: true}, nil)

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned}, nil)

	job, err := fx.service.AssignJob(ctx, jobID, driverID)
	assert.Error(t, err)
	assert.Nil(t, job)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatusTransition.ErrorCode(), appErr.ErrorCode())
}

func TestJobService_UpdateJobStatus_DriverNotOwner(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	ownerID := uuid.New()
	otherDriverID := uuid.New()

	txJobRepo := mockRepo.NewMockJobRepository(t)
	txTimeLogRepo := mockRepo.NewMockTimeLogRepository(t)
	runInTransaction(fx, t, txJobRepo, txTimeLogRepo)

	txJobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &ownerID}, nil)

	job, err := fx.service.UpdateJobStatus(ctx, usecase.StatusUpdateInput{
		JobID:     jobID,
		NewStatus: entity.JobStatusInProgress,
		ActorID:   otherDriverID,
		ActorRole: entity.RoleDriver,
	})
	assert.Error(t, err)
	assert.Nil(t, job)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotOwned)
	txTimeLogRepo.AssertNotCalled(t, "CreateTimeLog", mock.Anything, mock.Anything)
}

func TestJobService_UpdateJobStatus_InProgressOpensTimeLog(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	txJobRepo := mockRepo.NewMockJobRepository(t)
	txTimeLogRepo := mockRepo.NewMockTimeLogRepository(t)
	runInTransaction(fx, t, txJobRepo, txTimeLogRepo)

	txJobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &driverID}, nil)

	txTimeLogRepo.EXPECT().
		CreateTimeLog(ctx, mock.AnythingOfType("*entity.TimeLog")).
		Run(func(_ context.Context, timeLog *entity.TimeLog) {
			assert.Equal(t, jobID, timeLog.JobID)
			assert.Equal(t, driverID, timeLog.DriverID)
			assert.Nil(t, timeLog.EndTime)
		}).
		Return(nil)

	txJobRepo.EXPECT().
		UpdateJob(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishJobEvent(ctx, mock.AnythingOfType("*service.JobEvent")).
		Return(nil)

	job, err := fx.service.UpdateJobStatus(ctx, usecase.StatusUpdateInput{
		JobID:     jobID,
		NewStatus: entity.JobStatusInProgress,
		ActorID:   driverID,
		ActorRole: entity.RoleDriver,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusInProgress, job.Status)
	assert.NotNil(t, job.StartedAt)
}

func TestJobService_UpdateJobStatus_CompletedClosesTimeLog(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()
	logID := uuid.New()

	txJobRepo := mockRepo.NewMockJobRepository(t)
	txTimeLogRepo := mockRepo.NewMockTimeLogRepository(t)
	runInTransaction(fx, t, txJobRepo, txTimeLogRepo)

	txJobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusInProgress, DriverID: &driverID}, nil)

	txTimeLogRepo.EXPECT().
		FindOpenTimeLog(ctx, jobID).
		Return(&entity.TimeLog{ID: logID, JobID: jobID, DriverID: driverID, StartTime: time.Now().Add(-time.Hour)}, nil)

	txTimeLogRepo.EXPECT().
		CloseTimeLog(ctx, logID, mock.AnythingOfType("time.Time")).
		Return(nil)

	txJobRepo.EXPECT().
		UpdateJob(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishJobEvent(ctx, mock.AnythingOfType("*service.JobEvent")).
		Return(nil)

	job, err := fx.service.UpdateJobStatus(ctx, usecase.StatusUpdateInput{
		JobID:     jobID,
		NewStatus: entity.JobStatusCompleted,
		ActorID:   driverID,
		ActorRole: entity.RoleDriver,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusCompleted, job.Status)
	assert.NotNil(t, job.CompletedAt)
}

func TestJobService_UpdateJobStatus_CancelledClosesOpenLog(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()
	logID := uuid.New()

	txJobRepo := mockRepo.NewMockJobRepository(t)
	txTimeLogRepo := mockRepo.NewMockTimeLogRepository(t)
	runInTransaction(fx, t, txJobRepo, txTimeLogRepo)

	txJobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusInProgress, DriverID: &driverID}, nil)

	txTimeLogRepo.EXPECT().
		FindOpenTimeLog(ctx, jobID).
		Return(&entity.TimeLog{ID: logID, JobID: jobID, DriverID: driverID}, nil)

	txTimeLogRepo.EXPECT().
		CloseTimeLog(ctx, logID, mock.AnythingOfType("time.Time")).
		Return(nil)

	txJobRepo.EXPECT().
		UpdateJob(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishJobEvent(ctx, mock.AnythingOfType("*service.JobEvent")).
		Return(nil)

	job, err := fx.service.UpdateJobStatus(ctx, usecase.StatusUpdateInput{
		JobID:     jobID,
		NewStatus: entity.JobStatusCancelled,
		ActorID:   uuid.New(),
		ActorRole: entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.JobStatusCancelled, job.Status)
	assert.NotNil(t, job.CancelledAt)
}

func TestJobService_UpdateJobStatus_InvalidTransition(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()

	txJobRepo := mockRepo.NewMockJobRepository(t)
	txTimeLogRepo := mockRepo.NewMockTimeLogRepository(t)
	runInTransaction(fx, t, txJobRepo, txTimeLogRepo)

	txJobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusCompleted}, nil)

	job, err := fx.service.UpdateJobStatus(ctx, usecase.StatusUpdateInput{
		JobID:     jobID,
		NewStatus: entity.JobStatusCancelled,
		ActorID:   uuid.New(),
		ActorRole: entity.RoleAdmin,
	})
	assert.Error(t, err)
	assert.Nil(t, job)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidStatusTransition.ErrorCode(), appErr.ErrorCode())
}

func TestJobService_UpdateJobStatus_InvalidStatusValue(t *testing.T) {
	fx := createTestJobService(t)

	job, err := fx.service.UpdateJobStatus(context.Background(), usecase.StatusUpdateInput{
		JobID:     uuid.New(),
		NewStatus: entity.JobStatus("teleported"),
		ActorID:   uuid.New(),
		ActorRole: entity.RoleAdmin,
	})
	assert.Error(t, err)
	assert.Nil(t, job)
}

func TestJobService_UpdateJobStatus_PublishFailureDoesNotFailRequest(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	driverID := uuid.New()

	txJobRepo := mockRepo.NewMockJobRepository(t)
	txTimeLogRepo := mockRepo.NewMockTimeLogRepository(t)
	runInTransaction(fx, t, txJobRepo, txTimeLogRepo)

	txJobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &driverID}, nil)

	txTimeLogRepo.EXPECT().
		CreateTimeLog(ctx, mock.AnythingOfType("*entity.TimeLog")).
		Return(nil)

	txJobRepo.EXPECT().
		UpdateJob(ctx, mock.AnythingOfType("*entity.Job")).
		Return(nil)

	fx.eventPublisher.EXPECT().
		PublishJobEvent(ctx, mock.AnythingOfType("*service.JobEvent")).
		Return(errors.New("broker unavailable"))

	job, err := fx.service.UpdateJobStatus(ctx, usecase.StatusUpdateInput{
		JobID:     jobID,
		NewStatus: entity.JobStatusInProgress,
		ActorID:   driverID,
		ActorRole: entity.RoleDriver,
	})
	require.NoError(t, err)
	assert.NotNil(t, job)
}

func TestJobService_GenerateTrackingQR_Success(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	job := &entity.Job{ID: jobID, Reference: "LOAD-2024-003", Status: entity.JobStatusAssigned}

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(job, nil)

	fx.qrcodeService.EXPECT().
		GenerateTrackingQR(jobID, job.Reference).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.GenerateTrackingQR(ctx, jobID, usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestJobService_GenerateTrackingQR_DriverNotOwner(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	ownerID := uuid.New()

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(&entity.Job{ID: jobID, Status: entity.JobStatusAssigned, DriverID: &ownerID}, nil)

	png, err := fx.service.GenerateTrackingQR(ctx, jobID, usecase.Actor{ID: uuid.New(), Role: entity.RoleDriver})
	assert.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrJobNotOwned)
	fx.qrcodeService.AssertNotCalled(t, "GenerateTrackingQR", mock.Anything, mock.Anything)
}

func TestJobService_OptimizeJobRoute_Success(t *testing.T) {
	fx := createTestJobService(t)

	ctx := context.Background()
	jobID := uuid.New()
	job := &entity.Job{
		ID:                jobID,
		Status:            entity.JobStatusPending,
		PickupLatitude:    25.04,
		PickupLongitude:   121.56,
		DeliveryLatitude:  24.16,
		DeliveryLongitude: 120.65,
	}

	fx.jobRepo.EXPECT().
		FindJobByID(ctx, jobID).
		Return(job, nil)

	fx.routeService.EXPECT().
		OptimizeRoute(ctx,
			service.RoutePoint{Latitude: job.PickupLatitude, Longitude: job.PickupLongitude},
			service.RoutePoint{Latitude: job.DeliveryLatitude, Longitude: job.DeliveryLongitude},
		).
		Return(&service.Route{DistanceMeters: 142000, DurationSeconds: 6400, Provider: "haversine"}, nil)

	route, err := fx.service.OptimizeJobRoute(ctx, jobID, usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "haversine", route.Provider)
}
