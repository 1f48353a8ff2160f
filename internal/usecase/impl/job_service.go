package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fleet/internal/delivery/context"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/domain/repository"
	"fleet/internal/domain/service"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// jobService implements the JobUsecase interface.
type jobService struct {
	txManager      repository.TransactionManager
	jobRepo        repository.JobRepository
	profileRepo    repository.ProfileRepository
	eventPublisher service.EventPublisher
	qrcodeService  service.QRCodeService
	routeService   service.RouteService
	logger         *slog.Logger
}

// JobServiceParams holds dependencies for JobService, injected by Fx.
type JobServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	JobRepo        repository.JobRepository
	ProfileRepo    repository.ProfileRepository
	EventPublisher service.EventPublisher
	QRCodeService  service.QRCodeService
	RouteService   service.RouteService
	Logger         *slog.Logger
}

// NewJobService is the constructor for jobService. It receives all dependencies as interfaces.
func NewJobService(params JobServiceParams) usecase.JobUsecase {
	return &jobService{
		txManager:      params.TxManager,
		jobRepo:        params.JobRepo,
		profileRepo:    params.ProfileRepo,
		eventPublisher: params.EventPublisher,
		qrcodeService:  params.QRCodeService,
		routeService:   params.RouteService,
		logger:         params.Logger,
	}
}

// CreateJob registers a new pending job.
func (s *jobService) CreateJob(ctx context.Context, input usecase.CreateJobInput) (*entity.Job, error) {
	job := &entity.Job{
		ID:                uuid.New(),
		Reference:         input.Reference,
		Status:            entity.JobStatusPending,
		PickupAddress:     input.PickupAddress,
		PickupLatitude:    input.PickupLatitude,
		PickupLongitude:   input.PickupLongitude,
		DeliveryAddress:   input.DeliveryAddress,
		DeliveryLatitude:  input.DeliveryLatitude,
		DeliveryLongitude: input.DeliveryLongitude,
		CargoDescription:  input.CargoDescription,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := s.jobRepo.CreateJob(ctx, job); err != nil {
		if errors.Is(err, repository.ErrDuplicateJob) {
			return nil, domainerrors.ErrConflict.WrapMessage("load reference already exists")
		}

		return nil, errors.Wrap(err, "failed to create job")
	}

	s.logger.Info("job created",
		slog.String("job_id", job.ID.String()),
		slog.String("reference", job.Reference),
	)

	return job, nil
}

// GetJob retrieves a job by ID. Drivers may only read jobs assigned to them.
func (s *jobService) GetJob(ctx context.Context, id uuid.UUID, actor usecase.Actor) (*entity.Job, error) {
	job, err := s.jobRepo.FindJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	if err := authorizeJobAccess(job, actor); err != nil {
		return nil, err
	}

	return job, nil
}

// authorizeJobAccess enforces per-job visibility: drivers only reach jobs
// assigned to them, every other role passes.
func authorizeJobAccess(job *entity.Job, actor usecase.Actor) error {
	if actor.Role == entity.RoleDriver && !job.IsOwnedBy(actor.ID) {
		return domainerrors.ErrJobNotOwned
	}

	return nil
}

// ListJobs retrieves jobs matching the filter, newest first.
func (s *jobService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]*entity.Job, error) {
	jobs, err := s.jobRepo.ListJobs(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return jobs, nil
}

// AssignJob assigns a pending job to a driver and publishes an event.
func (s *jobService) AssignJob(ctx context.Context, jobID, driverID uuid.UUID) (*entity.Job, error) {
	driver, err := s.profileRepo.FindProfileByID(ctx, driverID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver profile")
	}
	if driver.Role != entity.RoleDriver || !driver.IsActive {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("assignee is not an active driver")
	}

	job, err := s.jobRepo.FindJobByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by id")
	}

	if !job.Status.CanTransitionTo(entity.JobStatusAssigned) {
		return nil, domainerrors.ErrInvalidStatusTransition.WrapMessage(
			"cannot assign a job in status " + job.Status.String())
	}

	now := time.Now()
	job.Status = entity.JobStatusAssigned
	job.DriverID = &driverID
	job.AssignedAt = &now
	job.UpdatedAt = now

	if err := s.jobRepo.UpdateJob(ctx, job); err != nil {
		return nil, errors.Wrap(err, "failed to update job")
	}

	s.publishEvent(ctx, constants.JobEventAssigned, job)

	return job, nil
}

// UpdateJobStatus moves a job through its lifecycle. The matching time log
// write happens in the same transaction as the status change: moving to
// in_progress opens a log, completing closes the open one.
func (s *jobService) UpdateJobStatus(ctx context.Context, input usecase.StatusUpdateInput) (*entity.Job, error) {
	if !input.NewStatus.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid status value")
	}

	var updated *entity.Job

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		jobRepo := repoFactory.NewJobRepository()
		timeLogRepo := repoFactory.NewTimeLogRepository()

		job, err := jobRepo.FindJobByID(ctx, input.JobID)
		if err != nil {
			if errors.Is(err, repository.ErrJobNotFound) {
				return domainerrors.ErrJobNotFound
			}

			return errors.Wrap(err, "failed to find job by id")
		}

		// Drivers may only move their own jobs; admins may move any job.
		if input.ActorRole != entity.RoleAdmin && !job.IsOwnedBy(input.ActorID) {
			return domainerrors.ErrJobNotOwned
		}

		if !job.Status.CanTransitionTo(input.NewStatus) {
			return domainerrors.ErrInvalidStatusTransition.WrapMessage(
				job.Status.String() + " -> " + input.NewStatus.String())
		}

		now := time.Now()
		job.Status = input.NewStatus
		job.UpdatedAt = now

		switch input.NewStatus {
		case entity.JobStatusInProgress:
			job.StartedAt = &now
			if job.DriverID == nil {
				return domainerrors.ErrInvalidStatusTransition.WrapMessage("job has no driver")
			}
			timeLog := &entity.TimeLog{
				ID:        uuid.New(),
				JobID:     job.ID,
				DriverID:  *job.DriverID,
				StartTime: now,
				CreatedAt: now,
			}
			if err := timeLogRepo.CreateTimeLog(ctx, timeLog); err != nil {
				return errors.Wrap(err, "failed to open time log")
			}

		case entity.JobStatusCompleted:
			job.CompletedAt = &now
			openLog, err := timeLogRepo.FindOpenTimeLog(ctx, job.ID)
			if err != nil {
				return errors.Wrap(err, "failed to find open time log")
			}
			if openLog != nil {
				if err := timeLogRepo.CloseTimeLog(ctx, openLog.ID, now); err != nil {
					return errors.Wrap(err, "failed to close time log")
				}
			}

		case entity.JobStatusCancelled:
			job.CancelledAt = &now
			// A cancelled in-progress job still closes its open log so hours
			// worked are not lost.
			openLog, err := timeLogRepo.FindOpenTimeLog(ctx, job.ID)
			if err != nil {
				return errors.Wrap(err, "failed to find open time log")
			}
			if openLog != nil {
				if err := timeLogRepo.CloseTimeLog(ctx, openLog.ID, now); err != nil {
					return errors.Wrap(err, "failed to close time log")
				}
			}
		}

		if err := jobRepo.UpdateJob(ctx, job); err != nil {
			return errors.Wrap(err, "failed to update job")
		}

		updated = job

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, constants.JobEventStatusChanged, updated)

	return updated, nil
}

// GenerateTrackingQR renders the PNG QR code handed to carriers.
func (s *jobService) GenerateTrackingQR(ctx context.Context, jobID uuid.UUID, actor usecase.Actor) ([]byte, error) {
	job, err := s.GetJob(ctx, jobID, actor)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcodeService.GenerateTrackingQR(job.ID, job.Reference)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR")
	}

	return png, nil
}

// OptimizeJobRoute returns the best route between the job's pickup and
// delivery coordinates.
func (s *jobService) OptimizeJobRoute(ctx context.Context, jobID uuid.UUID, actor usecase.Actor) (*service.Route, error) {
	job, err := s.GetJob(ctx, jobID, actor)
	if err != nil {
		return nil, err
	}

	route, err := s.routeService.OptimizeRoute(ctx,
		service.RoutePoint{Latitude: job.PickupLatitude, Longitude: job.PickupLongitude},
		service.RoutePoint{Latitude: job.DeliveryLatitude, Longitude: job.DeliveryLongitude},
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to optimize route")
	}

	return route, nil
}

// publishEvent emits a job lifecycle event. Publishing is best-effort; a
// failure is logged and never fails the originating request.
func (s *jobService) publishEvent(ctx context.Context, eventType string, job *entity.Job) {
	event := &service.JobEvent{
		EventType:  eventType,
		JobID:      job.ID,
		Reference:  job.Reference,
		Status:     job.Status.String(),
		DriverID:   job.DriverID,
		OccurredAt: time.Now(),
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := s.eventPublisher.PublishJobEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish job event",
			slog.String("event_type", eventType),
			slog.String("job_id", job.ID.String()),
			slog.Any("error", err),
		)
	}
}
