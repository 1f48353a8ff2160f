package handler

import (
	"net/http"
	"strconv"

	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	"fleet/internal/domain/repository"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JobHandler holds dependencies for job management handlers.
type JobHandler struct {
	uc usecase.JobUsecase
}

// NewJobHandler is the constructor for JobHandler, injected by Fx.
func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// actorFromContext reads the caller identity the auth middleware stored on
// the request context.
func actorFromContext(c echo.Context) (usecase.Actor, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return usecase.Actor{}, false
	}
	role, _ := c.Get(constants.ContextKeyRole).(string)

	return usecase.Actor{ID: userID, Role: entity.Role(role)}, true
}

type createJobRequest struct {
	Reference         string  `json:"reference" validate:"required"`
	PickupAddress     string  `json:"pickup_address" validate:"required"`
	PickupLatitude    float64 `json:"pickup_latitude" validate:"latitude"`
	PickupLongitude   float64 `json:"pickup_longitude" validate:"longitude"`
	DeliveryAddress   string  `json:"delivery_address" validate:"required"`
	DeliveryLatitude  float64 `json:"delivery_latitude" validate:"latitude"`
	DeliveryLongitude float64 `json:"delivery_longitude" validate:"longitude"`
	CargoDescription  string  `json:"cargo_description"`
}

// CreateJob registers a new pending job.
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid job input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	job, err := h.uc.CreateJob(c.Request().Context(), usecase.CreateJobInput{
		Reference:         req.Reference,
		PickupAddress:     req.PickupAddress,
		PickupLatitude:    req.PickupLatitude,
		PickupLongitude:   req.PickupLongitude,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryLatitude:  req.DeliveryLatitude,
		DeliveryLongitude: req.DeliveryLongitude,
		CargoDescription:  req.CargoDescription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, job, "Job created successfully")
}

// GetJob retrieves one job by ID. Drivers only see their own assignments.
func (h *JobHandler) GetJob(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	job, err := h.uc.GetJob(c.Request().Context(), id, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job retrieved successfully")
}

// ListJobs retrieves jobs filtered by the query parameters. Drivers only see
// their own assignments; admins see everything.
func (h *JobHandler) ListJobs(c echo.Context) error {
	filter := repository.JobFilter{}

	if status := c.QueryParam("status"); status != "" {
		jobStatus := entity.JobStatus(status)
		if !jobStatus.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid job status filter")
		}
		filter.Status = &jobStatus
	}

	role, _ := c.Get(constants.ContextKeyRole).(string)
	if entity.Role(role) == entity.RoleDriver {
		userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}
		filter.DriverID = &userID
	} else if driverIDStr := c.QueryParam("driver_id"); driverIDStr != "" {
		driverID, err := uuid.Parse(driverIDStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid driver ID filter")
		}
		filter.DriverID = &driverID
	}

	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(c.QueryParam("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	jobs, err := h.uc.ListJobs(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, jobs, "Jobs retrieved successfully")
}

type assignJobRequest struct {
	DriverID string `json:"driver_id" validate:"required,uuid"`
}

// AssignJob assigns a pending job to a driver.
func (h *JobHandler) AssignJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	var req assignJobRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid assignment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid driver ID")
	}

	job, err := h.uc.AssignJob(c.Request().Context(), jobID, driverID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job assigned successfully")
}

type updateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=in_progress completed cancelled"`
}

// UpdateJobStatus moves a job through its lifecycle. The actor identity comes
// from the access token; drivers may only move jobs assigned to them.
func (h *JobHandler) UpdateJobStatus(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	var req updateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}
	role, _ := c.Get(constants.ContextKeyRole).(string)

	job, err := h.uc.UpdateJobStatus(c.Request().Context(), usecase.StatusUpdateInput{
		JobID:     jobID,
		NewStatus: entity.JobStatus(req.Status),
		ActorID:   userID,
		ActorRole: entity.Role(role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, job, "Job status updated successfully")
}

// TrackingQR renders the job's tracking QR code as a PNG.
func (h *JobHandler) TrackingQR(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	png, err := h.uc.GenerateTrackingQR(c.Request().Context(), jobID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// OptimizeRoute returns the best route between the job's pickup and delivery.
func (h *JobHandler) OptimizeRoute(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	route, err := h.uc.OptimizeJobRoute(c.Request().Context(), jobID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, route, "Route optimized successfully")
}
