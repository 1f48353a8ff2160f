package handler

import (
	"net/http"

	"fleet/internal/delivery/http/response"
	"fleet/internal/domain/constants"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LocationHandler holds dependencies for GPS history handlers.
type LocationHandler struct {
	uc usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

type locationPointRequest struct {
	JobID      *string `json:"job_id" validate:"omitempty,uuid"`
	Latitude   float64 `json:"latitude" validate:"latitude"`
	Longitude  float64 `json:"longitude" validate:"longitude"`
	SpeedKmh   float64 `json:"speed_kmh" validate:"omitempty,gte=0"`
	HeadingDeg float64 `json:"heading_deg" validate:"omitempty,heading"`
	RecordedAt int64   `json:"recorded_at" validate:"required"`
}

type updateLocationRequest struct {
	Points []locationPointRequest `json:"points" validate:"required,min=1,dive"`
}

// UpdateLocation bulk-inserts a batch of GPS samples for the calling driver.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req updateLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	points := make([]usecase.PointInput, 0, len(req.Points))
	for _, p := range req.Points {
		point := usecase.PointInput{
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			SpeedKmh:   p.SpeedKmh,
			HeadingDeg: p.HeadingDeg,
			RecordedAt: p.RecordedAt,
		}
		if p.JobID != nil {
			jobID, err := uuid.Parse(*p.JobID)
			if err != nil {
				return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID on location point")
			}
			point.JobID = &jobID
		}
		points = append(points, point)
	}

	stored, err := h.uc.RecordPoints(c.Request().Context(), userID, points)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"stored": stored}, "Location points recorded")
}

// DriverLatest returns the most recent position reported by a driver.
func (h *LocationHandler) DriverLatest(c echo.Context) error {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid driver ID")
	}

	point, err := h.uc.GetDriverLatest(c.Request().Context(), driverID)
	if err != nil {
		return errors.WithStack(err)
	}
	if point == nil {
		return response.NotFound(c, "NOT_FOUND", "Driver has not reported a position")
	}

	return response.Success(c, http.StatusOK, point, "Latest position retrieved")
}

// JobTrack returns every position recorded against a job, oldest first.
// Drivers only see tracks of their own assignments.
func (h *LocationHandler) JobTrack(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid job ID")
	}

	actor, ok := actorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	points, err := h.uc.GetJobTrack(c.Request().Context(), jobID, actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, points, "Job track retrieved")
}
