package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet/internal/delivery/http/validator"
	"fleet/internal/domain/constants"
	"fleet/internal/domain/entity"
	domainerrors "fleet/internal/domain/errors"
	"fleet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocationUsecase struct {
	recorded []usecase.PointInput
}

func (s *stubLocationUsecase) RecordPoints(_ context.Context, _ uuid.UUID, points []usecase.PointInput) (int, error) {
	s.recorded = append(s.recorded, points...)

	return len(points), nil
}

func (s *stubLocationUsecase) GetDriverLatest(context.Context, uuid.UUID) (*entity.LocationPoint, error) {
	return nil, nil
}

func (s *stubLocationUsecase) GetJobTrack(context.Context, uuid.UUID, usecase.Actor) ([]*entity.LocationPoint, error) {
	return nil, nil
}

func newLocationContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/location", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(constants.ContextKeyUserID, uuid.New())
	c.Set(constants.ContextKeyRole, entity.RoleDriver.String())

	return c, rec
}

func TestLocationHandler_UpdateLocation_AcceptsBoundaryCoordinates(t *testing.T) {
	uc := &stubLocationUsecase{}
	h := NewLocationHandler(uc)

	c, rec := newLocationContext(`{"points":[
		{"latitude":90,"longitude":180,"heading_deg":360,"recorded_at":1735689600000},
		{"latitude":-90,"longitude":-180,"recorded_at":1735689601000}
	]}`)
	require.NoError(t, h.UpdateLocation(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, uc.recorded, 2)
}

func TestLocationHandler_UpdateLocation_RejectsLatitudeOutOfRange(t *testing.T) {
	uc := &stubLocationUsecase{}
	h := NewLocationHandler(uc)

	c, _ := newLocationContext(`{"points":[{"latitude":90.5,"longitude":121.56,"recorded_at":1735689600000}]}`)
	err := h.UpdateLocation(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	assert.Empty(t, uc.recorded)
}

func TestLocationHandler_UpdateLocation_RejectsLongitudeOutOfRange(t *testing.T) {
	uc := &stubLocationUsecase{}
	h := NewLocationHandler(uc)

	c, _ := newLocationContext(`{"points":[{"latitude":25.04,"longitude":-180.1,"recorded_at":1735689600000}]}`)
	err := h.UpdateLocation(c)
	require.Error(t, err)
	assert.Empty(t, uc.recorded)
}

func TestLocationHandler_UpdateLocation_RejectsHeadingPast360(t *testing.T) {
	uc := &stubLocationUsecase{}
	h := NewLocationHandler(uc)

	c, _ := newLocationContext(`{"points":[{"latitude":25.04,"longitude":121.56,"heading_deg":361,"recorded_at":1735689600000}]}`)
	err := h.UpdateLocation(c)
	require.Error(t, err)
	assert.Empty(t, uc.recorded)
}
