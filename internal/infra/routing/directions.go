// Package routing implements route optimization. A third-party directions
// API is proxied when configured; otherwise a straight-line haversine
// estimate stands in so the endpoint always answers.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fleet/config"
	"fleet/internal/domain/service"
	"fleet/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

// averageSpeedKmh is the cruising speed assumed for haversine estimates.
const averageSpeedKmh = 60.0

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type routeService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates the route service backed by the configured directions API.
func New(params Params) service.RouteService {
	svc := &routeService{
		logger: params.Logger,
	}

	if params.Config.Directions != nil && params.Config.Directions.BaseURL != "" {
		timeout := params.Config.Directions.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		svc.baseURL = params.Config.Directions.BaseURL
		svc.apiKey = params.Config.Directions.APIKey
		svc.httpClient = &http.Client{Timeout: timeout}
	}

	return svc
}

// OptimizeRoute returns the best route from pickup to delivery.
func (s *routeService) OptimizeRoute(ctx context.Context, pickup, delivery service.RoutePoint) (*service.Route, error) {
	if s.httpClient != nil {
		route, err := s.queryDirections(ctx, pickup, delivery)
		if err == nil {
			return route, nil
		}
		s.logger.Warn("directions query failed, falling back to straight-line estimate",
			slog.Any("error", err))
	}

	return s.haversineRoute(pickup, delivery), nil
}

// directionsResponse is the subset of the upstream payload we care about.
type directionsResponse struct {
	Routes []struct {
		DistanceMeters  float64 `json:"distance_meters"`
		DurationSeconds float64 `json:"duration_seconds"`
		Geometry        []struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
	} `json:"routes"`
}

func (s *routeService) queryDirections(ctx context.Context, pickup, delivery service.RoutePoint) (*service.Route, error) {
	url := fmt.Sprintf("%s/route?origin=%f,%f&destination=%f,%f",
		s.baseURL, pickup.Latitude, pickup.Longitude, delivery.Latitude, delivery.Longitude)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build directions request")
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "directions request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("directions API returned status %d", resp.StatusCode)
	}

	var payload directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode directions response")
	}
	if len(payload.Routes) == 0 {
		return nil, errors.New("directions API returned no routes")
	}

	best := payload.Routes[0]
	geometry := make([]service.RoutePoint, 0, len(best.Geometry))
	for _, p := range best.Geometry {
		geometry = append(geometry, service.RoutePoint{Latitude: p.Lat, Longitude: p.Lng})
	}

	return &service.Route{
		DistanceMeters:  best.DistanceMeters,
		DurationSeconds: best.DurationSeconds,
		Geometry:        geometry,
		Provider:        "directions",
	}, nil
}

// haversineRoute estimates distance as the great-circle line between the two
// points and duration from an assumed average speed.
func (s *routeService) haversineRoute(pickup, delivery service.RoutePoint) *service.Route {
	distance := geo.DistanceHaversine(
		orb.Point{pickup.Longitude, pickup.Latitude},
		orb.Point{delivery.Longitude, delivery.Latitude},
	)
	durationSeconds := distance / 1000 / averageSpeedKmh * 3600

	return &service.Route{
		DistanceMeters:  distance,
		DurationSeconds: durationSeconds,
		Geometry:        []service.RoutePoint{pickup, delivery},
		Provider:        "haversine",
	}
}
