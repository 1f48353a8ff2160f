package service

import "context"

// RoutePoint is a single coordinate on a route.
type RoutePoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Route is the result of a directions query between pickup and delivery.
type Route struct {
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Geometry        []RoutePoint `json:"geometry,omitempty"`
	Provider        string       `json:"provider"` // "directions" or "haversine"
}

// RouteService defines the interface for route optimization between two points.
type RouteService interface {
	// OptimizeRoute returns the best route from pickup to delivery. When the
	// external directions API is unconfigured or fails, implementations fall
	// back to a straight-line estimate.
	OptimizeRoute(ctx context.Context, pickup, delivery RoutePoint) (*Route, error)
}
