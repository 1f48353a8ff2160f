// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"fleet/internal/delivery/http/middleware"
	"fleet/internal/delivery/http/response"
	"fleet/internal/delivery/http/router/handler"
	"fleet/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteDef declares one endpoint. The table is interpreted at registration
// time and served back by the admin routes endpoint, so the route inventory
// clients see is always the one actually registered.
type RouteDef struct {
	Method       string           `json:"method"`
	Path         string           `json:"path"`
	Auth         bool             `json:"auth"`
	RequiredRole entity.Role      `json:"required_role,omitempty"`
	RateLimit    bool             `json:"rate_limit"`
	Handler      echo.HandlerFunc `json:"-"`
}

// RouterParams holds all handlers and middleware injected by Fx.
type RouterParams struct {
	fx.In

	SystemHandler       *handler.SystemHandler
	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	JobHandler          *handler.JobHandler
	LocationHandler     *handler.LocationHandler
	DeviceHandler       *handler.DeviceHandler
	NotificationHandler *handler.NotificationHandler
	AttachmentHandler   *handler.AttachmentHandler
	StatsHandler        *handler.StatsHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds the route table and the middleware applied per entry.
type router struct {
	routes              []RouteDef
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	routes := []RouteDef{
		{Method: http.MethodGet, Path: "/health", Handler: handler.HealthCheck},
		{Method: http.MethodPost, Path: "/version/check", RateLimit: true, Handler: params.SystemHandler.CheckAppVersion},

		{Method: http.MethodPost, Path: "/auth/login", RateLimit: true, Handler: params.AuthHandler.Login},
		{Method: http.MethodPost, Path: "/auth/refresh", RateLimit: true, Handler: params.AuthHandler.RefreshToken},

		{Method: http.MethodGet, Path: "/profiles/me", Auth: true, RateLimit: true, Handler: params.ProfileHandler.GetMe},

		{Method: http.MethodGet, Path: "/jobs", Auth: true, RateLimit: true, Handler: params.JobHandler.ListJobs},
		{Method: http.MethodGet, Path: "/jobs/:id", Auth: true, RateLimit: true, Handler: params.JobHandler.GetJob},
		{Method: http.MethodPatch, Path: "/jobs/:id/status", Auth: true, RateLimit: true, Handler: params.JobHandler.UpdateJobStatus},
		{Method: http.MethodGet, Path: "/jobs/:id/qrcode", Auth: true, RateLimit: true, Handler: params.JobHandler.TrackingQR},
		{Method: http.MethodGet, Path: "/jobs/:id/route", Auth: true, RateLimit: true, Handler: params.JobHandler.OptimizeRoute},
		{Method: http.MethodGet, Path: "/jobs/:id/track", Auth: true, RateLimit: true, Handler: params.LocationHandler.JobTrack},
		{Method: http.MethodGet, Path: "/jobs/:id/attachments", Auth: true, RateLimit: true, Handler: params.AttachmentHandler.List},
		{Method: http.MethodPost, Path: "/jobs/:id/attachments", Auth: true, RateLimit: true, Handler: params.AttachmentHandler.Upload},

		{Method: http.MethodGet, Path: "/attachments/:id", Auth: true, RateLimit: true, Handler: params.AttachmentHandler.Download},
		{Method: http.MethodDelete, Path: "/attachments/:id", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.AttachmentHandler.Delete},

		{Method: http.MethodPost, Path: "/location", Auth: true, RequiredRole: entity.RoleDriver, RateLimit: true, Handler: params.LocationHandler.UpdateLocation},
		{Method: http.MethodPost, Path: "/heartbeat", Auth: true, RateLimit: true, Handler: params.DeviceHandler.Heartbeat},

		{Method: http.MethodPost, Path: "/devices", Auth: true, RateLimit: true, Handler: params.DeviceHandler.RegisterDevice},
		{Method: http.MethodGet, Path: "/devices", Auth: true, RateLimit: true, Handler: params.DeviceHandler.ListDevices},
		{Method: http.MethodPut, Path: "/devices/:id/token", Auth: true, RateLimit: true, Handler: params.DeviceHandler.UpdatePushToken},
		{Method: http.MethodDelete, Path: "/devices/:id", Auth: true, RateLimit: true, Handler: params.DeviceHandler.DeactivateDevice},

		{Method: http.MethodGet, Path: "/notifications", Auth: true, RateLimit: true, Handler: params.NotificationHandler.ListNotifications},
		{Method: http.MethodPatch, Path: "/notifications/:id/read", Auth: true, RateLimit: true, Handler: params.NotificationHandler.MarkRead},

		{Method: http.MethodPost, Path: "/admin/profiles", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.ProfileHandler.CreateProfile},
		{Method: http.MethodGet, Path: "/admin/profiles/:id", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.ProfileHandler.GetProfile},
		{Method: http.MethodPatch, Path: "/admin/profiles/:id", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.ProfileHandler.UpdateProfile},
		{Method: http.MethodPost, Path: "/admin/jobs", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.JobHandler.CreateJob},
		{Method: http.MethodPost, Path: "/admin/jobs/:id/assign", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.JobHandler.AssignJob},
		{Method: http.MethodGet, Path: "/admin/drivers/:id/location", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.LocationHandler.DriverLatest},
		{Method: http.MethodPost, Path: "/admin/notifications", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.NotificationHandler.SendNotification},
		{Method: http.MethodGet, Path: "/admin/stats", Auth: true, RequiredRole: entity.RoleAdmin, RateLimit: true, Handler: params.StatsHandler.Dashboard},
	}

	return &router{
		routes:              routes,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The limiter
// runs after the auth middleware so authenticated callers are keyed by user
// id rather than by IP.
func (r *router) RegisterRoutes(e *echo.Echo) {
	for _, route := range r.routes {
		var mws []echo.MiddlewareFunc
		if route.Auth {
			mws = append(mws, r.authMiddleware.Authenticate)
		}
		if route.RequiredRole != "" {
			mws = append(mws, r.authMiddleware.RequireRole(route.RequiredRole))
		}
		if route.RateLimit {
			mws = append(mws, r.rateLimitMiddleware.Handle)
		}

		e.Add(route.Method, route.Path, route.Handler, mws...)
	}

	// Route inventory for the admin panel, generated from the same table the
	// registrations above came from.
	e.GET("/admin/routes", r.listRoutes,
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
		r.rateLimitMiddleware.Handle,
	)
}

func (r *router) listRoutes(c echo.Context) error {
	return response.Success(c, http.StatusOK, r.routes, "Routes retrieved successfully")
}
