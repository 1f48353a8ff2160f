// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"fleet/config"
	"fleet/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves the unauthenticated service endpoints.
type SystemHandler struct {
	appVersion *config.AppVersionConfig
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(cfg *config.Config) *SystemHandler {
	return &SystemHandler{appVersion: cfg.AppVersion}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

type checkAppVersionRequest struct {
	CurrentVersion string `json:"current_version" validate:"required"`
	Platform       string `json:"platform" validate:"required"`
}

type checkAppVersionResponse struct {
	LatestVersion   string `json:"latest_version"`
	UpdateAvailable bool   `json:"update_available"`
	ForceUpdate     bool   `json:"force_update"`
	Deprecated      bool   `json:"deprecated"`
}

// CheckAppVersion reports whether a client build is current, must update
// before continuing, or is running a deprecated version.
func (h *SystemHandler) CheckAppVersion(c echo.Context) error {
	var req checkAppVersionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid version check input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out := checkAppVersionResponse{}
	if h.appVersion != nil {
		if latest, ok := h.appVersion.Latest[req.Platform]; ok {
			out.LatestVersion = latest
			out.UpdateAvailable = compareVersions(req.CurrentVersion, latest) < 0
		}
		if minForced, ok := h.appVersion.MinForced[req.Platform]; ok {
			out.ForceUpdate = compareVersions(req.CurrentVersion, minForced) < 0
		}
		if deprecated, ok := h.appVersion.Deprecated[req.Platform]; ok {
			out.Deprecated = compareVersions(req.CurrentVersion, deprecated) <= 0
		}
	}

	return response.Success(c, http.StatusOK, out, "Version check completed")
}

// compareVersions compares dotted numeric versions. Non-numeric segments
// compare as zero; a missing segment compares as zero, so "1.2" == "1.2.0".
func compareVersions(a, b string) int {
	aParts := strings.Split(a, ".")
	bParts := strings.Split(b, ".")

	for i := 0; i < len(aParts) || i < len(bParts); i++ {
		var aNum, bNum int
		if i < len(aParts) {
			aNum, _ = strconv.Atoi(strings.TrimSpace(aParts[i]))
		}
		if i < len(bParts) {
			bNum, _ = strconv.Atoi(strings.TrimSpace(bParts[i]))
		}

		if aNum != bNum {
			if aNum < bNum {
				return -1
			}

			return 1
		}
	}

	return 0
}
