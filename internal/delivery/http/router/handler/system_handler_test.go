package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fleet/config"
	"fleet/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{name: "equal", a: "2.4.0", b: "2.4.0", want: 0},
		{name: "patch behind", a: "2.4.0", b: "2.4.1", want: -1},
		{name: "major ahead", a: "3.0.0", b: "2.9.9", want: 1},
		{name: "missing segment equals zero", a: "1.2", b: "1.2.0", want: 0},
		{name: "shorter but ahead", a: "1.3", b: "1.2.9", want: 1},
		{name: "non numeric segment treated as zero", a: "1.x.0", b: "1.0.0", want: 0},
		{name: "double digit segment", a: "1.10.0", b: "1.9.0", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compareVersions(tt.a, tt.b))
		})
	}
}

func newVersionCheckContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/system/version", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newVersionedSystemHandler() *SystemHandler {
	cfg := &config.Config{}
	cfg.AppVersion = &config.AppVersionConfig{
		Latest:     map[string]string{"android": "2.6.0", "ios": "2.5.1"},
		MinForced:  map[string]string{"android": "2.0.0"},
		Deprecated: map[string]string{"android": "1.9.0"},
	}

	return NewSystemHandler(cfg)
}

func TestSystemHandler_CheckAppVersion_UpToDate(t *testing.T) {
	h := newVersionedSystemHandler()

	c, rec := newVersionCheckContext(t, `{"current_version":"2.6.0","platform":"android"}`)
	require.NoError(t, h.CheckAppVersion(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"latest_version":"2.6.0"`)
	assert.Contains(t, body, `"update_available":false`)
	assert.Contains(t, body, `"force_update":false`)
	assert.Contains(t, body, `"deprecated":false`)
}

func TestSystemHandler_CheckAppVersion_BehindLatest(t *testing.T) {
	h := newVersionedSystemHandler()

	c, rec := newVersionCheckContext(t, `{"current_version":"2.4.0","platform":"android"}`)
	require.NoError(t, h.CheckAppVersion(c))

	body := rec.Body.String()
	assert.Contains(t, body, `"update_available":true`)
	assert.Contains(t, body, `"force_update":false`)
	assert.Contains(t, body, `"deprecated":false`)
}

func TestSystemHandler_CheckAppVersion_ForcedUpdate(t *testing.T) {
	h := newVersionedSystemHandler()

	c, rec := newVersionCheckContext(t, `{"current_version":"1.9.0","platform":"android"}`)
	require.NoError(t, h.CheckAppVersion(c))

	body := rec.Body.String()
	assert.Contains(t, body, `"update_available":true`)
	assert.Contains(t, body, `"force_update":true`)
	assert.Contains(t, body, `"deprecated":true`)
}

func TestSystemHandler_CheckAppVersion_UnknownPlatform(t *testing.T) {
	h := newVersionedSystemHandler()

	c, rec := newVersionCheckContext(t, `{"current_version":"1.0.0","platform":"blackberry"}`)
	require.NoError(t, h.CheckAppVersion(c))

	body := rec.Body.String()
	assert.Contains(t, body, `"latest_version":""`)
	assert.Contains(t, body, `"update_available":false`)
	assert.Contains(t, body, `"force_update":false`)
}

func TestSystemHandler_CheckAppVersion_MissingFields(t *testing.T) {
	h := newVersionedSystemHandler()

	c, _ := newVersionCheckContext(t, `{"platform":"android"}`)
	assert.Error(t, h.CheckAppVersion(c))
}
