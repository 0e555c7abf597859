package get_performance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}

type fakeTimeProvider struct {
	now time.Time
}

func (p *fakeTimeProvider) Now() time.Time {
	return p.now
}

func TestHandler_GetPerformance(t *testing.T) {
	now := time.Date(2030, 6, 15, 12, 0, 0, 0, time.UTC)

	h := NewHandler(SiteInfo{
		Region:    "cdg1",
		BuildTime: "2026-08-01T00:00:00Z",
		Version:   "1.2.0",
	}, nopLogger{})
	h.timeProvider = &fakeTimeProvider{now: now}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/performance", nil)
	h.Handle(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp PerformanceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, now.UnixMilli(), resp.ServerTime)
	assert.Equal(t, "cdg1", resp.Region)
	assert.Equal(t, "2026-08-01T00:00:00Z", resp.BuildTime)
	assert.Equal(t, "1.2.0", resp.Version)
	assert.NotEmpty(t, resp.Optimizations)
}
