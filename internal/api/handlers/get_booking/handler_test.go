package get_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{}) {}
func (nopLogger) Warn(format string, v ...interface{}) {}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	h := NewHandler(nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandler_GetBooking_MissingID(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgBookingIDRequired, resp["error"])
}

func TestHandler_GetBooking_EmptyID(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?id=", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetBooking_AnyIDReturnsStub(t *testing.T) {
	ids := []string{"BOOK-1783876543210", "42", "whatever"}

	for _, id := range ids {
		r := setupRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings?id="+id, nil)
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotImplemented, w.Code)

		var resp StubResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, msgFeatureComingSoon, resp.Message)
	}
}
