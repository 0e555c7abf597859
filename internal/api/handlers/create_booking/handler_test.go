package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createBooking "github.com/m04kA/Aristocrat-ReservationService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type failingUseCase struct {
	err error
}

func (u *failingUseCase) Execute(_ context.Context, _ *createBooking.Request) (*createBooking.Response, error) {
	return nil, u.err
}

func setupRouter(t *testing.T, uc CreateBookingUseCase) http.Handler {
	t.Helper()

	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/bookings", h.Handle).Methods(http.MethodPost)
	return r
}

// setupRealRouter собирает handler с настоящим use case (без задержки)
func setupRealRouter(t *testing.T) http.Handler {
	t.Helper()
	uc := createBooking.NewUseCase(0, createBooking.NopMetrics{}, nopLogger{})
	return setupRouter(t, uc)
}

func postBooking(t *testing.T, r http.Handler, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":   "Jean Dupont",
		"email":  "jean@x.fr",
		"phone":  "+33612345678",
		"date":   time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		"time":   "19:00",
		"guests": 4,
	}
}

func TestHandler_CreateBooking_Success(t *testing.T) {
	r := setupRealRouter(t)

	w := postBooking(t, r, validPayload())

	require.Equal(t, http.StatusOK, w.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, msgBookingConfirmed, resp.Message)
	assert.Equal(t, "19:00", resp.Booking.Time)
	assert.Equal(t, 4, resp.Booking.Guests)
	assert.Contains(t, resp.Booking.ID, "BOOK-")
}

func TestHandler_CreateBooking_DateInPast(t *testing.T) {
	r := setupRealRouter(t)

	payload := validPayload()
	payload["date"] = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	w := postBooking(t, r, payload)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgDateInPast, resp["error"])
	assert.NotContains(t, resp, "details")
}

func TestHandler_CreateBooking_InvalidTime(t *testing.T) {
	r := setupRealRouter(t)

	payload := validPayload()
	payload["time"] = "10:00"

	w := postBooking(t, r, payload)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidTime, resp["error"])
}

func TestHandler_CreateBooking_SchemaFailure(t *testing.T) {
	r := setupRealRouter(t)

	payload := validPayload()
	payload["email"] = "not-an-email"

	w := postBooking(t, r, payload)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidData, resp.Error)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "email", resp.Details[0].Field)
}

func TestHandler_CreateBooking_SchemaFailure_MultipleFields(t *testing.T) {
	r := setupRealRouter(t)

	payload := validPayload()
	payload["name"] = "J"
	payload["guests"] = 13

	w := postBooking(t, r, payload)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 2)

	fields := []string{resp.Details[0].Field, resp.Details[1].Field}
	assert.ElementsMatch(t, []string{"name", "guests"}, fields)
}

func TestHandler_CreateBooking_InvalidBody(t *testing.T) {
	r := setupRealRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgInvalidRequestBody, resp["error"])
}

func TestHandler_CreateBooking_InternalError(t *testing.T) {
	r := setupRouter(t, &failingUseCase{err: fmt.Errorf("%w: boom", createBooking.ErrInternal)})

	w := postBooking(t, r, validPayload())

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgInternalError, resp["error"])
}

func TestHandler_CreateBooking_UnknownErrorIsInternal(t *testing.T) {
	r := setupRouter(t, &failingUseCase{err: errors.New("something unexpected")})

	w := postBooking(t, r, validPayload())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
