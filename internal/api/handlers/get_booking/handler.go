package get_booking

import (
	"net/http"

	"github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers"
)

const (
	msgBookingIDRequired = "ID de réservation requis"
	msgFeatureComingSoon = "Feature coming soon"
)

// StubResponse ответ заглушки получения бронирования
type StubResponse struct {
	Message string `json:"message"`
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/bookings?id=...
// Заглушка: хранилища бронирований нет, поэтому поиск не реализован.
// Любой непустой id получает 501, отсутствие id - 400.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := r.URL.Query().Get("id")
	if bookingID == "" {
		h.logger.Warn("GET /bookings - Missing booking ID")
		handlers.RespondBadRequest(w, msgBookingIDRequired)
		return
	}

	h.logger.Info("GET /bookings - Lookup requested for booking_id=%s (not implemented)", bookingID)
	handlers.RespondJSON(w, http.StatusNotImplemented, StubResponse{Message: msgFeatureComingSoon})
}
