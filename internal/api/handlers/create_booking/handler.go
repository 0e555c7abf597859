package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers"
	createBooking "github.com/m04kA/Aristocrat-ReservationService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Données de réservation invalides"
	msgInvalidData        = "Données de réservation invalides"
	msgDateInPast         = "La date de réservation ne peut pas être dans le passé"
	msgInvalidTime        = "Horaire de réservation invalide"
	msgInternalError      = "Une erreur est survenue lors de la réservation"
	msgBookingConfirmed   = "Réservation confirmée avec succès"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *createBooking.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Schema validation failed: %d field(s)", len(validationErr.Fields))
			handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:   msgInvalidData,
				Details: validationErr.Fields,
			})

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrOutsideServiceHours):
			h.logger.Warn("POST /bookings - Time outside service hours: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: error=%v", err)
			handlers.RespondInternalError(w, msgInternalError)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, time=%s, guests=%d",
		result.ID, result.Date, result.Time, result.Guests)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
