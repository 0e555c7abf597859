package create_booking

import (
	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
	createBooking "github.com/m04kA/Aristocrat-ReservationService/internal/usecase/create_booking"
	"github.com/m04kA/Aristocrat-ReservationService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Date    string  `json:"date"` // "2026-09-15"
	Time    string  `json:"time"` // "19:00"
	Guests  int     `json:"guests"`
	Message *string `json:"message,omitempty"`
}

// BookingResponse HTTP response model подтвержденного бронирования
type BookingResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Booking BookingConfirmation `json:"booking"`
}

// BookingConfirmation данные подтверждения в HTTP ответе
type BookingConfirmation struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Guests int    `json:"guests"`
}

// ValidationErrorResponse HTTP response model ошибки валидации схемы
type ValidationErrorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Формат даты и времени здесь не проверяется: этим занимается общая схема
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Date:    r.Date,
		Time:    types.TimeString(r.Time),
		Guests:  r.Guests,
		Message: r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		Success: true,
		Message: msgBookingConfirmed,
		Booking: BookingConfirmation{
			ID:     resp.ID,
			Date:   resp.Date,
			Time:   resp.Time.String(),
			Guests: resp.Guests,
		},
	}
}
