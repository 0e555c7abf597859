package bookingapi

import "github.com/m04kA/Aristocrat-ReservationService/internal/domain"

// bookingPayload тело POST запроса к endpoint бронирований
type bookingPayload struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Date    string  `json:"date"`
	Time    string  `json:"time"`
	Guests  int     `json:"guests"`
	Message *string `json:"message,omitempty"`
}

// confirmationResponse тело успешного ответа endpoint бронирований
type confirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Booking struct {
		ID     string `json:"id"`
		Date   string `json:"date"`
		Time   string `json:"time"`
		Guests int    `json:"guests"`
	} `json:"booking"`
}

// errorResponse тело ответа с ошибкой
// Для ошибок схемы сервер дополнительно перечисляет нарушенные поля
type errorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}
