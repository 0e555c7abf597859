package bookingform

import (
	"context"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
)

// BookingSender интерфейс отправки заявки на endpoint бронирований
// Реализуется клиентом integrations/bookingapi
type BookingSender interface {
	SubmitBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
