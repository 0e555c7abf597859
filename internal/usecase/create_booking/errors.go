package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
)

var (
	// ErrDateInPast возвращается, когда дата бронирования раньше сегодняшнего дня
	ErrDateInPast = errors.New("create_booking: booking date is in the past")

	// ErrOutsideServiceHours возвращается, когда время не попадает в часы работы бара
	ErrOutsideServiceHours = errors.New("create_booking: time is outside service hours")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError ошибка структурной валидации заявки
// Перечисляет все нарушенные поля, а не только первое
type ValidationError struct {
	Fields []domain.FieldError
}

// Error возвращает текстовое представление ошибки
func (e *ValidationError) Error() string {
	return fmt.Sprintf("create_booking: invalid booking data (%d field(s))", len(e.Fields))
}
