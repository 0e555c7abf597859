package bookingform

import "errors"

var (
	// ErrSubmissionInFlight возвращается при попытке отправки, пока предыдущая не завершилась
	ErrSubmissionInFlight = errors.New("bookingform: submission already in flight")

	// ErrNotIdle возвращается при попытке отправки не из состояния idle
	ErrNotIdle = errors.New("bookingform: controller is not idle")

	// ErrLocalValidation возвращается, когда заявка не прошла локальную валидацию
	// Подробности нарушений доступны через FieldErrors
	ErrLocalValidation = errors.New("bookingform: local validation failed")
)
