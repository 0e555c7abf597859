package bookingapi

import (
	"errors"
	"fmt"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
)

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе сервера
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")

	// ErrServerError возвращается, когда сервер ответил 5xx
	ErrServerError = errors.New("bookingapi client: server error")
)

// SchemaRejectionError сервер отклонил заявку из-за нарушений схемы
// Перечисляет нарушенные поля из ответа сервера
type SchemaRejectionError struct {
	Message string
	Fields  []domain.FieldError
}

// Error возвращает текстовое представление ошибки
func (e *SchemaRejectionError) Error() string {
	return fmt.Sprintf("bookingapi client: schema rejected (%d field(s)): %s", len(e.Fields), e.Message)
}

// RejectionError сервер отклонил заявку по бизнес-правилу
// (дата в прошлом, время вне часов работы)
type RejectionError struct {
	Message string
}

// Error возвращает текстовое представление ошибки
func (e *RejectionError) Error() string {
	return fmt.Sprintf("bookingapi client: rejected: %s", e.Message)
}
