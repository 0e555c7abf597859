package create_booking

import (
	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
	"github.com/m04kA/Aristocrat-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name    string           // Имя гостя
	Email   string           // Email для подтверждения
	Phone   string           // Контактный телефон
	Date    string           // Дата бронирования "YYYY-MM-DD"
	Time    types.TimeString // Время прихода "HH:MM"
	Guests  int              // Количество гостей
	Message *string          // Пожелания (опционально)
}

// toDomain конвертирует запрос в доменную заявку
func (r *Request) toDomain() *domain.BookingRequest {
	return &domain.BookingRequest{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Date:    r.Date,
		Time:    r.Time,
		Guests:  r.Guests,
		Message: r.Message,
	}
}

// Response модель ответа с подтверждением бронирования
type Response struct {
	ID     string           // Сгенерированный идентификатор
	Date   string           // Подтвержденная дата
	Time   types.TimeString // Подтвержденное время
	Guests int              // Количество гостей
}
