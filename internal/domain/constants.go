package domain

// Ограничения полей заявки на бронирование
const (
	MinNameLength    = 2
	MaxNameLength    = 50
	MinPhoneLength   = 10
	MinGuests        = 1
	MaxGuests        = 12
	MaxMessageLength = 500
)

// Часы работы бара: с 18:00 до 02:59 следующего дня.
// Проверка выполняется только по часовой компоненте, минуты граничных
// часов не учитываются ("02:59" проходит, "03:00" нет).
const (
	OpeningHour   = 18
	LastEntryHour = 2
)

// Форматы даты и времени
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// BookingIDPrefix префикс идентификатора подтвержденного бронирования
const BookingIDPrefix = "BOOK-"
