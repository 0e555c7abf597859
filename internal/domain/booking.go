package domain

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/m04kA/Aristocrat-ReservationService/pkg/types"
)

// Сообщения об ошибках валидации полей.
// Показываются пользователю, поэтому на французском.
const (
	MsgNameTooShort      = "Le nom doit contenir au moins 2 caractères"
	MsgNameTooLong       = "Le nom ne peut pas dépasser 50 caractères"
	MsgEmailInvalid      = "Adresse email invalide"
	MsgPhoneInvalid      = "Numéro de téléphone invalide"
	MsgDateRequired      = "Veuillez sélectionner une date"
	MsgDateInvalidFormat = "Format de date invalide, YYYY-MM-DD attendu"
	MsgTimeRequired      = "Veuillez sélectionner une heure"
	MsgTimeInvalidFormat = "Format d'heure invalide, HH:MM attendu"
	MsgGuestsTooFew      = "Au moins 1 personne requise"
	MsgGuestsTooMany     = "Pour plus de 12 personnes, contactez-nous directement"
	MsgMessageTooLong    = "Le message ne peut pas dépasser 500 caractères"
)

var (
	emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegexp = regexp.MustCompile(`^[0-9\s\+\-\(\)]+$`)
)

// BookingRequest заявка на бронирование столика
// Неизменяема в рамках одной попытки отправки. Дата хранится строкой
// "YYYY-MM-DD", как она приходит из формы и уходит на сервер.
type BookingRequest struct {
	Name    string
	Email   string
	Phone   string
	Date    string
	Time    types.TimeString
	Guests  int
	Message *string
}

// FieldError ошибка валидации конкретного поля заявки
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate выполняет структурную валидацию заявки
// Возвращает ошибки по всем нарушенным полям сразу, а не только первую.
// Одна и та же схема применяется формой (удобство пользователя) и
// сервером (источник истины), определения ограничений не расходятся.
func (r *BookingRequest) Validate() []FieldError {
	var errs []FieldError

	if utf8.RuneCountInString(r.Name) < MinNameLength {
		errs = append(errs, FieldError{Field: "name", Message: MsgNameTooShort})
	} else if utf8.RuneCountInString(r.Name) > MaxNameLength {
		errs = append(errs, FieldError{Field: "name", Message: MsgNameTooLong})
	}

	if !emailRegexp.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: MsgEmailInvalid})
	}

	if utf8.RuneCountInString(r.Phone) < MinPhoneLength || !phoneRegexp.MatchString(r.Phone) {
		errs = append(errs, FieldError{Field: "phone", Message: MsgPhoneInvalid})
	}

	if r.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: MsgDateRequired})
	} else if _, err := time.Parse(DateFormat, r.Date); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: MsgDateInvalidFormat})
	}

	if r.Time.IsZero() {
		errs = append(errs, FieldError{Field: "time", Message: MsgTimeRequired})
	} else if err := r.Time.Validate(); err != nil {
		errs = append(errs, FieldError{Field: "time", Message: MsgTimeInvalidFormat})
	}

	if r.Guests < MinGuests {
		errs = append(errs, FieldError{Field: "guests", Message: MsgGuestsTooFew})
	} else if r.Guests > MaxGuests {
		errs = append(errs, FieldError{Field: "guests", Message: MsgGuestsTooMany})
	}

	if r.Message != nil && utf8.RuneCountInString(*r.Message) > MaxMessageLength {
		errs = append(errs, FieldError{Field: "message", Message: MsgMessageTooLong})
	}

	return errs
}

// ParsedDate возвращает дату бронирования как time.Time
// Предполагает, что заявка прошла Validate
func (r *BookingRequest) ParsedDate() (time.Time, error) {
	return time.Parse(DateFormat, r.Date)
}

// IsWithinServiceHours проверяет, что время попадает в часы работы бара
// Сравнивается только часовая компонента (окно переходит через полночь)
func IsWithinServiceHours(t types.TimeString) bool {
	h := t.Hour()
	return h >= OpeningHour || (h >= 0 && h <= LastEntryHour)
}

// IsDateInPast проверяет, что дата строго раньше сегодняшнего дня
// Сравниваются только календарные даты, время суток игнорируется
func IsDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// BookingConfirmation подтверждение принятого бронирования
// Ничего не сохраняется: подтверждение живет только в ответе на запрос
type BookingConfirmation struct {
	ID     string
	Date   string
	Time   types.TimeString
	Guests int
}
