package domain

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Aristocrat-ReservationService/pkg/types"
)

func validRequest() BookingRequest {
	return BookingRequest{
		Name:   "Jean Dupont",
		Email:  "jean@x.fr",
		Phone:  "+33612345678",
		Date:   "2030-06-15",
		Time:   types.TimeString("19:00"),
		Guests: 4,
	}
}

func fieldMessage(errs []FieldError, field string) string {
	for _, e := range errs {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func TestBookingRequest_Validate_OK(t *testing.T) {
	req := validRequest()
	assert.Empty(t, req.Validate())
}

func TestBookingRequest_Validate_OptionalMessage(t *testing.T) {
	req := validRequest()

	msg := "Table près de la fenêtre, s'il vous plaît"
	req.Message = &msg
	assert.Empty(t, req.Validate())

	long := strings.Repeat("a", MaxMessageLength+1)
	req.Message = &long
	errs := req.Validate()
	require.Len(t, errs, 1)
	assert.Equal(t, MsgMessageTooLong, fieldMessage(errs, "message"))
}

func TestBookingRequest_Validate_FieldViolations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *BookingRequest)
		field   string
		message string
	}{
		{
			name:    "name too short",
			mutate:  func(r *BookingRequest) { r.Name = "J" },
			field:   "name",
			message: MsgNameTooShort,
		},
		{
			name:    "name too long",
			mutate:  func(r *BookingRequest) { r.Name = strings.Repeat("a", MaxNameLength+1) },
			field:   "name",
			message: MsgNameTooLong,
		},
		{
			name:    "email without at sign",
			mutate:  func(r *BookingRequest) { r.Email = "not-an-email" },
			field:   "email",
			message: MsgEmailInvalid,
		},
		{
			name:    "email without domain dot",
			mutate:  func(r *BookingRequest) { r.Email = "jean@fr" },
			field:   "email",
			message: MsgEmailInvalid,
		},
		{
			name:    "phone too short",
			mutate:  func(r *BookingRequest) { r.Phone = "+336123" },
			field:   "phone",
			message: MsgPhoneInvalid,
		},
		{
			name:    "phone with letters",
			mutate:  func(r *BookingRequest) { r.Phone = "+33 six douze" },
			field:   "phone",
			message: MsgPhoneInvalid,
		},
		{
			name:    "date missing",
			mutate:  func(r *BookingRequest) { r.Date = "" },
			field:   "date",
			message: MsgDateRequired,
		},
		{
			name:    "date bad format",
			mutate:  func(r *BookingRequest) { r.Date = "15/06/2030" },
			field:   "date",
			message: MsgDateInvalidFormat,
		},
		{
			name:    "time missing",
			mutate:  func(r *BookingRequest) { r.Time = "" },
			field:   "time",
			message: MsgTimeRequired,
		},
		{
			name:    "time bad format",
			mutate:  func(r *BookingRequest) { r.Time = "25:99" },
			field:   "time",
			message: MsgTimeInvalidFormat,
		},
		{
			name:    "guests too few",
			mutate:  func(r *BookingRequest) { r.Guests = 0 },
			field:   "guests",
			message: MsgGuestsTooFew,
		},
		{
			name:    "guests too many",
			mutate:  func(r *BookingRequest) { r.Guests = 13 },
			field:   "guests",
			message: MsgGuestsTooMany,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			errs := req.Validate()
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}
}

func TestBookingRequest_Validate_EnumeratesAllViolations(t *testing.T) {
	req := BookingRequest{} // все поля нарушены, кроме message

	errs := req.Validate()
	require.Len(t, errs, 6)

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"name", "email", "phone", "date", "time", "guests"}, fields)
}

func TestBookingRequest_Validate_UnicodeNameLength(t *testing.T) {
	req := validRequest()

	// Две руны, но больше двух байт
	req.Name = "Éé"
	assert.Empty(t, req.Validate())
}

func TestIsWithinServiceHours(t *testing.T) {
	valid := []int{18, 19, 20, 21, 22, 23, 0, 1, 2}
	for _, h := range valid {
		ts := types.TimeString(fmt.Sprintf("%02d:00", h))
		assert.True(t, IsWithinServiceHours(ts), "hour %d must be within service hours", h)
	}

	invalid := []int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17}
	for _, h := range invalid {
		ts := types.TimeString(fmt.Sprintf("%02d:00", h))
		assert.False(t, IsWithinServiceHours(ts), "hour %d must be outside service hours", h)
	}
}

func TestIsWithinServiceHours_BoundaryMinutes(t *testing.T) {
	// Проверяется только час: минуты граничного часа не закрывают окно
	assert.True(t, IsWithinServiceHours(types.TimeString("02:59")))
	assert.False(t, IsWithinServiceHours(types.TimeString("03:00")))
	assert.False(t, IsWithinServiceHours(types.TimeString("17:59")))
	assert.True(t, IsWithinServiceHours(types.TimeString("18:00")))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2030, 6, 15, 23, 30, 0, 0, time.UTC)

	yesterday := time.Date(2030, 6, 14, 0, 0, 0, 0, time.UTC)
	assert.True(t, IsDateInPast(yesterday, now))

	// Сегодня - не прошлое, даже поздно вечером
	today := time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDateInPast(today, now))

	tomorrow := time.Date(2030, 6, 16, 0, 0, 0, 0, time.UTC)
	assert.False(t, IsDateInPast(tomorrow, now))
}
