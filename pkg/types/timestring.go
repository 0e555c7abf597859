package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString строковое представление времени в формате "HH:MM"
// Используется для передачи времени бронирования без привязки к дате и таймзоне
type TimeString string

// NewTimeString создает TimeString из time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет, что строка соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time string format: %q", string(t))
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return fmt.Errorf("invalid hour in time string: %q", string(t))
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return fmt.Errorf("invalid minute in time string: %q", string(t))
	}

	return nil
}

// Hour возвращает часовую компоненту времени
// Для невалидной строки возвращает -1
func (t TimeString) Hour() int {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return -1
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return -1
	}
	return hour
}

// Minute возвращает минутную компоненту времени
// Для невалидной строки возвращает -1
func (t TimeString) Minute() int {
	parts := strings.Split(string(t), ":")
	if len(parts) != 2 {
		return -1
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return -1
	}
	return minute
}

// IsZero проверяет, что время не задано
func (t TimeString) IsZero() bool {
	return string(t) == ""
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}
