package create_booking

import "time"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator интерфейс генерации идентификаторов бронирований
type IDGenerator interface {
	NextID(now time.Time) string
}

// Metrics интерфейс счетчиков бронирований
type Metrics interface {
	IncBookingAccepted()
	IncBookingRejected(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// NopMetrics заглушка метрик, используется когда метрики выключены
type NopMetrics struct{}

func (NopMetrics) IncBookingAccepted()              {}
func (NopMetrics) IncBookingRejected(reason string) {}
