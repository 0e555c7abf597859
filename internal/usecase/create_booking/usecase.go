package create_booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
)

// Причины отклонения для метрик
const (
	rejectReasonSchema      = "schema"
	rejectReasonPastDate    = "past_date"
	rejectReasonInvalidTime = "invalid_time"
)

// UseCase use case создания бронирования
// Stateless: заявка нигде не сохраняется, подтверждение живет только в ответе
type UseCase struct {
	processingDelay time.Duration
	timeProvider    TimeProvider
	idGenerator     IDGenerator
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// processingDelay имитирует задержку обработки (отправка письма и т.п.),
// косметическая, не механизм ретраев
func NewUseCase(processingDelay time.Duration, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		processingDelay: processingDelay,
		timeProvider:    &RealTimeProvider{},
		idGenerator:     &TimestampIDGenerator{},
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет создание бронирования
// Порядок проверок фиксирован: схема, затем дата не в прошлом, затем часы работы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: name=%s, date=%s, time=%s, guests=%d",
		req.Name, req.Date, req.Time, req.Guests)

	// 1. Структурная валидация по общей схеме
	// Клиентская валидация формы только удобство, источник истины здесь
	if fieldErrs := req.toDomain().Validate(); len(fieldErrs) > 0 {
		uc.logger.Warn("CreateBooking: schema validation failed, %d field(s)", len(fieldErrs))
		uc.metrics.IncBookingRejected(rejectReasonSchema)
		return nil, &ValidationError{Fields: fieldErrs}
	}

	now := uc.timeProvider.Now()

	// 2. Дата не в прошлом (сравниваются только календарные даты)
	bookingDate, err := req.toDomain().ParsedDate()
	if err != nil {
		// Схема уже проверила формат, сюда попадать не должны
		return nil, fmt.Errorf("%w: failed to parse date: %v", ErrInternal, err)
	}
	if domain.IsDateInPast(bookingDate, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date)
		uc.metrics.IncBookingRejected(rejectReasonPastDate)
		return nil, ErrDateInPast
	}

	// 3. Время в пределах часов работы (18:00 - 02:59, только по часу)
	if !domain.IsWithinServiceHours(req.Time) {
		uc.logger.Warn("CreateBooking: time %s is outside service hours", req.Time)
		uc.metrics.IncBookingRejected(rejectReasonInvalidTime)
		return nil, ErrOutsideServiceHours
	}

	// Заявка принята. Хранилища нет: бронирование только логируется
	uc.logger.Info("Booking received: name=%s, email=%s, phone=%s, date=%s, time=%s, guests=%d",
		req.Name, req.Email, req.Phone, req.Date, req.Time, req.Guests)

	// Имитируем задержку отправки письма
	if err := uc.sleep(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	confirmation := domain.BookingConfirmation{
		ID:     uc.idGenerator.NextID(now),
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	}

	uc.metrics.IncBookingAccepted()
	uc.logger.Info("CreateBooking: confirmed booking id=%s", confirmation.ID)

	return &Response{
		ID:     confirmation.ID,
		Date:   confirmation.Date,
		Time:   confirmation.Time,
		Guests: confirmation.Guests,
	}, nil
}

// sleep ждет processingDelay с учетом отмены контекста
func (uc *UseCase) sleep(ctx context.Context) error {
	if uc.processingDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(uc.processingDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TimestampIDGenerator генерирует идентификаторы вида "BOOK-<unix millis>"
// Не является стойким к коллизиям при одновременных запросах в один миг,
// уникальность не входит в контракт подтверждения
type TimestampIDGenerator struct{}

// NextID возвращает следующий идентификатор бронирования
func (g *TimestampIDGenerator) NextID(now time.Time) string {
	return domain.BookingIDPrefix + strconv.FormatInt(now.UnixMilli(), 10)
}
