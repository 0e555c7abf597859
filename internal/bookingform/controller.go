package bookingform

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
)

// Задержки автоматического возврата в idle
const (
	DefaultSuccessResetDelay = 3 * time.Second
	DefaultErrorResetDelay   = 5 * time.Second
)

// DefaultGuests количество гостей, предзаполненное в новой форме
const DefaultGuests = 2

// Config настройки контроллера формы
type Config struct {
	// SuccessResetDelay задержка возврата в idle после успеха (0 = по умолчанию)
	SuccessResetDelay time.Duration
	// ErrorResetDelay задержка возврата в idle после ошибки (0 = по умолчанию)
	ErrorResetDelay time.Duration
	// OnClose вызывается один раз по таймауту после успешной отправки
	// (например, чтобы закрыть модальное окно). Опционально
	OnClose func()
}

// Controller контроллер формы бронирования
// Управляет жизненным циклом одной отправки: idle -> loading -> success/error.
// Защита от параллельных отправок только клиентская: сервер не дедуплицирует
// заявки и idempotency-ключей нет
type Controller struct {
	mu sync.Mutex

	state        State
	fields       domain.BookingRequest
	fieldErrors  []domain.FieldError
	lastErr      error
	confirmation *domain.BookingConfirmation

	// Счетчик поколений: результат запроса или таймер из прошлого
	// поколения молча игнорируется, а не роняет контроллер
	episode uint64

	resetTimer *time.Timer

	sender            BookingSender
	logger            Logger
	successResetDelay time.Duration
	errorResetDelay   time.Duration
	onClose           func()
}

// NewController создает контроллер формы в состоянии idle
func NewController(sender BookingSender, cfg Config, logger Logger) *Controller {
	successDelay := cfg.SuccessResetDelay
	if successDelay <= 0 {
		successDelay = DefaultSuccessResetDelay
	}

	errorDelay := cfg.ErrorResetDelay
	if errorDelay <= 0 {
		errorDelay = DefaultErrorResetDelay
	}

	return &Controller{
		state:             StateIdle,
		fields:            domain.BookingRequest{Guests: DefaultGuests},
		sender:            sender,
		logger:            logger,
		successResetDelay: successDelay,
		errorResetDelay:   errorDelay,
		onClose:           cfg.OnClose,
	}
}

// State возвращает текущее состояние жизненного цикла
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Fields возвращает текущие значения полей формы
func (c *Controller) Fields() domain.BookingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// FieldErrors возвращает ошибки последней локальной валидации
func (c *Controller) FieldErrors() []domain.FieldError {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors
}

// LastError возвращает ошибку последней неудачной отправки
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Confirmation возвращает подтверждение последней успешной отправки
func (c *Controller) Confirmation() *domain.BookingConfirmation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmation
}

// SetFields обновляет значения полей формы
// Во время отправки поля заблокированы
func (c *Controller) SetFields(fields domain.BookingRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateLoading {
		return ErrSubmissionInFlight
	}

	c.fields = fields
	return nil
}

// Submit отправляет заявку на бронирование
// Из состояния loading повторная отправка невозможна: за один эпизод
// loading выполняется не более одного сетевого вызова.
// При нарушениях локальной валидации контроллер остается в idle,
// ошибки полей доступны через FieldErrors
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()

	switch c.state {
	case StateLoading:
		c.mu.Unlock()
		return ErrSubmissionInFlight
	case StateIdle:
		// Продолжаем
	default:
		c.mu.Unlock()
		return ErrNotIdle
	}

	if errs := c.fields.Validate(); len(errs) > 0 {
		c.fieldErrors = errs
		c.mu.Unlock()
		c.logger.Warn("Submit: local validation failed, %d field(s)", len(errs))
		return ErrLocalValidation
	}

	c.fieldErrors = nil
	c.state = StateLoading
	c.episode++
	episode := c.episode

	// Копия заявки: она неизменяема в рамках этой попытки,
	// даже если поля формы поменяются после завершения
	req := c.fields
	c.mu.Unlock()

	c.logger.Info("Submit: sending booking request date=%s, time=%s, guests=%d",
		req.Date, req.Time, req.Guests)

	confirmation, err := c.sender.SubmitBooking(ctx, &req)

	c.mu.Lock()
	defer c.mu.Unlock()

	// Контроллер успели сбросить, пока шел запрос: результат не отображаем
	if c.episode != episode || c.state != StateLoading {
		return nil
	}

	if err != nil {
		c.logger.Error("Submit: booking failed: %v", err)
		c.lastErr = err
		c.state = StateError
		c.scheduleResetLocked(c.errorResetDelay, StateError)
		return err
	}

	c.logger.Info("Submit: booking confirmed id=%s", confirmation.ID)
	c.confirmation = confirmation
	c.state = StateSuccess
	c.scheduleResetLocked(c.successResetDelay, StateSuccess)
	return nil
}

// Retry возвращает контроллер из состояния error в idle немедленно,
// не дожидаясь таймаута. Поля формы сохраняются
func (c *Controller) Retry() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateError {
		return
	}

	c.resetToIdleLocked(false)
}

// Close закрывает форму по инициативе пользователя из состояния success
// Возврат в idle немедленный, поля очищаются, OnClose не вызывается
// (пользователь уже закрыл форму сам)
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateSuccess {
		return
	}

	c.resetToIdleLocked(true)
}

// Stop отменяет отложенный сброс (для корректного завершения)
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}
}

// scheduleResetLocked планирует автоматический возврат в idle
// Вызывается только под мьютексом
func (c *Controller) scheduleResetLocked(delay time.Duration, fromState State) {
	episode := c.episode

	c.resetTimer = time.AfterFunc(delay, func() {
		c.mu.Lock()

		if c.episode != episode {
			c.mu.Unlock()
			return
		}

		fireClose := fromState == StateSuccess && c.onClose != nil
		c.resetToIdleLocked(fromState == StateSuccess)
		c.mu.Unlock()

		// Колбэк вызывается вне мьютекса: он может обращаться к контроллеру
		if fireClose {
			c.onClose()
		}
	})
}

// resetToIdleLocked возвращает контроллер в idle
// clearFields: после успеха форма очищается, после ошибки введенные
// значения сохраняются для повторной отправки
func (c *Controller) resetToIdleLocked(clearFields bool) {
	c.episode++
	c.state = StateIdle
	c.lastErr = nil
	c.confirmation = nil

	if c.resetTimer != nil {
		c.resetTimer.Stop()
		c.resetTimer = nil
	}

	if clearFields {
		c.fields = domain.BookingRequest{Guests: DefaultGuests}
	}
}
