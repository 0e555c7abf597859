package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
	"github.com/m04kA/Aristocrat-ReservationService/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент endpoint бронирований
// Используется контроллером формы для отправки заявок
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SubmitBooking отправляет заявку на бронирование
// Возвращает подтверждение либо типизированную ошибку отклонения
func (c *Client) SubmitBooking(ctx context.Context, req *domain.BookingRequest) (*domain.BookingConfirmation, error) {
	payload := bookingPayload{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time.String(),
		Guests:  req.Guests,
		Message: req.Message,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/api/v1/bookings"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return nil, c.decodeRejection(resp.Body)
	case resp.StatusCode >= 500:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("SubmitBooking: server error %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status code %d", ErrServerError, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var confirmation confirmationResponse
	if err := json.NewDecoder(resp.Body).Decode(&confirmation); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if !confirmation.Success {
		return nil, fmt.Errorf("%w: success flag is not set", ErrInvalidResponse)
	}

	c.log.Info("SubmitBooking: booking confirmed id=%s", confirmation.Booking.ID)

	return &domain.BookingConfirmation{
		ID:     confirmation.Booking.ID,
		Date:   confirmation.Booking.Date,
		Time:   types.TimeString(confirmation.Booking.Time),
		Guests: confirmation.Booking.Guests,
	}, nil
}

// decodeRejection разбирает тело ответа 400 в типизированную ошибку
func (c *Client) decodeRejection(r io.Reader) error {
	var rejection errorResponse
	if err := json.NewDecoder(r).Decode(&rejection); err != nil {
		return fmt.Errorf("%w: failed to decode rejection: %v", ErrInvalidResponse, err)
	}

	if len(rejection.Details) > 0 {
		c.log.Warn("SubmitBooking: schema rejected, %d field(s)", len(rejection.Details))
		return &SchemaRejectionError{
			Message: rejection.Error,
			Fields:  rejection.Details,
		}
	}

	c.log.Warn("SubmitBooking: rejected: %s", rejection.Error)
	return &RejectionError{Message: rejection.Error}
}
