package get_performance

import (
	"net/http"
	"time"

	"github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers"
)

// SiteInfo сведения об окружении, известные на момент старта процесса
// Передаются в handler явно, а не читаются из глобального состояния
type SiteInfo struct {
	Region    string
	BuildTime string
	Version   string
}

// PerformanceResponse HTTP response model сведений о сервисе
type PerformanceResponse struct {
	ServerTime    int64    `json:"serverTime"` // unix millis
	Region        string   `json:"region"`
	BuildTime     string   `json:"buildTime"`
	Version       string   `json:"version"`
	Optimizations []string `json:"optimizations"`
}

// Включенные оптимизации раздачи
var optimizations = []string{
	"In-memory catalog",
	"CDN cache headers",
	"Stateless booking endpoint",
}

type Handler struct {
	info         SiteInfo
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(info SiteInfo, logger Logger) *Handler {
	return &Handler{
		info:         info,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/performance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, PerformanceResponse{
		ServerTime:    h.timeProvider.Now().UnixMilli(),
		Region:        h.info.Region,
		BuildTime:     h.info.BuildTime,
		Version:       h.info.Version,
		Optimizations: optimizations,
	})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
