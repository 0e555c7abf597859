package cocktails

import (
	"context"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
)

// CatalogRepository интерфейс репозитория коктейльной карты
type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Cocktail, error)
	GetByID(ctx context.Context, id string) (*domain.Cocktail, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Cocktail, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
