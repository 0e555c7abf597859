package cocktails

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
	catalogRepo "github.com/m04kA/Aristocrat-ReservationService/internal/infra/catalog"
)

// Service сервис коктейльной карты
type Service struct {
	catalog CatalogRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса коктейльной карты
func NewService(catalog CatalogRepository, logger Logger) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
	}
}

// List возвращает коктейли карты
// При пустой категории возвращается вся карта. Категория сравнивается
// без учета регистра; для неизвестной категории возвращается пустой список
func (s *Service) List(ctx context.Context, category string) ([]domain.Cocktail, error) {
	if category == "" {
		result, err := s.catalog.List(ctx)
		if err != nil {
			s.logger.Error("List: failed to list cocktails: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return result, nil
	}

	result, err := s.catalog.ListByCategory(ctx, category)
	if err != nil {
		s.logger.Error("List: failed to list cocktails by category=%s: %v", category, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	s.logger.Info("List: category=%s, found %d cocktail(s)", category, len(result))
	return result, nil
}

// GetByID возвращает коктейль по идентификатору
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Cocktail, error) {
	cocktail, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrCocktailNotFound) {
			s.logger.Warn("GetByID: cocktail id=%s not found", id)
			return nil, ErrCocktailNotFound
		}
		s.logger.Error("GetByID: repository error for cocktail id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}
	return cocktail, nil
}
