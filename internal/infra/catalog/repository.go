package catalog

import (
	"context"

	"github.com/m04kA/Aristocrat-ReservationService/internal/domain"
)

// Repository репозиторий коктейльной карты
// Карта статична и загружается в память при старте сервиса,
// поэтому репозиторий только читает и безопасен для конкурентного доступа
type Repository struct {
	cocktails []domain.Cocktail
}

// NewRepository создает репозиторий с картой бара по умолчанию
func NewRepository() *Repository {
	return &Repository{cocktails: defaultCocktails}
}

// NewRepositoryWithData создает репозиторий с переданной картой (для тестов)
func NewRepositoryWithData(cocktails []domain.Cocktail) *Repository {
	return &Repository{cocktails: cocktails}
}

// List возвращает все коктейли карты
func (r *Repository) List(_ context.Context) ([]domain.Cocktail, error) {
	result := make([]domain.Cocktail, len(r.cocktails))
	copy(result, r.cocktails)
	return result, nil
}

// GetByID возвращает коктейль по идентификатору
func (r *Repository) GetByID(_ context.Context, id string) (*domain.Cocktail, error) {
	for i := range r.cocktails {
		if r.cocktails[i].ID == id {
			c := r.cocktails[i]
			return &c, nil
		}
	}
	return nil, ErrCocktailNotFound
}

// ListByCategory возвращает коктейли указанной категории
// Сравнение категории без учета регистра. Для неизвестной категории
// возвращается пустой список, а не ошибка
func (r *Repository) ListByCategory(_ context.Context, category string) ([]domain.Cocktail, error) {
	result := make([]domain.Cocktail, 0)
	for i := range r.cocktails {
		if r.cocktails[i].MatchesCategory(category) {
			result = append(result, r.cocktails[i])
		}
	}
	return result, nil
}
