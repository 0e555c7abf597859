package list_cocktails

import "github.com/m04kA/Aristocrat-ReservationService/internal/domain"

// CocktailResponse HTTP response model позиции коктейльной карты
type CocktailResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Category     string   `json:"category"`
	Alcohol      int      `json:"alcohol"`
	Color        string   `json:"color"`
	Price        string   `json:"price"`
}

// FromDomainCocktail конвертирует доменный коктейль в HTTP response
func FromDomainCocktail(c *domain.Cocktail) *CocktailResponse {
	return &CocktailResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Image:        c.Image,
		Ingredients:  c.Ingredients,
		Instructions: c.Instructions,
		Category:     c.Category,
		Alcohol:      c.Alcohol,
		Color:        c.Color,
		Price:        c.Price,
	}
}

// FromDomainCocktails конвертирует список доменных коктейлей в HTTP response
func FromDomainCocktails(cocktails []domain.Cocktail) []CocktailResponse {
	result := make([]CocktailResponse, 0, len(cocktails))
	for i := range cocktails {
		result = append(result, *FromDomainCocktail(&cocktails[i]))
	}
	return result
}
