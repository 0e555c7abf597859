package domain

import "strings"

// Cocktail позиция коктейльной карты бара
type Cocktail struct {
	ID           string
	Name         string
	Description  string
	Image        string
	Ingredients  []string
	Instructions []string
	Category     string
	Alcohol      int // крепость в процентах
	Color        string
	Price        string
}

// MatchesCategory проверяет принадлежность коктейля категории
// Сравнение без учета регистра
func (c *Cocktail) MatchesCategory(category string) bool {
	return strings.EqualFold(c.Category, category)
}
