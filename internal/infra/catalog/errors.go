package catalog

import "errors"

var (
	// ErrCocktailNotFound возвращается, когда коктейль с указанным ID не найден
	ErrCocktailNotFound = errors.New("catalog: cocktail not found")
)
