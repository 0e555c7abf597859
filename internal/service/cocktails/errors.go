package cocktails

import "errors"

var (
	// ErrCocktailNotFound возвращается, когда коктейль не найден
	ErrCocktailNotFound = errors.New("cocktails: cocktail not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("cocktails: internal error")
)
