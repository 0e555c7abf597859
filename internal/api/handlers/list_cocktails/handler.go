package list_cocktails

import (
	"errors"
	"net/http"

	"github.com/m04kA/Aristocrat-ReservationService/internal/api/handlers"
	cocktailsService "github.com/m04kA/Aristocrat-ReservationService/internal/service/cocktails"
)

const (
	msgCocktailNotFound = "Cocktail not found"
	msgInternalError    = "Internal server error"
)

// Карта статична, ответы можно долго кэшировать на CDN
const cacheControlValue = "public, max-age=3600, s-maxage=86400"

type Handler struct {
	service CocktailsService
	logger  Logger
}

func NewHandler(service CocktailsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cocktails?id=...&category=...
// Параметр id имеет приоритет над category
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", cacheControlValue)

	id := r.URL.Query().Get("id")
	category := r.URL.Query().Get("category")

	if id != "" {
		cocktail, err := h.service.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, cocktailsService.ErrCocktailNotFound) {
				handlers.RespondNotFound(w, msgCocktailNotFound)
				return
			}
			h.logger.Error("GET /cocktails - Failed to get cocktail id=%s: %v", id, err)
			handlers.RespondInternalError(w, msgInternalError)
			return
		}

		handlers.RespondJSON(w, http.StatusOK, FromDomainCocktail(cocktail))
		return
	}

	cocktails, err := h.service.List(r.Context(), category)
	if err != nil {
		h.logger.Error("GET /cocktails - Failed to list cocktails: %v", err)
		handlers.RespondInternalError(w, msgInternalError)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainCocktails(cocktails))
}
