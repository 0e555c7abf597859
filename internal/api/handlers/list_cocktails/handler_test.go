package list_cocktails

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Aristocrat-ReservationService/internal/infra/catalog"
	cocktailsService "github.com/m04kA/Aristocrat-ReservationService/internal/service/cocktails"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	svc := cocktailsService.NewService(catalog.NewRepository(), nopLogger{})
	h := NewHandler(svc, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/cocktails", h.Handle).Methods(http.MethodGet)
	return r
}

func getCocktails(t *testing.T, r http.Handler, query string) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cocktails"+query, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_ListCocktails_All(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "")

	require.Equal(t, http.StatusOK, w.Code)

	var resp []CocktailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 7)
}

func TestHandler_ListCocktails_ByID(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "?id=1")

	require.Equal(t, http.StatusOK, w.Code)

	var resp CocktailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.ID)
	assert.Equal(t, "Sunset Margarita", resp.Name)
	assert.NotEmpty(t, resp.Ingredients)
	assert.NotEmpty(t, resp.Instructions)
}

func TestHandler_ListCocktails_NotFound(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "?id=999")

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, msgCocktailNotFound, resp["error"])
}

func TestHandler_ListCocktails_ByCategory(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "?category=Tropical")

	require.Equal(t, http.StatusOK, w.Code)

	var resp []CocktailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	for _, c := range resp {
		assert.Equal(t, "Tropical", c.Category)
	}
}

func TestHandler_ListCocktails_CategoryCaseInsensitive(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "?category=tropical")

	require.Equal(t, http.StatusOK, w.Code)

	var resp []CocktailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListCocktails_UnknownCategoryIsEmptyList(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "?category=NonExistent")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestHandler_ListCocktails_IDTakesPrecedenceOverCategory(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "?id=1&category=Tropical")

	require.Equal(t, http.StatusOK, w.Code)

	// Один коктейль, а не отфильтрованный список
	var resp CocktailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.ID)
}

func TestHandler_ListCocktails_EmptyParamsAreIgnored(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "?id=&category=")

	require.Equal(t, http.StatusOK, w.Code)

	var resp []CocktailResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 7)
}

func TestHandler_ListCocktails_CacheHeaders(t *testing.T) {
	r := setupRouter(t)

	w := getCocktails(t, r, "")

	assert.Contains(t, w.Header().Get("Cache-Control"), "public")
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
