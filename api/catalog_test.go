package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/ledger"
	"github.com/openfare/fareledger/internal/service/catalog"
	"github.com/stretchr/testify/assert"
)

// catalog handler tests run against a real service on an empty ledger.
func newCatalogRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	service := catalog.NewCatalogService(ledger.New(domain.DefaultPricingPolicy(), domain.DefaultFeePolicy()), nil)
	handler := NewCatalogHandler(service)
	router := gin.New()
	handler.RegisterCustomers(router.Group("/customers"))
	handler.RegisterMeals(router.Group("/meals"))
	return router
}

func TestCatalogHandler_CustomerLifecycle(t *testing.T) {
	router := newCatalogRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"name":           "alice",
		"email":          "alice@example.com",
		"phone":          "555-0100",
		"age":            35,
		"gender":         "F",
		"preferred_meal": "VEGETARIAN",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created domain.Customer
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/customers/1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// removed customers stay readable by id but drop out of the active list
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/customers/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestCatalogHandler_CreateCustomer_InvalidAge(t *testing.T) {
	router := newCatalogRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"name":  "bob",
		"email": "bob@example.com",
		"age":   -1,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/customers/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogHandler_MealLifecycle(t *testing.T) {
	router := newCatalogRouter()

	body, _ := json.Marshal(map[string]interface{}{
		"name":        "pasta",
		"description": "penne with tomato",
		"price":       12.99,
		"category":    "VEGETARIAN",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/meals/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meals/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var meal domain.Meal
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &meal))
	assert.Equal(t, "pasta", meal.Name)
	assert.Equal(t, 12.99, meal.Price)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meals/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
