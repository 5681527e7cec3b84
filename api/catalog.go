package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/service/catalog"
)

// CatalogHandler exposes the customer and meal registries.
type CatalogHandler struct {
	service catalog.CatalogUseCase
}

type createCustomerRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	PreferredMeal string `json:"preferred_meal"`
}

type createMealRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) RegisterCustomers(router *gin.RouterGroup) {
	router.POST("/", h.createCustomer)
	router.GET("/", h.listCustomers)
	router.GET("/all", h.listAllCustomers)
	router.GET("/:id", h.getCustomer)
	router.DELETE("/:id", h.removeCustomer)
}

func (h *CatalogHandler) RegisterMeals(router *gin.RouterGroup) {
	router.POST("/", h.createMeal)
	router.GET("/", h.listMeals)
	router.GET("/all", h.listAllMeals)
	router.GET("/:id", h.getMeal)
	router.DELETE("/:id", h.removeMeal)
}

func (h *CatalogHandler) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.service.CreateCustomer(c.Request.Context(), catalog.CreateCustomerInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Age:           req.Age,
		Gender:        req.Gender,
		PreferredMeal: domain.MealCategory(req.PreferredMeal),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CatalogHandler) listCustomers(c *gin.Context) {
	customers, err := h.service.ListCustomers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CatalogHandler) listAllCustomers(c *gin.Context) {
	customers, err := h.service.ListAllCustomers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CatalogHandler) getCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	customer, err := h.service.GetCustomer(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CatalogHandler) removeCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.RemoveCustomer(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) createMeal(c *gin.Context) {
	var req createMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := h.service.CreateMeal(c.Request.Context(), catalog.CreateMealInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    domain.MealCategory(req.Category),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, meal)
}

func (h *CatalogHandler) listMeals(c *gin.Context) {
	meals, err := h.service.ListMeals(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *CatalogHandler) listAllMeals(c *gin.Context) {
	meals, err := h.service.ListAllMeals(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (h *CatalogHandler) getMeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	meal, err := h.service.GetMeal(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (h *CatalogHandler) removeMeal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.RemoveMeal(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
