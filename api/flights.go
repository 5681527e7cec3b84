package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/service/flights"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type createFlightRequest struct {
	FlightNumber    string         `json:"flight_number"`
	Origin          string         `json:"origin"`
	Destination     string         `json:"destination"`
	DepartureDate   time.Time      `json:"departure_date"`
	Type            string         `json:"type"`
	EconomyPrice    float64        `json:"economy_price"`
	TotalCapacity   int            `json:"total_capacity"`
	ClassCapacities map[string]int `json:"class_capacities"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/all", h.listAll)
	router.GET("/:id", h.get)
	router.GET("/:id/availability", h.availability)
	router.GET("/:id/price", h.price)
	router.POST("/", h.create)
	router.DELETE("/:id", h.remove)
}

func (h *FlightHandler) list(c *gin.Context) {
	flights, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) listAll(c *gin.Context) {
	flights, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) availability(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	class, err := domain.ParseCabinClass(c.Query("class"))
	if err != nil {
		fail(c, err)
		return
	}
	remaining, err := h.service.Availability(c.Request.Context(), id, class)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "class": class, "remaining_seats": remaining})
}

func (h *FlightHandler) price(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	class, err := domain.ParseCabinClass(c.Query("class"))
	if err != nil {
		fail(c, err)
		return
	}
	price, err := h.service.Quote(c.Request.Context(), id, class)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"flight_id": id, "class": class, "price": price})
}

func (h *FlightHandler) create(c *gin.Context) {
	var req createFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	capacities := make(map[domain.CabinClass]int, len(req.ClassCapacities))
	for class, capacity := range req.ClassCapacities {
		capacities[domain.CabinClass(class)] = capacity
	}

	flight, err := h.service.Create(c.Request.Context(), flights.CreateFlightInput{
		FlightNumber:    req.FlightNumber,
		Origin:          req.Origin,
		Destination:     req.Destination,
		DepartureDate:   req.DepartureDate,
		Type:            domain.FlightType(req.Type),
		EconomyPrice:    req.EconomyPrice,
		TotalCapacity:   req.TotalCapacity,
		ClassCapacities: capacities,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
