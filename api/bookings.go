package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookRequest struct {
	CustomerID       int64  `json:"customer_id"`
	OutboundFlightID int64  `json:"outbound_flight_id"`
	ReturnFlightID   int64  `json:"return_flight_id"`
	Class            string `json:"class"`
	MealID           int64  `json:"meal_id"`
}

type cancelRequest struct {
	CustomerID int64 `json:"customer_id"`
	FlightID   int64 `json:"flight_id"`
}

type rebookRequest struct {
	CustomerID  int64  `json:"customer_id"`
	OldFlightID int64  `json:"old_flight_id"`
	NewFlightID int64  `json:"new_flight_id"`
	NewClass    string `json:"new_class"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.book)
	router.POST("/cancel", h.cancel)
	router.POST("/rebook", h.rebook)
	router.POST("/rebook/quote", h.rebookQuote)
	router.GET("/", h.list)
	router.GET("/:id", h.get)
	router.GET("/customer/:id", h.listForCustomer)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	class, err := domain.ParseCabinClass(req.Class)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := h.service.Book(c.Request.Context(), booking.BookInput{
		CustomerID:       req.CustomerID,
		OutboundFlightID: req.OutboundFlightID,
		ReturnFlightID:   req.ReturnFlightID,
		Class:            class,
		MealID:           req.MealID,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Cancel(c.Request.Context(), req.CustomerID, req.FlightID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) rebook(c *gin.Context) {
	var req rebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	class, err := domain.ParseCabinClass(req.NewClass)
	if err != nil {
		fail(c, err)
		return
	}

	result, err := h.service.Rebook(c.Request.Context(), booking.RebookInput{
		CustomerID:  req.CustomerID,
		OldFlightID: req.OldFlightID,
		NewFlightID: req.NewFlightID,
		NewClass:    class,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *BookingHandler) rebookQuote(c *gin.Context) {
	var req rebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	class, err := domain.ParseCabinClass(req.NewClass)
	if err != nil {
		fail(c, err)
		return
	}

	fee, err := h.service.RebookQuote(c.Request.Context(), booking.RebookInput{
		CustomerID:  req.CustomerID,
		OldFlightID: req.OldFlightID,
		NewFlightID: req.NewFlightID,
		NewClass:    class,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rebook_fee": fee})
}

func (h *BookingHandler) list(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	b, err := h.service.GetBooking(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) listForCustomer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	bookings, err := h.service.ListCustomerBookings(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
