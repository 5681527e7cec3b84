package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/service/booking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Book(ctx context.Context, input booking.BookInput) (*booking.BookingResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingResult), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, customerID, flightID int64) (*booking.BookingResult, error) {
	args := m.Called(ctx, customerID, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingResult), args.Error(1)
}

func (m *MockBookingUseCase) Rebook(ctx context.Context, input booking.RebookInput) (*booking.BookingResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingResult), args.Error(1)
}

func (m *MockBookingUseCase) RebookQuote(ctx context.Context, input booking.RebookInput) (float64, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockBookingUseCase) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) ListCustomerBookings(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func newBookingRouter(service booking.BookingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(service).Register(router.Group("/bookings"))
	return router
}

func TestBookingHandler_Book_Created(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	result := &booking.BookingResult{
		Booking: &domain.Booking{ID: 1, Reference: "ref-1", CustomerID: 7, OutboundFlightID: 3, Class: domain.ClassEconomy, OutboundPrice: 120.0},
		Durable: true,
	}
	mockService.On("Book", mock.Anything, booking.BookInput{
		CustomerID:       7,
		OutboundFlightID: 3,
		Class:            domain.ClassEconomy,
	}).Return(result, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{
		"customer_id":        7,
		"outbound_flight_id": 3,
		"class":              "ECONOMY",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got booking.BookingResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "ref-1", got.Booking.Reference)
	assert.True(t, got.Durable)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_Book_InvalidClass(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	body, _ := json.Marshal(map[string]interface{}{
		"customer_id":        7,
		"outbound_flight_id": 3,
		"class":              "SUPERSONIC",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Book", mock.Anything, mock.Anything)
}

func TestBookingHandler_Book_CapacityConflict(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	mockService.On("Book", mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded).Once()

	body, _ := json.Marshal(map[string]interface{}{
		"customer_id":        7,
		"outbound_flight_id": 3,
		"class":              "ECONOMY",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_Cancel_OK(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	result := &booking.BookingResult{
		Booking: &domain.Booking{ID: 1, Reference: "ref-1", Cancelled: true, CancellationFee: 25.0},
		Durable: true,
	}
	mockService.On("Cancel", mock.Anything, int64(7), int64(3)).Return(result, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 7, "flight_id": 3})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_Cancel_NotFound(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	mockService.On("Cancel", mock.Anything, int64(7), int64(3)).Return(nil, domain.ErrNotFound).Once()

	body, _ := json.Marshal(map[string]interface{}{"customer_id": 7, "flight_id": 3})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_RebookQuote_OK(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	mockService.On("RebookQuote", mock.Anything, booking.RebookInput{
		CustomerID:  7,
		OldFlightID: 3,
		NewFlightID: 4,
		NewClass:    domain.ClassBusiness,
	}).Return(42.5, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{
		"customer_id":   7,
		"old_flight_id": 3,
		"new_flight_id": 4,
		"new_class":     "BUSINESS",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/rebook/quote", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42.5")
	mockService.AssertExpectations(t)
}

func TestBookingHandler_Get_BadID(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "GetBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_ListForCustomer_OK(t *testing.T) {
	mockService := &MockBookingUseCase{}
	router := newBookingRouter(mockService)

	bookings := []domain.Booking{{ID: 1, CustomerID: 7}, {ID: 2, CustomerID: 7}}
	mockService.On("ListCustomerBookings", mock.Anything, int64(7)).Return(bookings, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/customer/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	mockService.AssertExpectations(t)
}
