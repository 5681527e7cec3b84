package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/service/flights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) ListAll(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Availability(ctx context.Context, id int64, class domain.CabinClass) (int, error) {
	args := m.Called(ctx, id, class)
	return args.Int(0), args.Error(1)
}

func (m *MockFlightUseCase) Quote(ctx context.Context, id int64, class domain.CabinClass) (float64, error) {
	args := m.Called(ctx, id, class)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockFlightUseCase) Create(ctx context.Context, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) Remove(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newFlightRouter(service flights.FlightUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewFlightHandler(service).Register(router.Group("/flights"))
	return router
}

func TestFlightHandler_List_OK(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	listed := []domain.Flight{{ID: 1, FlightNumber: "FL1"}, {ID: 2, FlightNumber: "FL2"}}
	mockService.On("List", mock.Anything).Return(listed, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.Flight
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_Get_NotFound(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	mockService.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_Availability_OK(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	mockService.On("Availability", mock.Anything, int64(1), domain.ClassBusiness).Return(4, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/1/availability?class=BUSINESS", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"remaining_seats":4`)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_Availability_UnknownClass(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/1/availability?class=COACH", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "Availability", mock.Anything, mock.Anything, mock.Anything)
}

func TestFlightHandler_Price_OK(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	mockService.On("Quote", mock.Anything, int64(1), domain.ClassEconomy).Return(115.0, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/flights/1/price?class=ECONOMY", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":115`)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_Create_Created(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	departure := time.Date(2026, 11, 1, 10, 0, 0, 0, time.UTC)
	created := &domain.Flight{ID: 5, FlightNumber: "FL5"}
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(input flights.CreateFlightInput) bool {
		return input.FlightNumber == "FL5" && input.Type == domain.FlightTypeCommercial && input.ClassCapacities[domain.ClassBusiness] == 20
	})).Return(created, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{
		"flight_number":  "FL5",
		"origin":         "JFK",
		"destination":    "LAX",
		"departure_date": departure,
		"type":           "COMMERCIAL",
		"economy_price":  100.0,
		"total_capacity": 100,
		"class_capacities": map[string]int{
			"ECONOMY":  80,
			"BUSINESS": 20,
		},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/flights/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestFlightHandler_Remove_NoContent(t *testing.T) {
	mockService := &MockFlightUseCase{}
	router := newFlightRouter(mockService)

	mockService.On("Remove", mock.Anything, int64(1)).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/flights/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
