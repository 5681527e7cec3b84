package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openfare/fareledger/api"
	"github.com/openfare/fareledger/config"
	"github.com/openfare/fareledger/internal/service/booking"
	"github.com/openfare/fareledger/internal/service/catalog"
	"github.com/openfare/fareledger/internal/service/flights"
)

// Run starts the HTTP server and blocks until the context is canceled or
// the server fails.
func Run(ctx context.Context, cfg *config.Config, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, catalogSvc catalog.CatalogUseCase) error {
	router := NewRouter(flightSvc, bookingSvc, catalogSvc)

	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter wires every handler onto a gin engine.
func NewRouter(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, catalogSvc catalog.CatalogUseCase) *gin.Engine {
	router := gin.Default()

	flightHandler := api.NewFlightHandler(flightSvc)
	bookingHandler := api.NewBookingHandler(bookingSvc)
	catalogHandler := api.NewCatalogHandler(catalogSvc)

	flightHandler.Register(router.Group("/flights"))
	bookingHandler.Register(router.Group("/bookings"))
	catalogHandler.RegisterCustomers(router.Group("/customers"))
	catalogHandler.RegisterMeals(router.Group("/meals"))

	return router
}
