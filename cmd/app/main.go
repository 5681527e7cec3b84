package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/openfare/fareledger/config"
	"github.com/openfare/fareledger/internal/bootstrap"
	"github.com/openfare/fareledger/internal/cache"
	"github.com/openfare/fareledger/internal/domain"
	"github.com/openfare/fareledger/internal/kafka"
	"github.com/openfare/fareledger/internal/ledger"
	"github.com/openfare/fareledger/internal/repository"
	"github.com/openfare/fareledger/internal/service/booking"
	"github.com/openfare/fareledger/internal/service/catalog"
	"github.com/openfare/fareledger/internal/service/flights"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	repo := repository.NewSnapshotRepository(pool)
	if err := repo.Init(ctx); err != nil {
		log.Fatalf("init schema: %v", err)
	}

	book := ledger.New(pricingPolicy(cfg.Pricing), feePolicy(cfg.Fees))
	snapshot, err := repo.Load(ctx)
	if err != nil {
		log.Fatalf("load snapshot: %v", err)
	}
	if err := book.Restore(snapshot); err != nil {
		log.Fatalf("restore ledger: %v", err)
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightService := flights.NewFlightService(book, repo, redisCache)
	bookingService := booking.NewBookingService(
		book,
		repo,
		producer,
		redisCache,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)
	catalogService := catalog.NewCatalogService(book, repo)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService, catalogService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func pricingPolicy(cfg config.PricingConfig) domain.PricingPolicy {
	if len(cfg.Brackets) == 0 {
		return domain.DefaultPricingPolicy()
	}
	p := domain.PricingPolicy{BaseMultiplier: cfg.BaseMultiplier}
	if p.BaseMultiplier == 0 {
		p.BaseMultiplier = 1.0
	}
	for _, b := range cfg.Brackets {
		p.Brackets = append(p.Brackets, domain.Bracket{MaxDaysBefore: b.MaxDaysBefore, Value: b.Value})
	}
	return p
}

func feePolicy(cfg config.FeesConfig) domain.FeePolicy {
	if len(cfg.CancellationBrackets) == 0 && len(cfg.RebookPenaltyBrackets) == 0 {
		return domain.DefaultFeePolicy()
	}
	p := domain.FeePolicy{
		CancellationBase:  cfg.CancellationBase,
		RebookPenaltyBase: cfg.RebookPenaltyBase,
	}
	for _, b := range cfg.CancellationBrackets {
		p.CancellationBrackets = append(p.CancellationBrackets, domain.Bracket{MaxDaysBefore: b.MaxDaysBefore, Value: b.Value})
	}
	for _, b := range cfg.RebookPenaltyBrackets {
		p.RebookPenaltyBrackets = append(p.RebookPenaltyBrackets, domain.Bracket{MaxDaysBefore: b.MaxDaysBefore, Value: b.Value})
	}
	return p
}
