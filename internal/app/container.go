package app

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/gravitymeet/scheduling-backend/internal/api"
	"github.com/gravitymeet/scheduling-backend/internal/appointment"
	"github.com/gravitymeet/scheduling-backend/internal/auth"
	"github.com/gravitymeet/scheduling-backend/internal/availability"
	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	"github.com/gravitymeet/scheduling-backend/internal/config"
	"github.com/gravitymeet/scheduling-backend/internal/host"
	"github.com/gravitymeet/scheduling-backend/internal/outbox"
	"github.com/gravitymeet/scheduling-backend/internal/schedule"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
	Publisher  *outbox.Publisher
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) *Container {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret)

	// Host Module
	hostRepo := host.NewPgxRepository(pool)
	hostService := host.NewService(hostRepo)

	// Booking Type Module
	btRepo := bookingtype.NewPgxRepository(pool)
	btService := bookingtype.NewService(btRepo)

	// Schedule Module
	schedRepo := schedule.NewPgxRepository(pool)
	schedService := schedule.NewService(schedRepo)

	// Outbox + Appointment Module
	eventRepo := outbox.NewRepository(pool)
	apptRepo := appointment.NewPgxRepository(pool, eventRepo)

	// Availability Module; blocking appointments feed in through the adapter.
	availService := availability.NewService(
		hostService, btService, schedService,
		appointment.BusyAdapter{Repo: apptRepo},
		cfg.BookingLeadTime,
	)

	apptService := appointment.NewService(apptRepo, btService, hostService, availService)

	publisher := outbox.NewPublisher(eventRepo, logger, outbox.PublisherConfig{
		Brokers:   cfg.KafkaBrokers,
		Topic:     cfg.KafkaTopic,
		PollEvery: cfg.OutboxPollEvery,
		BatchSize: cfg.OutboxBatchSize,
	})

	var limiter api.RateLimiter
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		limiter = api.NewRedisRateLimiter(rdb, cfg.RateLimitPerMin, 0)
	} else {
		limiter = api.NewMemoryRateLimiter(cfg.RateLimitPerMin, 0)
	}

	router := api.NewRouter(api.RouterConfig{
		Cfg:          cfg,
		Pool:         pool,
		JWTManager:   jwtManager,
		Limiter:      limiter,
		Hosts:        hostService,
		BookingTypes: btService,
		Schedules:    schedService,
		Availability: availService,
		Appointments: apptService,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
		Publisher:  publisher,
	}
}
