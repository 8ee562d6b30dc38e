package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gravitymeet/scheduling-backend/internal/appointment"
	apptHttp "github.com/gravitymeet/scheduling-backend/internal/appointment/http"
	"github.com/gravitymeet/scheduling-backend/internal/auth"
	"github.com/gravitymeet/scheduling-backend/internal/availability"
	availHttp "github.com/gravitymeet/scheduling-backend/internal/availability/http"
	"github.com/gravitymeet/scheduling-backend/internal/bookingtype"
	btHttp "github.com/gravitymeet/scheduling-backend/internal/bookingtype/http"
	"github.com/gravitymeet/scheduling-backend/internal/config"
	"github.com/gravitymeet/scheduling-backend/internal/host"
	hostHttp "github.com/gravitymeet/scheduling-backend/internal/host/http"
	"github.com/gravitymeet/scheduling-backend/internal/schedule"
	schedHttp "github.com/gravitymeet/scheduling-backend/internal/schedule/http"
)

// RouterConfig bundles the dependencies the router needs.
type RouterConfig struct {
	Cfg          *config.Config
	Pool         *pgxpool.Pool
	JWTManager   *auth.JWTManager
	Limiter      RateLimiter
	Hosts        host.Service
	BookingTypes bookingtype.Service
	Schedules    schedule.Service
	Availability availability.Service
	Appointments appointment.Service
}

// NewRouter assembles middleware (CORS, Logger, Auth, rate limiting) and
// registers routes for the host console and the anonymous guest surface.
func NewRouter(rc RouterConfig) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if rc.Cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(rc.Cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", func(c *gin.Context) {
		if err := rc.Pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(rc.JWTManager)

	hostHandler := hostHttp.NewHandler(rc.Hosts)
	btHandler := btHttp.NewHandler(rc.BookingTypes)
	schedHandler := schedHttp.NewHandler(rc.Schedules)
	availHandler := availHttp.NewHandler(rc.Availability, rc.BookingTypes, rc.Hosts)
	apptHandler := apptHttp.NewHandler(rc.Appointments)

	// Host console routes under /v1.
	v1 := r.Group("/v1")
	{
		hostHttp.RegisterRoutes(v1, hostHandler, authMiddleware)
		btHttp.RegisterRoutes(v1, btHandler, authMiddleware)
		schedHttp.RegisterRoutes(v1, schedHandler, authMiddleware)
		apptHttp.RegisterRoutes(v1, apptHandler, authMiddleware)
	}

	// Anonymous guest routes, rate limited per client IP.
	public := r.Group("/v1/public")
	public.Use(RateLimit(rc.Limiter))
	{
		availHttp.RegisterRoutes(public, availHandler)
		apptHttp.RegisterPublicRoutes(public, apptHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
