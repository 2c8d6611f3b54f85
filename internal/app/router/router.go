// Package router assembles the HTTP routes of the service.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	animalhandler "adoptamena_backend/internal/feature/animal/transport/handler"
	authentity "adoptamena_backend/internal/feature/auth/domain/entity"
	authhandler "adoptamena_backend/internal/feature/auth/transport/handler"
	profilehandler "adoptamena_backend/internal/feature/profile/transport/handler"
	platformhandler "adoptamena_backend/internal/platform/http/handler"
	jwtmw "adoptamena_backend/internal/platform/jwt"
	"adoptamena_backend/internal/platform/metrics"
	"adoptamena_backend/internal/shared/ratelimiter"
)

// Options carries the optional infrastructure wired around the feature handlers.
type Options struct {
	Metrics         *metrics.Metrics
	AuthRateLimiter *ratelimiter.RateLimiter
	AllowedOrigins  []string
	ReadinessChecks map[string]platformhandler.Check
}

func NewRouter(auth *authhandler.AuthHandler, profiles *profilehandler.ProfileHandler,
	animals *animalhandler.AnimalHandler, opts Options) *gin.Engine {
	r := gin.Default()

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders: []string{"Retry-After"},
			MaxAge:        12 * time.Hour,
		}))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	// No authentication
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)
	r.OPTIONS("/healthz", platformhandler.Health)
	r.GET("/readyz", platformhandler.Readiness(opts.ReadinessChecks))

	a := r.Group("/auth", opts.AuthRateLimiter.Middleware())
	{
		a.POST("/register", auth.Register)
		a.POST("/login", auth.Login)
		a.GET("/verify", auth.Verify)
		a.POST("/verify/resend", auth.ResendVerification)
	}

	// Bearer token required
	secured := r.Group("/", jwtmw.AuthRequired())
	{
		secured.GET("/profiles/me", profiles.GetMe)
		secured.GET("/profiles/:id", profiles.GetByID)
		secured.PUT("/profiles/:id", profiles.UpdateByID)
		secured.DELETE("/profiles/:id", profiles.DeleteByID)

		secured.GET("/animals", animals.List)
		secured.GET("/animals/:id", animals.GetByID)

		writers := secured.Group("/", jwtmw.RequireRoles(
			authentity.RoleOrganization.String(),
			authentity.RoleAdmin.String(),
		))
		writers.POST("/animals", animals.Create)
		writers.PUT("/animals/:id", animals.UpdateByID)
		writers.DELETE("/animals/:id", animals.DeleteByID)
	}

	return r
}
