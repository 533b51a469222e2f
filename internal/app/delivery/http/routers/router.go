package routers

import (
	"medicare-frontend/internal/app/config"
	"medicare-frontend/internal/app/delivery/http/controllers"
	"medicare-frontend/internal/app/delivery/http/middlewares"
	"medicare-frontend/internal/app/metrics"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	viewController *controllers.ViewController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)
	router.Use(metrics.InstrumentHandler)

	router.Method("GET", "/metrics", metrics.Handler())

	router.Group(func(r chi.Router) {
		r.Use(middlewares.SessionCookie)
		attachAuthRoutes(r, middlewares, authController)
		attachViewRoutes(r, viewController)
	})
}
