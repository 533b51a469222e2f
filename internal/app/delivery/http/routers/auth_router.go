package routers

import (
	"medicare-frontend/internal/app/delivery/http/controllers"
	"medicare-frontend/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	loginLimiter := middlewares.NewLoginRateLimiter()

	router.Get("/login", authController.ShowLogin)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.Post("/register", authController.Register)
	router.Post("/logout", authController.Logout)
}
