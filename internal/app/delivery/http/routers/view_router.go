package routers

import (
	"medicare-frontend/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachViewRoutes(router chi.Router, viewController *controllers.ViewController) {
	router.Get("/", viewController.Home)

	router.Route("/views/{view}", func(r chi.Router) {
		r.Get("/", viewController.Show)
		r.Get("/new", viewController.New)
		r.Post("/items", viewController.Create)
		r.Route("/items/{id}", func(r chi.Router) {
			r.Post("/", viewController.Update)
			r.Get("/edit", viewController.Edit)
			r.Get("/delete", viewController.ConfirmDelete)
			r.Post("/delete", viewController.Delete)
		})
	})
}
