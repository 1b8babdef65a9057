package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/ibeloyar/chawp-vendor/internal/model"
	"github.com/ibeloyar/chawp-vendor/pgk/auth"
)

func InitRoutes(r *chi.Mux, c *Controller, tokenSecret string) *chi.Mux {
	r.Get("/ping", c.Ping)

	r.Route("/api/vendor", func(r chi.Router) {
		r.Post("/login", c.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthBearerMiddlewareInit[model.TokenInfo](tokenSecret))

			r.Get("/profile", c.GetProfile)
			r.Patch("/profile", c.UpdateProfile)
			r.Get("/stats", c.GetStats)

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", c.GetOrders)
				r.Get("/live", c.LiveOrders)
				r.Post("/{id}/status", c.TransitionOrder)
				r.Post("/{id}/accept", c.AcceptOrder)
				r.Post("/{id}/decline", c.DeclineOrder)
				r.Post("/{id}/preparing", c.MarkOrderPreparing)
				r.Post("/{id}/ready", c.MarkOrderReady)
			})

			r.Route("/meals", func(r chi.Router) {
				r.Get("/", c.GetMeals)
				r.Post("/", c.CreateMeal)
				r.Patch("/{id}", c.UpdateMeal)
				r.Post("/{id}/toggle", c.ToggleMeal)
				r.Delete("/{id}", c.DeleteMeal)
			})

			r.Get("/payouts", c.GetPayouts)
			r.Get("/hours", c.GetHours)
			r.Patch("/hours/{id}", c.UpdateHour)
			r.Get("/preferences", c.GetPreferences)
			r.Put("/preferences", c.SavePreferences)
			r.Post("/devices", c.RegisterDevice)
		})
	})

	return r
}
