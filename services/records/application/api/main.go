package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/orderline/pkg/app"
	"github.com/ghuser/orderline/services/records/application/handlers"
	appsvcs "github.com/ghuser/orderline/services/records/application/services"
)

// RecordRoutes registers customer, item, and order endpoints on the provided
// chi router.
func RecordRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)

	customers := handlers.NewCustomerHandler(svcs)
	items := handlers.NewItemHandler(svcs)
	orders := handlers.NewOrderHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customers.Create)
			r.Get("/{id}", customers.Get)
			r.Put("/{id}", customers.Update)
			r.Delete("/{id}", customers.Delete)
		})
		r.Route("/items", func(r chi.Router) {
			r.Post("/", items.Create)
			r.Get("/{id}", items.Get)
			r.Put("/{id}", items.Update)
			r.Delete("/{id}", items.Delete)
		})
		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orders.Create)
			r.Get("/{id}", orders.Get)
			r.Put("/{id}", orders.Update)
			r.Delete("/{id}", orders.Delete)
		})
	})
}
