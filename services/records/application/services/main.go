package services

import (
	"github.com/ghuser/orderline/pkg/app"
	"github.com/ghuser/orderline/pkg/cache"
	"github.com/ghuser/orderline/services/records/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Customer *CustomerService
	Item     *ItemService
	Order    *OrderService
}

// New wires all records application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	custCache := cache.NewCustomerCache(a.Redis)
	return &Services{
		Customer: NewCustomerService(postgres.NewCustomerRepository(a.Db), custCache),
		Item:     NewItemService(postgres.NewItemRepository(a.Db)),
		Order:    NewOrderService(postgres.NewOrderRepository(a.Db, a.EventBus)),
	}
}
