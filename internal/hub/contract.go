//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=hub_test
package hub

import (
	"context"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type Deliveries interface {
	CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error)
	GetTodayDeliveries(ctx context.Context) ([]entities.Delivery, error)
	GetAllDeliveries(ctx context.Context) ([]entities.Delivery, error)
}

type Customers interface {
	UpsertCustomerByName(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error)
	GetCustomers(ctx context.Context) ([]entities.Customer, error)
}

type Couriers interface {
	UpdateCourierByUserName(ctx context.Context, userName string, courierModify entities.CourierModify) (*entities.Courier, error)
	Authenticate(ctx context.Context, userName, password string) (*entities.Courier, error)
	GetCouriers(ctx context.Context) ([]entities.Courier, error)
}

type Relay interface {
	Initialize(ctx context.Context) error
	Session(ctx context.Context) (*entities.RelaySession, error)
	ForceRepairing(ctx context.Context) error
	Send(ctx context.Context, address, text string) (*entities.RelayReceipt, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
