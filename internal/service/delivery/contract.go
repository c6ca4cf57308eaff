//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	GetByDateMarker(ctx context.Context, dateMarker []int64) ([]entities.Delivery, error)
	GetAll(ctx context.Context) ([]entities.Delivery, error)
	Delete(ctx context.Context, id int64) error
}
