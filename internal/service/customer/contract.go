//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error)
	Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error)
	GetByName(ctx context.Context, name string) (*entities.Customer, error)
	GetAll(ctx context.Context) ([]entities.Customer, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
