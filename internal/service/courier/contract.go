//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
	GetByUserName(ctx context.Context, userName string) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// CredentialVerifier decides whether a presented password matches the
// stored courier record. The lookup itself already proves the user name.
type CredentialVerifier interface {
	Verify(courier *entities.Courier, password string) bool
}
