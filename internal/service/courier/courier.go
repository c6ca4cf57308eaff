package courier

import (
	"context"
	"fmt"

	"dispatch/internal/entities"
)

type Courier struct {
	repository Repository
	txManager  TxManager
	verifier   CredentialVerifier
}

func New(repository Repository, txManager TxManager, verifier CredentialVerifier) *Courier {
	return &Courier{
		repository: repository,
		txManager:  txManager,
		verifier:   verifier,
	}
}

func (s *Courier) CreateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error) {
	if courierModify.Name == nil || courierModify.UserName == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidUserName(*courierModify.UserName) {
		return nil, ErrInvalidUserName
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	courier, err := s.repository.Create(ctx, courierModify)
	if err != nil {
		return nil, fmt.Errorf("create courier: %w", err)
	}

	return courier, nil
}

// UpdateCourierByUserName resolves the target row by user name. An id
// carried inside the modify never picks the row; the stored id wins.
func (s *Courier) UpdateCourierByUserName(ctx context.Context, userName string, courierModify entities.CourierModify) (*entities.Courier, error) {
	if !isValidUserName(userName) {
		return nil, ErrInvalidUserName
	}
	if courierModify.Name != nil && !isValidName(*courierModify.Name) {
		return nil, ErrInvalidName
	}
	if courierModify.Status != nil && !isValidStatus(courierModify.Status.String()) {
		return nil, ErrInvalidStatus
	}

	var result *entities.Courier
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		found, err := s.repository.GetByUserName(ctx, userName)
		if err != nil {
			return err
		}

		courierModify.ID = &found.ID
		result, err = s.repository.Update(ctx, courierModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update courier: %w", err)
	}

	return result, nil
}

func (s *Courier) GetCourierByUserName(ctx context.Context, userName string) (*entities.Courier, error) {
	if !isValidUserName(userName) {
		return nil, ErrInvalidUserName
	}

	courier, err := s.repository.GetByUserName(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}

	return courier, nil
}

func (s *Courier) GetCouriers(ctx context.Context) ([]entities.Courier, error) {
	couriers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}

	return couriers, nil
}

// Authenticate looks the courier up by user name and runs the configured
// credential verifier over the presented password.
func (s *Courier) Authenticate(ctx context.Context, userName, password string) (*entities.Courier, error) {
	if !isValidUserName(userName) {
		return nil, ErrInvalidUserName
	}

	courier, err := s.repository.GetByUserName(ctx, userName)
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate courier: %w", err)
	}

	if !s.verifier.Verify(courier, password) {
		return nil, ErrInvalidCredentials
	}

	return courier, nil
}
