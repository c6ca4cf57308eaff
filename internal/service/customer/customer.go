package customer

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
)

type Customer struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Customer {
	return &Customer{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.Name == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*customerModify.Name) {
		return nil, ErrInvalidName
	}

	customer, err := s.repository.Create(ctx, customerModify)
	if err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) UpdateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if customerModify.Name != nil && !isValidName(*customerModify.Name) {
		return nil, ErrInvalidName
	}

	customer, err := s.repository.Update(ctx, customerModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return customer, nil
}

// UpsertCustomerByName resolves the target row by the customer's name. An
// id carried inside the modify never picks the row; the stored id wins.
func (s *Customer) UpsertCustomerByName(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.Name == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidName(*customerModify.Name) {
		return nil, ErrInvalidName
	}

	var result *entities.Customer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		found, err := s.repository.GetByName(ctx, *customerModify.Name)
		if err != nil && !errors.Is(err, ErrCustomerNotFound) {
			return err
		}

		if found == nil {
			customerModify.ID = nil
			result, err = s.repository.Create(ctx, customerModify)
			return err
		}

		customerModify.ID = &found.ID
		result, err = s.repository.Update(ctx, customerModify)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}

	return result, nil
}

func (s *Customer) GetCustomerByName(ctx context.Context, name string) (*entities.Customer, error) {
	if !isValidName(name) {
		return nil, ErrInvalidName
	}

	customer, err := s.repository.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) GetCustomers(ctx context.Context) ([]entities.Customer, error) {
	customers, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	return customers, nil
}
