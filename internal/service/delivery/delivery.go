package delivery

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Delivery struct {
	repository Repository
}

func New(repository Repository) *Delivery {
	return &Delivery{
		repository: repository,
	}
}

// CreateDelivery persists a new delivery. Every field is optional on create,
// matching what the dashboards send: a bare document is a valid delivery for
// today.
func (s *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if !isValidTimeMarker(deliveryModify.TimeMarker) {
		return nil, ErrInvalidTimeMarker
	}

	// A missing or malformed day marker means the delivery belongs to today.
	if len(deliveryModify.DateMarker) != 3 {
		deliveryModify.DateMarker = todayMarker()
	}

	deliveryModify.ID = nil

	delivery, err := s.repository.Create(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	return delivery, nil
}

func (s *Delivery) UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if deliveryModify.ID == nil {
		return nil, ErrInvalidDeliveryID
	}
	if deliveryModify.Name != nil && !isValidName(*deliveryModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidTimeMarker(deliveryModify.TimeMarker) {
		return nil, ErrInvalidTimeMarker
	}

	delivery, err := s.repository.Update(ctx, deliveryModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}
	return delivery, nil
}

func (s *Delivery) GetTodayDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := s.repository.GetByDateMarker(ctx, todayMarker())
	if err != nil {
		return nil, fmt.Errorf("failed to get today deliveries: %w", err)
	}

	return deliveries, nil
}

func (s *Delivery) GetDeliveriesByDateMarker(ctx context.Context, dateMarker []int64) ([]entities.Delivery, error) {
	if len(dateMarker) != 3 {
		dateMarker = todayMarker()
	}

	deliveries, err := s.repository.GetByDateMarker(ctx, dateMarker)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries by date: %w", err)
	}

	return deliveries, nil
}

func (s *Delivery) GetAllDeliveries(ctx context.Context) ([]entities.Delivery, error) {
	deliveries, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get deliveries: %w", err)
	}

	return deliveries, nil
}

func (s *Delivery) DeleteDelivery(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDeliveryID
	}

	err := s.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}

	return nil
}

func todayMarker() []int64 {
	now := time.Now()
	return []int64{int64(now.Day()), int64(now.Month()), int64(now.Year())}
}
