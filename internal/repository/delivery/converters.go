package delivery

import (
	"dispatch/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	delivery := &entities.Delivery{
		ID:            d.ID,
		DateMarker:    d.DateMarker,
		Name:          d.Name,
		Status:        d.Status,
		Phone:         d.Phone,
		City:          d.City,
		District:      d.District,
		Street:        d.Street,
		Number:        d.Number,
		Value:         d.Value,
		Payment:       d.Payment,
		PaymentStatus: d.PaymentStatus,
		Courier:       d.Courier,
		Volume:        d.Volume,
		Notes:         d.Notes,
		TimeMarker:    d.TimeMarker,
		StatusMessage: d.StatusMessage,
	}
	if d.Latitude != nil && d.Longitude != nil {
		delivery.Coordinates = &entities.Coordinates{
			Latitude:  *d.Latitude,
			Longitude: *d.Longitude,
		}
	}
	return delivery
}

func FromDomainModify(deliveryModify *entities.DeliveryModify) *DeliveryModifyDB {
	if deliveryModify == nil {
		return nil
	}
	deliveryDB := &DeliveryModifyDB{
		ID:            deliveryModify.ID,
		DateMarker:    deliveryModify.DateMarker,
		Name:          deliveryModify.Name,
		Status:        deliveryModify.Status,
		Phone:         deliveryModify.Phone,
		City:          deliveryModify.City,
		District:      deliveryModify.District,
		Street:        deliveryModify.Street,
		Number:        deliveryModify.Number,
		Value:         deliveryModify.Value,
		Payment:       deliveryModify.Payment,
		PaymentStatus: deliveryModify.PaymentStatus,
		Courier:       deliveryModify.Courier,
		Volume:        deliveryModify.Volume,
		Notes:         deliveryModify.Notes,
		TimeMarker:    deliveryModify.TimeMarker,
		StatusMessage: deliveryModify.StatusMessage,
	}
	if deliveryModify.Coordinates != nil {
		lat := deliveryModify.Coordinates.Latitude
		lng := deliveryModify.Coordinates.Longitude
		deliveryDB.Latitude = &lat
		deliveryDB.Longitude = &lng
	}
	return deliveryDB
}

func ToDomainList(deliveriesDB []DeliveryDB) []entities.Delivery {
	if len(deliveriesDB) == 0 {
		return []entities.Delivery{}
	}

	result := make([]entities.Delivery, len(deliveriesDB))
	for i, deliveryDB := range deliveriesDB {
		result[i] = *ToDomain(&deliveryDB)
	}
	return result
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
