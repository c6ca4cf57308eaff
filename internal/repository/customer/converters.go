package customer

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	customer := &entities.Customer{
		ID:       c.ID,
		Name:     c.Name,
		Phone:    c.Phone,
		City:     c.City,
		District: c.District,
		Street:   c.Street,
		Number:   c.Number,
	}
	if c.Latitude != nil && c.Longitude != nil {
		customer.Coordinates = &entities.Coordinates{
			Latitude:  *c.Latitude,
			Longitude: *c.Longitude,
		}
	}
	return customer
}

func FromDomainModify(customerModify *entities.CustomerModify) *CustomerModifyDB {
	if customerModify == nil {
		return nil
	}
	customerDB := &CustomerModifyDB{
		ID:       customerModify.ID,
		Name:     customerModify.Name,
		Phone:    customerModify.Phone,
		City:     customerModify.City,
		District: customerModify.District,
		Street:   customerModify.Street,
		Number:   customerModify.Number,
	}
	if customerModify.Coordinates != nil {
		lat := customerModify.Coordinates.Latitude
		lng := customerModify.Coordinates.Longitude
		customerDB.Latitude = &lat
		customerDB.Longitude = &lng
	}
	return customerDB
}

func ToDomainList(customersDB []CustomerDB) []entities.Customer {
	if len(customersDB) == 0 {
		return []entities.Customer{}
	}

	result := make([]entities.Customer, len(customersDB))
	for i, customerDB := range customersDB {
		result[i] = *ToDomain(&customerDB)
	}
	return result
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
