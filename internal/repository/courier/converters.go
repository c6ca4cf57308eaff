package courier

import (
	"dispatch/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	courier := &entities.Courier{
		ID:       c.ID,
		Name:     c.Name,
		Status:   entities.CourierStatusType(c.Status),
		UserName: c.UserName,
		Password: c.Password,
	}
	if c.Latitude != nil && c.Longitude != nil {
		courier.Location = &entities.Coordinates{
			Latitude:  *c.Latitude,
			Longitude: *c.Longitude,
		}
	}
	return courier
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:       courierModify.ID,
		Name:     courierModify.Name,
		UserName: courierModify.UserName,
		Password: courierModify.Password,
	}
	if courierModify.Status != nil {
		status := string(*courierModify.Status)
		courierDB.Status = &status
	}
	if courierModify.Location != nil {
		lat := courierModify.Location.Latitude
		lng := courierModify.Location.Longitude
		courierDB.Latitude = &lat
		courierDB.Longitude = &lng
	}
	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	if len(couriersDB) == 0 {
		return []entities.Courier{}
	}

	result := make([]entities.Courier, len(couriersDB))
	for i, courierDB := range couriersDB {
		result[i] = *ToDomain(&courierDB)
	}
	return result
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
