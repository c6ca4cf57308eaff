package entities

// Delivery is one scheduled drop-off. DateMarker is the [day, month, year]
// triple the dashboards filter on; TimeMarker, when present, is exactly
// [hour, minute].
type Delivery struct {
	ID            int64
	DateMarker    []int64
	Name          string
	Status        string
	Phone         string
	City          string
	District      string
	Street        string
	Number        string
	Coordinates   *Coordinates
	Value         string
	Payment       string
	PaymentStatus string
	Courier       string
	Volume        string
	Notes         string
	TimeMarker    []int64
	StatusMessage string
}

type DeliveryModify struct {
	ID            *int64
	DateMarker    []int64
	Name          *string
	Status        *string
	Phone         *string
	City          *string
	District      *string
	Street        *string
	Number        *string
	Coordinates   *Coordinates
	Value         *string
	Payment       *string
	PaymentStatus *string
	Courier       *string
	Volume        *string
	Notes         *string
	TimeMarker    []int64
	StatusMessage *string
}
