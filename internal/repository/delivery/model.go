package delivery

type DeliveryDB struct {
	ID            int64
	DateMarker    []int64
	Name          string
	Status        string
	Phone         string
	City          string
	District      string
	Street        string
	Number        string
	Latitude      *float64
	Longitude     *float64
	Value         string
	Payment       string
	PaymentStatus string
	Courier       string
	Volume        string
	Notes         string
	TimeMarker    []int64
	StatusMessage string
}

type DeliveryModifyDB struct {
	ID            *int64
	DateMarker    []int64
	Name          *string
	Status        *string
	Phone         *string
	City          *string
	District      *string
	Street        *string
	Number        *string
	Latitude      *float64
	Longitude     *float64
	Value         *string
	Payment       *string
	PaymentStatus *string
	Courier       *string
	Volume        *string
	Notes         *string
	TimeMarker    []int64
	StatusMessage *string
}
