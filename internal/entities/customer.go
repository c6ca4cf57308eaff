package entities

// Coordinates is an optional latitude/longitude pair attached to customers,
// deliveries and couriers.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Customer struct {
	ID          int64
	Name        string
	Phone       string
	City        string
	District    string
	Street      string
	Number      string
	Coordinates *Coordinates
}

// CustomerModify carries a partial customer document. ID is a routing key
// only; repositories never persist it as a field.
type CustomerModify struct {
	ID          *int64
	Name        *string
	Phone       *string
	City        *string
	District    *string
	Street      *string
	Number      *string
	Coordinates *Coordinates
}
