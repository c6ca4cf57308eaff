package customer

type CustomerDB struct {
	ID        int64
	Name      string
	Phone     string
	City      string
	District  string
	Street    string
	Number    string
	Latitude  *float64
	Longitude *float64
}

type CustomerModifyDB struct {
	ID        *int64
	Name      *string
	Phone     *string
	City      *string
	District  *string
	Street    *string
	Number    *string
	Latitude  *float64
	Longitude *float64
}
