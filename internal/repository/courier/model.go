package courier

type CourierDB struct {
	ID        int64
	Name      string
	Status    string
	UserName  string
	Password  string
	Latitude  *float64
	Longitude *float64
}

type CourierModifyDB struct {
	ID        *int64
	Name      *string
	Status    *string
	UserName  *string
	Password  *string
	Latitude  *float64
	Longitude *float64
}
