package entities

type Courier struct {
	ID       int64
	Name     string
	Status   CourierStatusType
	UserName string
	Password string
	Location *Coordinates
}

type CourierStatusType string

const (
	CourierAvailable   CourierStatusType = "available"
	CourierUnavailable CourierStatusType = "unavailable"
	CourierBusy        CourierStatusType = "busy"
	CourierOffline     CourierStatusType = "offline"
)

const DefaultCourierStatus = CourierOffline

func (t CourierStatusType) String() string {
	return string(t)
}

type CourierModify struct {
	ID       *int64
	Name     *string
	Status   *CourierStatusType
	UserName *string
	Password *string
	Location *Coordinates
}
