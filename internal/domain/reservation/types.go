package reservation

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Method is the calendar method of a reservation. Only REQUEST is ever created.
type Method string

const MethodRequest Method = "REQUEST"

func (m Method) String() string {
	return string(m)
}
