package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusClosed    Status = "closed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusDelivered, StatusClosed, StatusCanceled:
		return true
	default:
		return false
	}
}
