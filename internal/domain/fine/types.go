package fine

type Status string

const (
	StatusPending   Status = "pending"
	StatusRecharged Status = "recharged"
	StatusOverdue   Status = "overdue"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusRecharged, StatusOverdue:
		return true
	default:
		return false
	}
}
