package invoice

type Status string

const (
	StatusIssued Status = "issued"
	StatusVoided Status = "voided"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusIssued, StatusVoided:
		return true
	default:
		return false
	}
}
