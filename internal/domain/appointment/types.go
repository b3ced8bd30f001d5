package appointment

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCompleted, StatusNoShow, StatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status admits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusNoShow || s == StatusCanceled
}

// Blocks reports whether an appointment in this status still occupies its
// interval for availability purposes. Only cancellation frees the slot;
// completed and no-show appointments are in the past and irrelevant either
// way.
func (s Status) Blocks() bool {
	return s != StatusCanceled
}
