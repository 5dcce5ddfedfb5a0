package domain

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusConfirmed  Status = "Confirmed"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// transitions is the full state machine. Cancellation is allowed up through
// Processing; once shipped an order can only be delivered.
var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// AllStatuses lists every status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusConfirmed,
		StatusProcessing,
		StatusShipped,
		StatusDelivered,
		StatusCancelled,
	}
}

// ParseStatus maps a stored status string; unknown values fall back to
// Pending.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return Status(s)
	default:
		return StatusPending
	}
}
