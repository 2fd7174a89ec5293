package booking

// Status is the lifecycle state of an event and its reservations.
type Status string

const (
	StatusHeld      Status = "HELD"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusHeld, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Blocks reports whether reservations in this status count against
// availability. Cancelled bookings release their units.
func (s Status) Blocks() bool {
	return s == StatusHeld || s == StatusConfirmed
}
