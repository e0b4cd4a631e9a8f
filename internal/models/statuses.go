package models

type AccountKind string
type BookingStatus string

const (
	AccountKindUser     AccountKind = "user"
	AccountKindProvider AccountKind = "provider"

	BookingStatusPending   BookingStatus = "pending"
	BookingStatusAccepted  BookingStatus = "accepted"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (k AccountKind) IsValid() bool {
	switch k {
	case AccountKindUser, AccountKindProvider:
		return true
	default:
		return false
	}
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAccepted, BookingStatusCompleted, BookingStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no transition leaves the status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}
