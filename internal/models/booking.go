package models

import "time"

type Booking struct {
	BaseModel
	UserID            uint          `gorm:"not null;index"`
	ProviderID        uint          `gorm:"not null;index"`
	ServiceCategoryID uint          `gorm:"not null"`
	BookingDate       string        `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	BookingTime       string        `gorm:"type:varchar(20);not null"`
	Address           string        `gorm:"type:text;not null"`
	Description       string        `gorm:"type:text"`
	Status            BookingStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	TotalPrice        float64       `gorm:"not null;default:0"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime"`
}

// bookingTransitions lists, per (from, to) pair, the parties allowed to
// perform it. Pairs that are absent are never legal.
var bookingTransitions = map[BookingStatus]map[BookingStatus][]AccountKind{
	BookingStatusPending: {
		BookingStatusAccepted:  {AccountKindProvider},
		BookingStatusCancelled: {AccountKindUser, AccountKindProvider},
	},
	BookingStatusAccepted: {
		BookingStatusCompleted: {AccountKindProvider},
	},
}

// CanTransition reports whether the party of kind `by` may move a booking
// from one status to another.
func CanTransition(from, to BookingStatus, by AccountKind) bool {
	for _, party := range bookingTransitions[from][to] {
		if party == by {
			return true
		}
	}
	return false
}

// PartyOf returns the side the caller plays in the booking. Only the owning
// user and the assigned provider are parties; matching is by kind and id.
func (b *Booking) PartyOf(kind AccountKind, id uint) (AccountKind, bool) {
	switch {
	case kind == AccountKindUser && id == b.UserID:
		return AccountKindUser, true
	case kind == AccountKindProvider && id == b.ProviderID:
		return AccountKindProvider, true
	default:
		return "", false
	}
}
