package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	statuses := []BookingStatus{
		BookingStatusPending, BookingStatusAccepted, BookingStatusCompleted, BookingStatusCancelled,
	}
	allowed := map[[3]string]bool{
		{"pending", "accepted", "provider"}:   true,
		{"accepted", "completed", "provider"}: true,
		{"pending", "cancelled", "user"}:      true,
		{"pending", "cancelled", "provider"}:  true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			for _, by := range []AccountKind{AccountKindUser, AccountKindProvider} {
				want := allowed[[3]string{string(from), string(to), string(by)}]
				assert.Equal(t, want, CanTransition(from, to, by), "%s -> %s by %s", from, to, by)
			}
		}
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	for _, from := range []BookingStatus{BookingStatusCompleted, BookingStatusCancelled} {
		assert.True(t, from.IsTerminal())
		assert.Empty(t, bookingTransitions[from])
	}
	assert.False(t, BookingStatusPending.IsTerminal())
}

func TestPartyOf(t *testing.T) {
	b := &Booking{UserID: 7, ProviderID: 7}

	party, ok := b.PartyOf(AccountKindUser, 7)
	assert.True(t, ok)
	assert.Equal(t, AccountKindUser, party)

	party, ok = b.PartyOf(AccountKindProvider, 7)
	assert.True(t, ok)
	assert.Equal(t, AccountKindProvider, party)

	_, ok = b.PartyOf(AccountKindUser, 8)
	assert.False(t, ok)
	_, ok = b.PartyOf(AccountKindProvider, 9)
	assert.False(t, ok)
}

func TestAccountVariants(t *testing.T) {
	accounts := []Account{
		&User{BaseModel: BaseModel{ID: 1}, FullName: "Test User", Email: "user@example.com"},
		&Provider{BaseModel: BaseModel{ID: 1}, FullName: "John Smith", Email: "john@example.com"},
	}

	assert.Equal(t, AccountKindUser, accounts[0].Kind())
	assert.Equal(t, AccountKindProvider, accounts[1].Kind())
	assert.Equal(t, accounts[0].AccountID(), accounts[1].AccountID())
	assert.Equal(t, "John Smith", accounts[1].DisplayName())
}
