package auth

import "homeserve_backend/internal/models"

// Identity is the authenticated caller. The zero value is an anonymous
// caller.
type Identity struct {
	Kind      models.AccountKind
	ID        uint
	Name      string
	Email     string
	SessionID string
}

func (i Identity) IsAuthenticated() bool {
	return i.Kind.IsValid() && i.ID != 0
}

func (i Identity) IsUser() bool {
	return i.IsAuthenticated() && i.Kind == models.AccountKindUser
}

func (i Identity) IsProvider() bool {
	return i.IsAuthenticated() && i.Kind == models.AccountKindProvider
}

// IdentityFromSession builds the caller identity stored with a session.
func IdentityFromSession(s *models.Session) Identity {
	return Identity{
		Kind:      s.Kind,
		ID:        s.AccountID,
		Name:      s.Name,
		Email:     s.Email,
		SessionID: s.ID,
	}
}
