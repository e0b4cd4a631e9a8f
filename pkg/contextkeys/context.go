package contextkeys

// Используем кастомный тип, чтобы избежать коллизий
type contextKey string

const (
	// DBContextKey - это ключ, по которому мы будем хранить *gorm.DB в context
	DBContextKey = contextKey("db")
	// IdentityContextKey holds the auth.Identity resolved for the request.
	IdentityContextKey = contextKey("identity")
	// SessionTokenContextKey holds the raw session token, if one was sent.
	SessionTokenContextKey = contextKey("session_token")
)
