package domain

// UserSummary is the public projection of a user, embedded as an event's creator.
// swagger:model UserSummary
type UserSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
}

// TokenIssuer issues bearer tokens for a user id.
type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

// TokenVerifier verifies a bearer token and returns the acting user id.
type TokenVerifier interface {
	Verify(token string) (userID int64, err error)
}
