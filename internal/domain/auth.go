package domain

import "time"

// TokenIssuer signs bearer tokens carrying a user handle as the subject.
type TokenIssuer interface {
	Issue(userHandle string, expiry time.Duration) (string, error)
}

// TokenVerifier validates a bearer token and returns the user handle it was
// issued for.
type TokenVerifier interface {
	Verify(token string) (string, error)
}
