package auth

import "context"

var _ Checker = (*LoginChecker)(nil)
var _ Checker = (*LoginTestChecker)(nil)

// Checker resolves a session token to the id of the logged-in user.
// ErrNotLoggedIn is returned for unknown or expired tokens.
type Checker interface {
	IsLogged(ctx context.Context, token string) (userID string, err error)
}
