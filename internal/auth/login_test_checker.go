package auth

import (
	"context"
	"sync"
)

// LoginTestChecker is an in-memory Checker used in unit and dev testing.
type LoginTestChecker struct {
	mutex          sync.Mutex
	LoggedSessions map[string]string // token -> user id
}

func NewLoginTestChecker() *LoginTestChecker {
	return &LoginTestChecker{
		LoggedSessions: map[string]string{},
	}
}

func (c *LoginTestChecker) IsLogged(_ context.Context, token string) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	userID, ok := c.LoggedSessions[token]
	if !ok {
		return "", ErrNotLoggedIn
	}
	return userID, nil
}
