package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the administrator and issues access tokens.
type AuthSvc interface {
	// Login checks the admin credentials and returns a signed token with its expiry.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}
