package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what the client can tell about a token without the backend's key.
type Info struct {
	// Opaque is set when the token is not a JWT; the other fields are then empty.
	Opaque    bool
	Subject   string
	Issuer    string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry in the past.
func (i Info) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// Describe decodes the token's claims without verifying the signature. The
// backend stays the only authority on validity; this is for display only.
func Describe(token string) Info {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return Info{Opaque: true}
	}

	info := Info{Subject: claims.Subject, Issuer: claims.Issuer}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info
}
