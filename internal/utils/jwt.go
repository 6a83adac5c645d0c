package utils // package utils provides helpers for session token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionToken represents a signed JWT session token along with its expiry.
// The Token field contains the serialized JWT string.  Exp stores the
// expiration as a time.Time.  The token is carried by the client in the
// Authorization header and re-validated on every gated request; there is no
// server-side revocation, so its lifetime bounds the session.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT carrying the identity claims
// the application exposes to clients: subject (sub, the user id), email and
// username, plus the standard exp and iat timestamps.  ttlMin is the token
// lifetime in minutes.
func NewSessionToken(secret, userID, email, username string, ttlMin int) (SessionToken, error) {
	exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":      userID,
		"email":    email,
		"username": username,
		"exp":      exp.Unix(),
		"iat":      time.Now().UTC().Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}
