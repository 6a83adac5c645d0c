package middleware // middleware contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware
)

// unauthorized is the envelope-shaped 401 body every gated endpoint returns
// when no valid session is present.
func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"message": msg, "success": false})
}

// SessionGate returns an Echo middleware that validates a Bearer session
// token and injects the token's identity claims into the request context.
// The provided secret must match the one used when issuing tokens.  The
// check is pure: no store access happens here, and handlers behind the gate
// can read the resolved identity via c.Get("user_id"), c.Get("email") and
// c.Get("username").  A missing, malformed or expired token short-circuits
// with 401 and the handler never runs.
func SessionGate(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return unauthorized(c, "You must be logged in.")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse with HS256 and our secret; reject any other signing
			// method so an attacker cannot downgrade the algorithm.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return unauthorized(c, "Invalid or expired session.")
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return unauthorized(c, "Invalid or expired session.")
			}
			sub, _ := claims["sub"].(string)
			if sub == "" {
				return unauthorized(c, "Invalid or expired session.")
			}

			c.Set("user_id", sub)
			if v, ok := claims["email"].(string); ok {
				c.Set("email", v)
			}
			if v, ok := claims["username"].(string); ok {
				c.Set("username", v)
			}
			return next(c)
		}
	}
}
