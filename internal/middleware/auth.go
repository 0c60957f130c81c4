package middleware

import (
	"net/http"
	"strings"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const identityKey = "identity"

const bearerPrefix = "Bearer "

type TokenParser interface {
	Parse(raw string) (*domain.Identity, error)
}

// Identify resolves the bearer credential and attaches the caller's
// identity to the request. A missing, malformed, badly signed or
// expired token attaches nothing and the request proceeds as
// anonymous.
func Identify(tokens TokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}

		identity, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			c.Next()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAuth rejects requests that carry no resolved identity.
func RequireAuth() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := IdentityFrom(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": domain.ErrAuthRequired.Error()},
			)
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects authenticated callers without the admin flag.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		identity, ok := IdentityFrom(c)
		if !ok || !identity.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"error": domain.ErrAdminRequired.Error()},
			)
			return
		}
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Identify, if any.
func IdentityFrom(c *ginext.Context) (*domain.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}

	identity, ok := v.(*domain.Identity)
	return identity, ok
}
