package middleware

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"commute-assistant/internal/model"
	"commute-assistant/pkg/response"
)

const scopeKey = "request_scope"

var errMalformedToken = errors.New("malformed bearer token")

// Auth requires a bearer token and binds the caller's identity to the request.
// The token is decoded, not verified: the transit backend receives it verbatim
// on every domain call and rejects it there if it is invalid. Requests without
// a usable identity are refused before any conversation state is touched.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		sc, err := scopeFromToken(token)
		if err != nil {
			mw.l.Warnf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, sc)
		c.Next()
	}
}

// scopeFromToken pulls the subject and display name out of a JWT payload.
func scopeFromToken(token string) (model.Scope, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return model.Scope{}, errMalformedToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return model.Scope{}, errMalformedToken
	}

	var claims struct {
		Sub      string `json:"sub"`
		Name     string `json:"name"`
		Username string `json:"preferred_username"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil {
		return model.Scope{}, errMalformedToken
	}
	if claims.Sub == "" {
		return model.Scope{}, errors.New("token has no subject")
	}

	username := claims.Username
	if username == "" {
		username = claims.Name
	}
	return model.Scope{
		UserID:    claims.Sub,
		Username:  username,
		AuthToken: token,
	}, nil
}

// ScopeFrom returns the scope bound by Auth, if any.
func ScopeFrom(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
