package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/demoforums/forum-api/internal/core/ports"
)

// SessionCookieName is the cookie browser clients carry the session token in.
const SessionCookieName = "session_id"

// Context keys set by the Session middleware.
const (
	ContextKeyToken = "token"
	ContextKeyUser  = "user"
)

// Session resolves the request's session token and injects the token and the
// authenticated user into context. The bearer token is tried first; when it
// is absent or does not resolve, the session cookie gets a turn before the
// request is rejected.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)

			user, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				if cookie := cookieToken(c); cookie != "" && cookie != token {
					token = cookie
					user, err = sessions.Resolve(c.Request().Context(), token)
				}
			}
			if err != nil {
				return err
			}

			c.Set(ContextKeyToken, token)
			c.Set(ContextKeyUser, user)

			return next(c)
		}
	}
}

// ExtractToken pulls the session token from the Authorization header
// (Bearer scheme, preferred) or the session cookie. Returns "" when neither
// carries a token.
func ExtractToken(c echo.Context) string {
	if token := bearerToken(c); token != "" {
		return token
	}
	return cookieToken(c)
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func cookieToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}
