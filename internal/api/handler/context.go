package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demoforums/forum-api/internal/api/middleware"
	"github.com/demoforums/forum-api/internal/core/domain"
)

// currentUser extracts the authenticated user injected by the Session
// middleware. A missing user means the middleware did not run on this route.
func currentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ContextKeyUser).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return user, nil
}

// currentToken returns the session token the request authenticated with.
func currentToken(c echo.Context) string {
	token, _ := c.Get(middleware.ContextKeyToken).(string)
	return token
}
