package auth

import (
	"errors"
	"net/http"
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"sharemypics/internal/model"
	"sharemypics/internal/repository"
)

// ContextKey is the echo context key under which the resolved caller is stored.
const ContextKey = "currentUser"

var errUnknownSubject = errors.New("token subject does not resolve to a user")

// Middleware returns the bearer-token gate. It verifies the Authorization
// header, resolves the token subject to an existing user and stores the
// *model.User in the echo context. It never mutates persisted state, and each
// failure mode answers 401 with its own reason.
func Middleware(jwtService *JWTService, users repository.UserRepository) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  ContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			userID, err := jwtService.Verify(tokenString)
			if err != nil {
				return nil, err
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return nil, errUnknownSubject
			}
			return user, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			switch {
			case header == "":
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is missing")
			case !strings.HasPrefix(header, "Bearer "):
				return echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is not a bearer token")
			case errors.Is(err, errUnknownSubject):
				return echo.NewHTTPError(http.StatusUnauthorized, "User not found")
			default:
				return echo.NewHTTPError(http.StatusUnauthorized, "Your token is invalid or has expired")
			}
		},
	})
}

// CurrentUser returns the caller resolved by Middleware, or nil on
// unauthenticated routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextKey).(*model.User)
	return user
}
