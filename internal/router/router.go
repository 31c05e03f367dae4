package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"sharemypics/internal/handler"
)

// Register wires routes and middleware. authMW is the bearer-token gate;
// routes carrying it require an authenticated caller, everything else is
// public by design.
func Register(
	e *echo.Echo,
	authMW echo.MiddlewareFunc,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	albumHandler *handler.AlbumHandler,
	pictureHandler *handler.PictureHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	users := e.Group("/users")
	users.POST("/register", authHandler.Register, requireJSON)
	users.POST("/authenticate", authHandler.Authenticate, requireJSON)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PATCH("/:id", userHandler.Patch, authMW, requireJSON)
	users.PUT("/:id", userHandler.Put, authMW, requireJSON)
	users.DELETE("/:id", userHandler.Delete, authMW)

	albums := e.Group("/albums")
	albums.POST("", albumHandler.Create, authMW, requireJSON)
	albums.GET("", albumHandler.List)
	albums.GET("/:id", albumHandler.Get)
	albums.PATCH("/:id", albumHandler.Patch, authMW, requireJSON)
	albums.PUT("/:id", albumHandler.Put, authMW, requireJSON)
	albums.DELETE("/:id", albumHandler.Delete, authMW)
	albums.POST("/contribute/:id", albumHandler.Contribute, authMW, requireJSON)

	pictures := e.Group("/pictures")
	pictures.POST("", pictureHandler.Create, authMW, requireJSON)
	pictures.GET("", pictureHandler.List)
	pictures.GET("/:id", pictureHandler.Get)
	pictures.PATCH("/:id", pictureHandler.Patch, authMW, requireJSON)
	pictures.PUT("/:id", pictureHandler.Put, authMW, requireJSON)
	pictures.DELETE("/:id", pictureHandler.Delete, authMW)
}

// requireJSON answers 415 when a write request does not carry a JSON body.
func requireJSON(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctype := c.Request().Header.Get(echo.HeaderContentType)
		if !strings.HasPrefix(ctype, echo.MIMEApplicationJSON) {
			return echo.NewHTTPError(http.StatusUnsupportedMediaType,
				"This resource only has an application/json representation")
		}
		return next(c)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
