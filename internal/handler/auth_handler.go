package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sharemypics/internal/service"
)

// AuthHandler handles registration and authentication.
type AuthHandler struct {
	authService service.AuthService
	baseURL     string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, baseURL string) *AuthHandler {
	return &AuthHandler{authService: authService, baseURL: baseURL}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username       string     `json:"username" validate:"required"`
	Password       string     `json:"password" validate:"required"`
	Name           string     `json:"name" validate:"required,min=2,max=30"`
	Surname        string     `json:"surname" validate:"required"`
	ProfilePicture *uuid.UUID `json:"profilePicture"`
}

// AuthenticateRequest represents an authentication request.
type AuthenticateRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthenticateResponse carries the authenticated user and their bearer token.
type AuthenticateResponse struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Name, req.Surname, req.ProfilePicture)
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, h.baseURL+"/users/"+user.ID.String())
	return c.JSON(http.StatusCreated, user)
}

// Authenticate godoc
// @Summary Authenticate an existing user
// @Tags users
// @Accept json
// @Produce json
// @Param request body AuthenticateRequest true "Credentials"
// @Success 200 {object} AuthenticateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /users/authenticate [post]
func (h *AuthHandler) Authenticate(c echo.Context) error {
	var req AuthenticateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, token, err := h.authService.Authenticate(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, AuthenticateResponse{User: user, Token: token})
}
