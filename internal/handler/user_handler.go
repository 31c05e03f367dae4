package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sharemypics/internal/auth"
	"sharemypics/internal/service"
)

// UserHandler bundles the user CRUD endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// PatchUserRequest is a partial update; absent fields are left untouched.
type PatchUserRequest struct {
	Username       *string    `json:"username" validate:"omitempty,min=1"`
	Password       *string    `json:"password" validate:"omitempty,min=1"`
	Name           *string    `json:"name" validate:"omitempty,min=2,max=30"`
	Surname        *string    `json:"surname" validate:"omitempty,min=1"`
	ProfilePicture *uuid.UUID `json:"profilePicture"`
}

// PutUserRequest is a full update; absent optional fields clear.
type PutUserRequest struct {
	Username       string     `json:"username" validate:"required"`
	Password       string     `json:"password" validate:"required"`
	Name           string     `json:"name" validate:"required,min=2,max=30"`
	Surname        string     `json:"surname" validate:"required"`
	ProfilePicture *uuid.UUID `json:"profilePicture"`
}

// List godoc
// @Summary List users sorted by username
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

// Get godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.User
// @Failure 404 {string} string "No user found with ID x"
// @Router /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No user found with ID "+c.Param("id"))
	}
	user, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Patch godoc
// @Summary Partially update a user, all parameters optional
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body PatchUserRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No user found with ID x"
// @Security BearerAuth
// @Router /users/{id} [patch]
func (h *UserHandler) Patch(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No user found with ID "+c.Param("id"))
	}
	var req PatchUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Patch(c.Request().Context(), auth.CurrentUser(c), id, service.UserPatch{
		Username:       req.Username,
		Password:       req.Password,
		Name:           req.Name,
		Surname:        req.Surname,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Put godoc
// @Summary Completely update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body PutUserRequest true "Full user payload"
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No user found with ID x"
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *UserHandler) Put(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No user found with ID "+c.Param("id"))
	}
	var req PutUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.svc.Put(c.Request().Context(), auth.CurrentUser(c), id, service.UserPut{
		Username:       req.Username,
		Password:       req.Password,
		Name:           req.Name,
		Surname:        req.Surname,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Param id path string true "User ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No user found with ID x"
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No user found with ID "+c.Param("id"))
	}
	if err := h.svc.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
