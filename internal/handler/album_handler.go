package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sharemypics/internal/auth"
	"sharemypics/internal/service"
)

// AlbumHandler bundles the album endpoints.
type AlbumHandler struct {
	svc     service.AlbumService
	baseURL string
}

// NewAlbumHandler creates a handler layer.
func NewAlbumHandler(svc service.AlbumService, baseURL string) *AlbumHandler {
	return &AlbumHandler{svc: svc, baseURL: baseURL}
}

// CreateAlbumRequest creates an album; the caller becomes its sole
// initial contributor.
type CreateAlbumRequest struct {
	Title    string     `json:"title" validate:"required,min=2,max=30"`
	Location *string    `json:"location"`
	CoverPic *uuid.UUID `json:"coverPic"`
}

// PatchAlbumRequest is a partial update; absent fields are left untouched.
type PatchAlbumRequest struct {
	Title    *string    `json:"title" validate:"omitempty,min=2,max=30"`
	Location *string    `json:"location"`
	CoverPic *uuid.UUID `json:"coverPic"`
}

// PutAlbumRequest is a full update; absent optional fields clear.
type PutAlbumRequest struct {
	Title    string     `json:"title" validate:"required,min=2,max=30"`
	Location *string    `json:"location"`
	CoverPic *uuid.UUID `json:"coverPic"`
}

// ContributeRequest names the user to grant write access to.
type ContributeRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// Create godoc
// @Summary Create an album
// @Tags albums
// @Accept json
// @Produce json
// @Param request body CreateAlbumRequest true "Album payload"
// @Success 201 {object} model.Album
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /albums [post]
func (h *AlbumHandler) Create(c echo.Context) error {
	var req CreateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	album, err := h.svc.Create(c.Request().Context(), auth.CurrentUser(c), req.Title, req.Location, req.CoverPic)
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, h.baseURL+"/albums/"+album.ID.String())
	return c.JSON(http.StatusCreated, album)
}

// List godoc
// @Summary List albums sorted by title
// @Tags albums
// @Produce json
// @Success 200 {array} model.Album
// @Router /albums [get]
func (h *AlbumHandler) List(c echo.Context) error {
	albums, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, albums)
}

// Get godoc
// @Summary Get an album by id
// @Tags albums
// @Produce json
// @Param id path string true "Album ID"
// @Success 200 {object} model.Album
// @Failure 404 {string} string "No album found with ID x"
// @Router /albums/{id} [get]
func (h *AlbumHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No album found with ID "+c.Param("id"))
	}
	album, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, album)
}

// Patch godoc
// @Summary Partially update an album, all parameters optional
// @Tags albums
// @Accept json
// @Produce json
// @Param id path string true "Album ID"
// @Param request body PatchAlbumRequest true "Fields to update"
// @Success 200 {object} model.Album
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No album found with ID x"
// @Security BearerAuth
// @Router /albums/{id} [patch]
func (h *AlbumHandler) Patch(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No album found with ID "+c.Param("id"))
	}
	var req PatchAlbumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	album, err := h.svc.Patch(c.Request().Context(), auth.CurrentUser(c), id, service.AlbumPatch{
		Title:    req.Title,
		Location: req.Location,
		CoverPic: req.CoverPic,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, album)
}

// Put godoc
// @Summary Completely update an album
// @Tags albums
// @Accept json
// @Produce json
// @Param id path string true "Album ID"
// @Param request body PutAlbumRequest true "Full album payload"
// @Success 200 {object} model.Album
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No album found with ID x"
// @Security BearerAuth
// @Router /albums/{id} [put]
func (h *AlbumHandler) Put(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No album found with ID "+c.Param("id"))
	}
	var req PutAlbumRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	album, err := h.svc.Put(c.Request().Context(), auth.CurrentUser(c), id, service.AlbumPut{
		Title:    req.Title,
		Location: req.Location,
		CoverPic: req.CoverPic,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, album)
}

// Contribute godoc
// @Summary Add a contributor to an album
// @Tags albums
// @Accept json
// @Produce json
// @Param id path string true "Album ID"
// @Param request body ContributeRequest true "User to add"
// @Success 200 {object} model.Album
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No user found with ID x"
// @Security BearerAuth
// @Router /albums/contribute/{id} [post]
func (h *AlbumHandler) Contribute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No album found with ID "+c.Param("id"))
	}
	var req ContributeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	album, err := h.svc.AddContributor(c.Request().Context(), auth.CurrentUser(c), id, req.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, album)
}

// Delete godoc
// @Summary Delete an album and its pictures
// @Tags albums
// @Param id path string true "Album ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No album found with ID x"
// @Security BearerAuth
// @Router /albums/{id} [delete]
func (h *AlbumHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No album found with ID "+c.Param("id"))
	}
	if err := h.svc.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
