package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"sharemypics/internal/auth"
	"sharemypics/internal/model"
	"sharemypics/internal/service"
)

// PictureHandler bundles the picture endpoints.
type PictureHandler struct {
	svc     service.PictureService
	baseURL string
}

// NewPictureHandler creates a handler layer.
func NewPictureHandler(svc service.PictureService, baseURL string) *PictureHandler {
	return &PictureHandler{svc: svc, baseURL: baseURL}
}

// CreatePictureRequest attaches a picture to an album. The uploader is the
// authenticated caller.
type CreatePictureRequest struct {
	InAlbum  uuid.UUID    `json:"inAlbum" validate:"required"`
	URL      string       `json:"url" validate:"required"`
	Location *model.Point `json:"location"`
}

// PatchPictureRequest is a partial update; absent fields are left untouched.
type PatchPictureRequest struct {
	InAlbum  *uuid.UUID   `json:"inAlbum"`
	URL      *string      `json:"url" validate:"omitempty,min=1"`
	AddedBy  *uuid.UUID   `json:"addedBy"`
	Location *model.Point `json:"location"`
}

// PutPictureRequest is a full update; an absent location clears it.
type PutPictureRequest struct {
	InAlbum  uuid.UUID    `json:"inAlbum" validate:"required"`
	URL      string       `json:"url" validate:"required"`
	AddedBy  uuid.UUID    `json:"addedBy" validate:"required"`
	Location *model.Point `json:"location"`
}

// Create godoc
// @Summary Post a picture into an album
// @Tags pictures
// @Accept json
// @Produce json
// @Param request body CreatePictureRequest true "Picture payload"
// @Success 201 {object} model.Picture
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No album found with ID x"
// @Security BearerAuth
// @Router /pictures [post]
func (h *PictureHandler) Create(c echo.Context) error {
	var req CreatePictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picture, err := h.svc.Create(c.Request().Context(), auth.CurrentUser(c), req.InAlbum, req.URL, req.Location)
	if err != nil {
		return respondError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, h.baseURL+"/pictures/"+picture.ID.String())
	return c.JSON(http.StatusCreated, picture)
}

// List godoc
// @Summary List pictures sorted by url
// @Tags pictures
// @Produce json
// @Param inAlbum query string false "Only pictures in this album"
// @Param addedBy query string false "Only pictures added by this user"
// @Success 200 {array} model.Picture
// @Router /pictures [get]
func (h *PictureHandler) List(c echo.Context) error {
	pictures, err := h.svc.List(c.Request().Context(), c.QueryParam("inAlbum"), c.QueryParam("addedBy"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pictures)
}

// Get godoc
// @Summary Get a picture by id
// @Tags pictures
// @Produce json
// @Param id path string true "Picture ID"
// @Success 200 {object} model.Picture
// @Failure 404 {string} string "No picture found with ID x"
// @Router /pictures/{id} [get]
func (h *PictureHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No picture found with ID "+c.Param("id"))
	}
	picture, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, picture)
}

// Patch godoc
// @Summary Partially update a picture, all parameters optional
// @Tags pictures
// @Accept json
// @Produce json
// @Param id path string true "Picture ID"
// @Param request body PatchPictureRequest true "Fields to update"
// @Success 200 {object} model.Picture
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No picture found with ID x"
// @Security BearerAuth
// @Router /pictures/{id} [patch]
func (h *PictureHandler) Patch(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No picture found with ID "+c.Param("id"))
	}
	var req PatchPictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picture, err := h.svc.Patch(c.Request().Context(), auth.CurrentUser(c), id, service.PicturePatch{
		InAlbum:  req.InAlbum,
		URL:      req.URL,
		AddedBy:  req.AddedBy,
		Location: req.Location,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, picture)
}

// Put godoc
// @Summary Completely update a picture
// @Tags pictures
// @Accept json
// @Produce json
// @Param id path string true "Picture ID"
// @Param request body PutPictureRequest true "Full picture payload"
// @Success 200 {object} model.Picture
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No picture found with ID x"
// @Security BearerAuth
// @Router /pictures/{id} [put]
func (h *PictureHandler) Put(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No picture found with ID "+c.Param("id"))
	}
	var req PutPictureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	picture, err := h.svc.Put(c.Request().Context(), auth.CurrentUser(c), id, service.PicturePut{
		InAlbum:  req.InAlbum,
		URL:      req.URL,
		AddedBy:  req.AddedBy,
		Location: req.Location,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, picture)
}

// Delete godoc
// @Summary Delete a picture
// @Tags pictures
// @Param id path string true "Picture ID"
// @Success 204
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {string} string "No picture found with ID x"
// @Security BearerAuth
// @Router /pictures/{id} [delete]
func (h *PictureHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.String(http.StatusNotFound, "No picture found with ID "+c.Param("id"))
	}
	if err := h.svc.Delete(c.Request().Context(), auth.CurrentUser(c), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
