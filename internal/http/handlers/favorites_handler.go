// Favorites HTTP handlers.
//
// This file exposes the saved-locations endpoints:
//   - GET    /favorites
//   - POST   /favorites
//   - DELETE /favorites/{id}
//
// Deleting a favorite that is already gone (or whose id is malformed)
// succeeds; deleting another user's favorite is a 403 and leaves the row
// untouched.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/voyago/travel-assistant/internal/services"
)

// CreateFavoriteRequest is the JSON payload for saving a location.
type CreateFavoriteRequest struct {
	Location string  `json:"location" binding:"required" example:"Kyoto"`
	Notes    *string `json:"notes,omitempty" example:"cherry blossom season"`
}

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List saved locations
// @Description Returns the user's favorites, newest first.
// @Tags        Favorites
// @Produce     json
//
// @Success     200  {array}   domain.Favorite
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	items, err := h.favSvc.List(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list favorites")
		return
	}
	ok(c, http.StatusOK, items)
}

// CreateFavorite godoc
// @ID          createFavorite
// @Summary     Save a location
// @Description Adds a favorite for the current user and returns it.
// @Tags        Favorites
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateFavoriteRequest  true  "Favorite payload"
//
// @Success     201  {object}  domain.Favorite
// @Failure     400  {object}  handlers.ErrorResponse  "Missing location"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /favorites [post]
func (h *Handlers) CreateFavorite(c *gin.Context) {
	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "location is required")
		return
	}

	f, err := h.favSvc.Add(c.Request.Context(), userID(c), req.Location, req.Notes)
	if errors.Is(err, services.ErrEmptyLocation) {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, "failed to save favorite")
		return
	}
	ok(c, http.StatusCreated, f)
}

// DeleteFavorite godoc
// @ID          deleteFavorite
// @Summary     Remove a saved location
// @Description Deletes the favorite when it belongs to the current user. Missing or malformed ids succeed as no-ops.
// @Tags        Favorites
// @Produce     json
//
// @Param       id  path  string  true  "Favorite ID (UUID)"  format(uuid)
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     403  {object}  handlers.ErrorResponse  "Belongs to another user"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /favorites/{id} [delete]
func (h *Handlers) DeleteFavorite(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		// A malformed id can never name a row; deletes are lenient no-ops.
		noContent(c)
		return
	}

	err := h.favSvc.Delete(c.Request.Context(), userID(c), id)
	if errors.Is(err, services.ErrForbidden) {
		fail(c, http.StatusForbidden, ErrCodeForbidden, "favorite belongs to another user")
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to delete favorite")
		return
	}
	noContent(c)
}
