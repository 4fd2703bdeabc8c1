// Travel data HTTP handlers.
//
// This file exposes the auxiliary payloads rendered next to the chat:
//   - GET /weather/:location
//   - GET /cultural-info/:location
//   - GET /transportation/:location
//
// The endpoints are public; the location travels as a path parameter.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/travel"
)

// locationParam extracts and validates the location path parameter, failing
// the request when it is blank.
func locationParam(c *gin.Context) (string, bool) {
	loc := strings.TrimSpace(c.Param("location"))
	if loc == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "location is required")
		return "", false
	}
	return loc, true
}

// GetWeather godoc
// @ID          getWeather
// @Summary     Weather for a location
// @Description Returns the weather payload with activity recommendations. Results are cached per location for a configured TTL.
// @Tags        Travel
// @Produce     json
//
// @Param       location  path  string  true  "Location name"  example(Paris)
//
// @Success     200  {object}  travel.Weather
// @Failure     400  {object}  handlers.ErrorResponse  "Missing location"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /weather/{location} [get]
func (h *Handlers) GetWeather(c *gin.Context) {
	loc, okLoc := locationParam(c)
	if !okLoc {
		return
	}

	w, err := h.weatherSvc.Get(c.Request.Context(), loc)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "failed to get weather")
		return
	}
	ok(c, http.StatusOK, w)
}

// GetCulturalInfo godoc
// @ID          getCulturalInfo
// @Summary     Cultural information for a location
// @Description Returns languages, festivals, customs, and etiquette notes for the location.
// @Tags        Travel
// @Produce     json
//
// @Param       location  path  string  true  "Location name"  example(Paris)
//
// @Success     200  {object}  travel.CulturalInfo
// @Failure     400  {object}  handlers.ErrorResponse  "Missing location"
// @Router      /cultural-info/{location} [get]
func (h *Handlers) GetCulturalInfo(c *gin.Context) {
	loc, okLoc := locationParam(c)
	if !okLoc {
		return
	}
	ok(c, http.StatusOK, travel.GetCulturalInfo(loc))
}

// GetTransportation godoc
// @ID          getTransportation
// @Summary     Transportation options for a location
// @Description Returns available flights and trains to the location.
// @Tags        Travel
// @Produce     json
//
// @Param       location  path  string  true  "Location name"  example(Paris)
//
// @Success     200  {object}  travel.Transportation
// @Failure     400  {object}  handlers.ErrorResponse  "Missing location"
// @Router      /transportation/{location} [get]
func (h *Handlers) GetTransportation(c *gin.Context) {
	loc, okLoc := locationParam(c)
	if !okLoc {
		return
	}
	ok(c, http.StatusOK, travel.GetTransportation(loc))
}
