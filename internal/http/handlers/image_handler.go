// Location image HTTP handler.
//
// This file exposes:
//   - POST /generate-image
//
// The response carries either a hosted URL (OpenAI) or a base64 data URI
// (Hugging Face), depending on the configured image provider.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/ai"
)

// GenerateImageRequest is the JSON payload naming the location to render.
type GenerateImageRequest struct {
	Location string `json:"location" binding:"required" example:"Paris"`
}

// ImageResponse carries the generated image reference.
type ImageResponse struct {
	Location string `json:"location" example:"Paris"`
	ImageURL string `json:"imageUrl" example:"https://oaidalleapi.example.com/img.png"`
}

// GenerateImage godoc
// @ID          generateImage
// @Summary     Generate a location image
// @Description Generates a representative travel photograph for the location via the configured image provider.
// @Tags        Travel
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.GenerateImageRequest  true  "Image payload"
//
// @Success     200  {object}  handlers.ImageResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Missing location"
// @Failure     502  {object}  handlers.ErrorResponse  "Image generation failed"
// @Failure     503  {object}  handlers.ErrorResponse  "Image provider not configured"
// @Router      /generate-image [post]
func (h *Handlers) GenerateImage(c *gin.Context) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "location is required")
		return
	}
	loc := strings.TrimSpace(req.Location)
	if loc == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "location is required")
		return
	}
	if h.imageSvc == nil {
		fail(c, http.StatusServiceUnavailable, ErrCodeConfiguration, "image provider is not configured")
		return
	}

	url, err := h.imageSvc.Generate(c.Request.Context(), loc)
	if errors.Is(err, ai.ErrNotConfigured) {
		fail(c, http.StatusServiceUnavailable, ErrCodeConfiguration, "image provider is not configured")
		return
	}
	if err != nil {
		fail(c, http.StatusBadGateway, ErrCodeImageFailed, "failed to generate image")
		return
	}
	ok(c, http.StatusOK, ImageResponse{Location: loc, ImageURL: url})
}
