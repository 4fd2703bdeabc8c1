// Search history HTTP handler.
//
// This file exposes the read side of the append-only search history:
//   - GET /user/history (paginated, weak ETag support)
//
// Writes happen inside the chat flow; there is no endpoint to mutate or
// delete history.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voyago/travel-assistant/internal/utils"
)

// clampPagination parses and bounds the page/per_page query params.
func clampPagination(c *gin.Context) (page, perPage int) {
	const (
		defaultPage    = 1
		defaultPerPage = 20
		maxPerPage     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	perPage = utils.AtoiDefault(c.Query("per_page"), defaultPerPage)
	if perPage < 1 {
		perPage = 1
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return
}

// ListHistory godoc
// @ID          listHistory
// @Summary     List search history (paginated)
// @Description Returns a page of the user's search history, newest first. Supports weak ETag via If-None-Match and may return 304.
// @Tags        History
// @Produce     json
//
// @Param       If-None-Match  header  string  false  "Return 304 if ETag matches"
// @Param       page           query   int     false  "Page number"      minimum(1) default(1)
// @Param       per_page       query   int     false  "Items per page"   minimum(1) maximum(100) default(20)
//
// @Success     200  {object}  services.HistoryPage
// @Header      200  {string}  ETag  "Weak ETag for the current result"
// @Success     304  {string}  string  "Not Modified"
// @Failure     401  {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /user/history [get]
func (h *Handlers) ListHistory(c *gin.Context) {
	ctx := c.Request.Context()
	uid := userID(c)
	page, perPage := clampPagination(c)

	// ETag pre-check, best effort: a failed stats query falls through to the
	// normal fetch.
	if etag, err := h.histSvc.ETag(ctx, uid, page, perPage); err == nil && etag != "" {
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	pageResp, err := h.histSvc.ListPage(ctx, uid, page, perPage)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "failed to list history")
		return
	}
	ok(c, http.StatusOK, pageResp)
}
