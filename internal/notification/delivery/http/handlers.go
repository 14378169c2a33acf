package http

import (
	"github.com/gin-gonic/gin"

	"clainai/internal/middleware"
	"clainai/pkg/response"
)

// List godoc
// @Summary     List notifications
// @Description Returns the caller's notifications, newest first, with the unread count.
// @Tags        Notifications
// @Produce     json
// @Param       unread query bool false "Only unread notifications"
// @Param       limit  query int  false "Page size (default: 50)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput(middleware.SessionID(c)))
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// MarkRead godoc
// @Summary     Acknowledge a notification
// @Tags        Notifications
// @Produce     json
// @Param       id path string true "Notification ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/notifications/{id}/read [POST]
func (h *handler) MarkRead(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.MarkRead(ctx, middleware.SessionID(c), c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.MarkRead: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
