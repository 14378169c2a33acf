package http

import (
	"github.com/gin-gonic/gin"

	"clainai/internal/middleware"
	"clainai/pkg/response"
)

// ListPending godoc
// @Summary     List pending agent tasks
// @Description Returns the caller's pending tasks in creation order.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks [GET]
func (h *handler) ListPending(c *gin.Context) {
	ctx := c.Request.Context()

	tasks, err := h.uc.ListPending(ctx, middleware.SessionID(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListPending: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(tasks))
}

// Get godoc
// @Summary     Get an agent task
// @Description Only tasks of the caller's session are visible.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id} [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	task, err := h.uc.GetOwned(ctx, middleware.SessionID(c), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTaskResp(task))
}

// Complete godoc
// @Summary     Complete an agent task
// @Description Moves a pending task to completed. completed=false when it was already completed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Task ID"
// @Param       body body completeReq true "Result"
// @Success     200 {object} completeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	var req completeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	ok, err := h.uc.CompleteOwned(ctx, middleware.SessionID(c), c.Param("id"), req.Result)
	if err != nil {
		h.l.Warnf(ctx, "uc.CompleteOwned: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, completeResp{Completed: ok})
}
