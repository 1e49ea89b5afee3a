package http

import (
	"github.com/gin-gonic/gin"

	"conversational-todo/internal/middleware"
	"conversational-todo/pkg/response"
)

// Create godoc
// @Summary     Create a todo
// @Description Creates a new todo for the authenticated user. The due_date field
// @Description accepts relative tokens such as "tomorrow", "next_week" or "by_date:12/25".
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Todo data"
// @Success     201 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Create", err)
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List todos
// @Description Returns a paginated list of the user's todos. The due query
// @Description parameter accepts the same tokens as due_date and keeps only
// @Description todos due on or before the resolved day.
// @Tags        Todo
// @Produce     json
// @Security    BearerAuth
// @Param       completed query bool   false "Filter by completion state"
// @Param       priority  query int    false "Filter by priority (1-5)"
// @Param       due       query string false "Due date token filter"
// @Param       limit     query int    false "Page size (default: 20, max: 100)"
// @Param       offset    query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.List", err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a todo
// @Description Returns a single todo by ID. Only the owner can see it.
// @Tags        Todo
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Todo ID"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, sc, id)
	if err != nil {
		h.respondError(c, "uc.Detail", err)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a todo
// @Description Applies a partial update. Only fields present in the body change.
// @Tags        Todo
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path int       true "Todo ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Update", err)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a todo
// @Description Permanently removes a todo. Only the owner can delete it.
// @Tags        Todo
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Todo ID"
// @Success     200 {object} deleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/todos/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Delete(ctx, sc, id)
	if err != nil {
		h.respondError(c, "uc.Delete", err)
		return
	}

	response.OK(c, h.newDeleteResp(output))
}
