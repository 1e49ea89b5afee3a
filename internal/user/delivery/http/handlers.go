package http

import (
	"github.com/gin-gonic/gin"

	"conversational-todo/internal/middleware"
	"conversational-todo/pkg/response"
)

// Register godoc
// @Summary     Register an account
// @Description Creates a new account and returns the user plus an access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Credentials"
// @Success     201 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Register", err)
		return
	}

	response.Created(c, newAuthResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Exchanges email and password for an access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.respondError(c, "uc.Login", err)
		return
	}

	response.OK(c, newAuthResp(output))
}

// Me godoc
// @Summary     Current user
// @Description Returns the account behind the presented token.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc.UserID)
	if err != nil {
		h.respondError(c, "uc.Me", err)
		return
	}

	response.OK(c, newMeResp(output))
}
