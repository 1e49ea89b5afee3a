package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"conversational-todo/internal/middleware"
	"conversational-todo/pkg/response"
)

type chatReq struct {
	Message string `json:"message" binding:"required,min=1"`
}

// Chat godoc
// @Summary     Send a chat message
// @Description Runs a natural language message through the agent and returns
// @Description the response along with the recognized intent and any action taken.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body chatReq true "Message"
// @Success     200 {object} orchestrator.Envelope
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	// Interaction ID correlates the request log lines with the agent's own.
	interactionID := uuid.NewString()
	h.l.Infof(ctx, "chat.delivery.http.Chat: interaction %s user %s message length %d", interactionID, sc.UserID, len(req.Message))

	env := h.orc.ProcessMessage(ctx, sc, req.Message)

	h.l.Infof(ctx, "chat.delivery.http.Chat: interaction %s intent %s confidence %.2f", interactionID, env.Intent, env.Confidence)
	response.OK(c, env)
}
