package http

import (
	"github.com/gin-gonic/gin"

	"commute-assistant/internal/middleware"
	"commute-assistant/pkg/response"
)

// Chat godoc
// @Summary     Process one chat turn
// @Description Runs one conversational turn: classifies the utterance, updates the user's slot-filling context, and returns either a follow-up question or the result of an executed intent.
// @Tags        Dialogue
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User utterance with optional coordinates"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}
