package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mall-backend/internal/chat"
	"mall-backend/internal/middleware"
	"mall-backend/pkg/response"
)

// Chat godoc
// @Summary     AI chat proxy with product augmentation
// @Description Classifies the latest user message, retrieves matching catalog products and forwards the augmented conversation to the completion provider.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat payload"
// @Success     200 {object} chatResp
// @Failure     400 {object} map[string]string "Bad Request"
// @Failure     500 {object} map[string]string "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	req, err := h.processChatReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	output, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.mapChatError(c, err)
		return
	}

	response.OK(c, h.newChatResp(output))
}

func (h *handler) mapChatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrNoMessages), errors.Is(err, chat.ErrNoUserMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, chat.ErrCompletionFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI服务调用失败", "message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": response.DefaultErrorMessage})
	}
}

// ListMessages godoc
// @Summary     List chat history
// @Description Returns the authenticated user's chat messages ordered by timestamp.
// @Tags        AI
// @Produce     json
// @Success     200 {array} messageResp
// @Security    BearerAuth
// @Router      /api/ai/messages [GET]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	msgs, err := h.uc.ListMessages(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListMessages: %v", err)
		response.InternalError(c)
		return
	}

	out := make([]messageResp, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, newMessageResp(m))
	}
	response.OK(c, out)
}

// SaveMessage godoc
// @Summary     Save a chat message
// @Description Stores a single chat turn supplied by the client.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       body body saveMessageReq true "Message"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Security    BearerAuth
// @Router      /api/ai/messages [POST]
func (h *handler) SaveMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	req, err := h.processSaveMessageReq(c)
	if err != nil {
		response.BadRequest(c, "缺少必要参数")
		return
	}

	if _, err := h.uc.SaveMessage(ctx, sc, req.toInput()); err != nil {
		if errors.Is(err, chat.ErrMissingParams) {
			response.BadRequest(c, "缺少必要参数")
			return
		}
		h.l.Errorf(ctx, "uc.SaveMessage: %v", err)
		response.InternalError(c)
		return
	}

	response.Created(c, response.Resp{Status: response.StatusSuccess, Message: "消息已保存"})
}

// DeleteMessage godoc
// @Summary     Delete a chat message
// @Description Removes one message; only its owner may delete it.
// @Tags        AI
// @Produce     json
// @Param       id path int true "Message ID"
// @Success     200 {object} response.Resp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Security    BearerAuth
// @Router      /api/ai/messages/{id} [DELETE]
func (h *handler) DeleteMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFrom(c)
	if !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "无效的消息ID")
		return
	}

	if err := h.uc.DeleteMessage(ctx, sc, id); err != nil {
		switch {
		case errors.Is(err, chat.ErrMessageNotFound):
			response.NotFound(c, "消息不存在")
		case errors.Is(err, chat.ErrMessageForbidden):
			response.Forbidden(c, "无权删除该消息")
		default:
			h.l.Errorf(ctx, "uc.DeleteMessage: %v", err)
			response.InternalError(c)
		}
		return
	}

	response.OK(c, response.Resp{Status: response.StatusSuccess, Message: "消息已删除"})
}

// ReloadKeywords godoc
// @Summary     Rebuild the keyword index
// @Description Rebuilds the product keyword index and reports the vocabulary size.
// @Tags        AI
// @Produce     json
// @Success     200 {object} reloadResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Security    BearerAuth
// @Router      /api/ai/keywords/reload [POST]
func (h *handler) ReloadKeywords(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := middleware.ScopeFrom(c); !ok {
		response.Unauthorized(c, "未登录")
		return
	}

	out, err := h.uc.ReloadKeywords(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ReloadKeywords: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, reloadResp{
		Status:         response.StatusSuccess,
		VocabularySize: out.VocabularySize,
	})
}
