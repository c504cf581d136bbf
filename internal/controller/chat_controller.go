package controller

import (
	"net/http"

	"skill_assistant_backend/internal/service"
	"skill_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// swagger:model ChatRequest
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// Chat godoc
// @Summary 聊天助手
// @Description 基于关键词匹配返回固定回复
// @Tags 聊天
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body ChatRequest true "用户消息"
// @Success 200 {object} object "回复"
// @Failure 400 {object} util.Response "参数错误"
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"reply": c.ChatService.Reply(req.Message),
	})
}
