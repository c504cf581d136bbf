package controller

import (
	"net/http"

	"skill_assistant_backend/internal/catalog"

	"github.com/gin-gonic/gin"
)

type DocsController struct{}

func NewDocsController() *DocsController {
	return &DocsController{}
}

// GetDocs godoc
// @Summary 获取文档
// @Description 返回全部静态文档分类与片段
// @Tags 文档
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object "文档分类列表"
// @Router /docs [get]
func (c *DocsController) GetDocs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"categories": catalog.DocCategories(),
	})
}
