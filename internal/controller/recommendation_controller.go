package controller

import (
	"net/http"

	"skill_assistant_backend/internal/service"
	"skill_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	RecommendationService *service.RecommendationService
}

func NewRecommendationController(recommendationService *service.RecommendationService) *RecommendationController {
	return &RecommendationController{RecommendationService: recommendationService}
}

// GetRecommendations godoc
// @Summary 课程推荐
// @Description 按学生各赛道当前水平过滤课程目录，未测试的赛道按 Beginner 推荐
// @Tags 推荐
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} service.Recommendations "成功"
// @Router /recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx *gin.Context) {
	student := util.GetStudentFromContext(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	recommendations, err := c.RecommendationService.Recommend(ctx.Request.Context(), student.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, recommendations)
}
