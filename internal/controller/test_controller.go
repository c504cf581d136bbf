package controller

import (
	"errors"
	"math"
	"net/http"

	"skill_assistant_backend/internal/catalog"
	"skill_assistant_backend/internal/service"
	"skill_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TestController struct {
	TestService *service.TestService
}

func NewTestController(testService *service.TestService) *TestController {
	return &TestController{TestService: testService}
}

// swagger:model SubmitTestRequest
type SubmitTestRequest struct {
	Answers []service.Answer `json:"answers"`
}

// swagger:model TestResultResponse
type TestResultResponse struct {
	Track      string  `json:"track"`
	Score      int     `json:"score"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	Level      string  `json:"level"`
	Message    string  `json:"message"`
}

// GetQuestions godoc
// @Summary 获取赛道题目
// @Description 返回指定赛道的题目列表，不包含正确答案
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Param   track path string true "赛道名 webdev|ml"
// @Success 200 {object} object "题目列表"
// @Failure 404 {object} util.Response "未知赛道"
// @Router /tests/{track} [get]
func (c *TestController) GetQuestions(ctx *gin.Context) {
	track := ctx.Param("track")

	questions, err := c.TestService.ListQuestions(track)
	if err != nil {
		util.NotFound(ctx, "Unknown track")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"track":     track,
		"questions": questions,
	})
}

// SubmitTest godoc
// @Summary 提交测验答案
// @Description 计分并记录本次提交，返回分数、百分比与水平
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   track path string true "赛道名 webdev|ml"
// @Param   body body SubmitTestRequest true "作答列表"
// @Success 200 {object} TestResultResponse "成功"
// @Failure 404 {object} util.Response "未知赛道"
// @Router /tests/{track} [post]
func (c *TestController) SubmitTest(ctx *gin.Context) {
	track := ctx.Param("track")

	var req SubmitTestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	student := util.GetStudentFromContext(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.TestService.Submit(ctx.Request.Context(), student, track, req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrUnknownTrack) {
			util.NotFound(ctx, "Unknown track")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, TestResultResponse{
		Track:      result.Track,
		Score:      result.Score,
		Total:      result.Total,
		Percentage: math.Round(result.Percentage*100) / 100,
		Level:      result.Level,
		Message:    catalog.MessageFor(result.Level),
	})
}

// GetLevels godoc
// @Summary 查询当前水平
// @Description 返回每个赛道最近一次提交的水平与百分比，未参加的赛道缺省
// @Tags 测验
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.LevelsResponse "成功"
// @Router /tests/levels [get]
func (c *TestController) GetLevels(ctx *gin.Context) {
	student := util.GetStudentFromContext(ctx)
	if student == nil {
		util.Unauthorized(ctx)
		return
	}

	levels, err := c.TestService.CurrentLevels(ctx.Request.Context(), student.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, levels)
}
