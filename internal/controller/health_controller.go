package controller

import (
	"net/http"
	"time"

	"skill_assistant_backend/internal/model"
	"skill_assistant_backend/internal/repository"
	"skill_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthController struct {
	Client     *mongo.Client
	StatusRepo *repository.StatusRepository
}

func NewHealthController(client *mongo.Client, statusRepo *repository.StatusRepository) *HealthController {
	return &HealthController{
		Client:     client,
		StatusRepo: statusRepo,
	}
}

// Root godoc
// @Summary 服务信息
// @Tags 系统
// @Produce json
// @Success 200 {object} object
// @Router / [get]
func (c *HealthController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Student Skill Assistant API"})
}

// HealthCheck godoc
// @Summary 健康检查
// @Description 检查服务与文档库连接状态
// @Tags 系统
// @Produce json
// @Success 200 {object} object
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	if err := c.Client.Ping(ctx.Request.Context(), readpref.Primary()); err != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "Database unavailable")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"components": gin.H{
			"database": "up",
		},
	})
}

// swagger:model StatusCheckRequest
type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required"`
}

// CreateStatusCheck godoc
// @Summary 上报状态检查
// @Tags 系统
// @Accept json
// @Produce json
// @Param body body StatusCheckRequest true "客户端名称"
// @Success 200 {object} model.StatusCheck
// @Router /status [post]
func (c *HealthController) CreateStatusCheck(ctx *gin.Context) {
	var req StatusCheckRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	check := &model.StatusCheck{
		ID:         uuid.New().String(),
		ClientName: req.ClientName,
		Timestamp:  time.Now().UTC(),
	}

	if err := c.StatusRepo.Insert(ctx.Request.Context(), check); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, check)
}

// ListStatusChecks godoc
// @Summary 查询状态检查记录
// @Tags 系统
// @Produce json
// @Success 200 {array} model.StatusCheck
// @Router /status [get]
func (c *HealthController) ListStatusChecks(ctx *gin.Context) {
	checks, err := c.StatusRepo.List(ctx.Request.Context(), 1000)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if checks == nil {
		checks = []model.StatusCheck{}
	}

	ctx.JSON(http.StatusOK, checks)
}
