package middleware

import (
	"errors"
	"strings"

	"skill_assistant_backend/internal/config"
	"skill_assistant_backend/internal/repository"
	"skill_assistant_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// bearerToken 从 Authorization 头提取凭据，scheme 不区分大小写
func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// AuthMiddleware 校验 Bearer 令牌并确认学生仍然存在；
// 缺失、无效、过期的令牌一律同样的 401 响应，存储故障按内部错误处理
func AuthMiddleware(cfg *config.Config, students *repository.StudentRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret, cfg.JWT.Algorithm)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		student, err := students.FindByID(c.Request.Context(), claims.StudentID())
		if err != nil {
			if errors.Is(err, util.ErrStudentNotFound) {
				util.Unauthorized(c)
			} else {
				util.LogInternalError(c, err)
			}
			c.Abort()
			return
		}

		c.Set("student", student)
		c.Next()
	}
}
