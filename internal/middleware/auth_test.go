package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skill_assistant_backend/internal/config"
	"skill_assistant_backend/internal/model"
	"skill_assistant_backend/internal/repository"
	"skill_assistant_backend/internal/util"
	"skill_assistant_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func TestBearerToken(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expected string
	}{
		{"canonical scheme", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"uppercase scheme", "BEARER abc.def.ghi", "abc.def.ghi"},
		{"wrong scheme", "Token abc.def.ghi", ""},
		{"scheme without token", "Bearer ", ""},
		{"empty header", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bearerToken(tc.header); got != tc.expected {
				t.Errorf("bearerToken(%q) = %q, expected %q", tc.header, got, tc.expected)
			}
		})
	}
}

func newAuthTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()

	// 不可达的存储地址，任何查询都以连接错误收场
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	students := repository.NewStudentRepository(client.Database("skill_assistant_test"))

	router := gin.New()
	router.Use(AuthMiddleware(cfg, students))
	router.GET("/protected", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func testJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "middleware-test-secret"
	cfg.JWT.Algorithm = "HS256"
	return cfg
}

func TestAuthMiddlewareRejectsBadTokens(t *testing.T) {
	router := newAuthTestRouter(t, testJWTConfig())

	testCases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc.def.ghi"},
		{"garbage token", "Bearer not.a.token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, expected 401", w.Code)
			}
			if got := w.Header().Get("WWW-Authenticate"); got != "Bearer" {
				t.Errorf("WWW-Authenticate = %q, expected Bearer", got)
			}
		})
	}
}

func TestAuthMiddlewareStoreFaultIsInternalError(t *testing.T) {
	cfg := testJWTConfig()
	router := newAuthTestRouter(t, cfg)

	student := &model.Student{ID: primitive.NewObjectID(), Email: "someone@example.com"}
	token, err := util.GenerateJWT(student, cfg.JWT.Secret, cfg.JWT.Algorithm, time.Hour)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	// 小写 scheme 同样有效，令牌到达存储查询
	req.Header.Set("Authorization", "bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, expected 500 when the store is unreachable", w.Code)
	}
}
