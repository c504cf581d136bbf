package service

import (
	"context"

	"skill_assistant_backend/internal/config"
	"skill_assistant_backend/internal/event"
	"skill_assistant_backend/internal/model"
	"skill_assistant_backend/internal/repository"
	"skill_assistant_backend/internal/util"
	"skill_assistant_backend/pkg/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	StudentRepo *repository.StudentRepository
	Publisher   *event.Publisher // 未配置 RabbitMQ 时为 nil
	Cfg         *config.Config
}

func NewAuthService(studentRepo *repository.StudentRepository, publisher *event.Publisher, cfg *config.Config) *AuthService {
	return &AuthService{
		StudentRepo: studentRepo,
		Publisher:   publisher,
		Cfg:         cfg,
	}
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword 存储的哈希格式异常时同样返回 false，绝不抛向认证成功路径
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// Register 先查邮箱再插入；并发窗口由 students.email 唯一索引兜底，
// 重复插入同样映射为 ErrEmailRegistered
func (s *AuthService) Register(ctx context.Context, student *model.Student, password string) error {
	_, err := s.StudentRepo.FindByEmail(ctx, student.Email)
	if err == nil {
		return util.ErrEmailRegistered
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	student.PasswordHash = hashed

	if err := s.StudentRepo.Create(ctx, student); err != nil {
		return err
	}

	if s.Publisher != nil {
		if err := s.Publisher.Publish(event.StudentRegistered, student.Public()); err != nil {
			logger.Log.Warn("failed to publish registration event", zap.Error(err))
		}
	}
	return nil
}

// Login 凭据错误不区分邮箱不存在与密码不符；存储故障原样上抛
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.Student, error) {
	student, err := s.StudentRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPassword(password, student.PasswordHash) {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(student, s.Cfg.JWT.Secret, s.Cfg.JWT.Algorithm, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, student, nil
}
