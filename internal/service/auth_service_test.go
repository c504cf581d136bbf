package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"skill_assistant_backend/internal/config"
	"skill_assistant_backend/internal/repository"
	"skill_assistant_backend/internal/util"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !CheckPassword("s3cret-password", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	// 存储中哈希损坏时必须按校验失败处理，不能进入认证成功路径
	testCases := []string{"", "not-a-bcrypt-hash", "$2a$10$tooshort"}
	for _, hash := range testCases {
		if CheckPassword("anything", hash) {
			t.Errorf("malformed hash %q accepted", hash)
		}
	}
}

func TestLoginStoreFaultIsNotCredentialError(t *testing.T) {
	// 存储不可达时登录必须上抛原始错误，而不是伪装成凭据错误
	client, err := mongo.Connect(context.Background(), options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetServerSelectionTimeout(200*time.Millisecond))
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	repo := repository.NewStudentRepository(client.Database("skill_assistant_test"))
	svc := NewAuthService(repo, nil, &config.Config{})

	_, _, err = svc.Login(context.Background(), "someone@example.com", "password")
	if err == nil {
		t.Fatal("expected an error with an unreachable store")
	}
	if errors.Is(err, util.ErrInvalidCredentials) {
		t.Error("store fault must not map to invalid credentials")
	}
}
