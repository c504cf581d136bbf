package repository

import (
	"errors"
	"testing"

	"skill_assistant_backend/internal/util"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestMapInsertError(t *testing.T) {
	t.Run("duplicate key", func(t *testing.T) {
		// 并发注册同一邮箱时第二次插入触发唯一索引冲突（code 11000）
		dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000}}}
		if got := mapInsertError(dup); got != util.ErrEmailRegistered {
			t.Errorf("mapInsertError(duplicate key) = %v, expected ErrEmailRegistered", got)
		}
	})

	t.Run("other write error", func(t *testing.T) {
		other := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 121}}}
		got := mapInsertError(other)
		if got == util.ErrEmailRegistered {
			t.Fatal("non-duplicate write error must not map to ErrEmailRegistered")
		}
		var we mongo.WriteException
		if !errors.As(got, &we) {
			t.Errorf("mapInsertError(other write error) = %v, expected the original write exception", got)
		}
	})

	t.Run("unrelated error", func(t *testing.T) {
		plain := errors.New("connection reset")
		if got := mapInsertError(plain); got != plain {
			t.Errorf("mapInsertError(unrelated) = %v, expected the error unchanged", got)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if got := mapInsertError(nil); got != nil {
			t.Errorf("mapInsertError(nil) = %v, expected nil", got)
		}
	})
}
