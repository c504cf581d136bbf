package repository

import (
	"context"
	"time"

	"skill_assistant_backend/internal/model"
	"skill_assistant_backend/internal/util"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StudentRepository struct {
	Col *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{Col: db.Collection("students")}
}

// EnsureIndexes 在 email 上建唯一索引，由存储层兜底并发注册的竞态
func (r *StudentRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// mapInsertError 将唯一索引冲突映射为邮箱已注册，其他错误原样返回
func mapInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return util.ErrEmailRegistered
	}
	return err
}

func (r *StudentRepository) Create(ctx context.Context, student *model.Student) error {
	if student.CreatedAt.IsZero() {
		student.CreatedAt = time.Now().UTC()
	}

	res, err := r.Col.InsertOne(ctx, student)
	if err != nil {
		return mapInsertError(err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		student.ID = oid
	}
	return nil
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	var student model.Student
	err := r.Col.FindOne(ctx, bson.M{"email": email}).Decode(&student)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*model.Student, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, util.ErrStudentNotFound
	}

	var student model.Student
	err = r.Col.FindOne(ctx, bson.M{"_id": oid}).Decode(&student)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}
