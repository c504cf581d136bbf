package repository

import (
	"context"

	"skill_assistant_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestResultRepository struct {
	Col *mongo.Collection
}

func NewTestResultRepository(db *mongo.Database) *TestResultRepository {
	return &TestResultRepository{Col: db.Collection("test_results")}
}

func (r *TestResultRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "student_id", Value: 1},
			{Key: "submitted_at", Value: -1},
		},
	})
	return err
}

// Create 每次提交都插入新记录，历史只增不改
func (r *TestResultRepository) Create(ctx context.Context, result *model.TestResult) error {
	res, err := r.Col.InsertOne(ctx, result)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		result.ID = oid
	}
	return nil
}

// FindByStudentDesc 按提交时间倒序返回某学生的全部测验记录
func (r *TestResultRepository) FindByStudentDesc(ctx context.Context, studentID primitive.ObjectID) ([]model.TestResult, error) {
	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []model.TestResult
	for cur.Next(ctx) {
		var res model.TestResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, cur.Err()
}
