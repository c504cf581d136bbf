package repository

import (
	"context"

	"skill_assistant_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type StatusRepository struct {
	Col *mongo.Collection
}

func NewStatusRepository(db *mongo.Database) *StatusRepository {
	return &StatusRepository{Col: db.Collection("status_checks")}
}

func (r *StatusRepository) Insert(ctx context.Context, check *model.StatusCheck) error {
	_, err := r.Col.InsertOne(ctx, check)
	return err
}

func (r *StatusRepository) List(ctx context.Context, limit int64) ([]model.StatusCheck, error) {
	opts := options.Find().SetLimit(limit)
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var checks []model.StatusCheck
	for cur.Next(ctx) {
		var check model.StatusCheck
		if err := cur.Decode(&check); err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}
	return checks, cur.Err()
}
