package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestResult 一次测验提交的不可变记录，只增不改
type TestResult struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentID   primitive.ObjectID `bson:"student_id" json:"student_id"`
	Track       string             `bson:"track" json:"track"`
	Score       int                `bson:"score" json:"score"`
	Total       int                `bson:"total" json:"total"`
	Percentage  float64            `bson:"percentage" json:"percentage"`
	Level       string             `bson:"level" json:"level"`
	SubmittedAt time.Time          `bson:"submitted_at" json:"submitted_at"`
}

// TrackLevel 某一赛道的当前水平
type TrackLevel struct {
	Level      string  `json:"level"`
	Percentage float64 `json:"percentage"`
}

// swagger:model LevelsResponse
type LevelsResponse struct {
	Webdev *TrackLevel `json:"webdev,omitempty"`
	ML     *TrackLevel `json:"ml,omitempty"`
}
