package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Student 学生文档，email 全局唯一
type Student struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Branch       string             `bson:"branch" json:"branch"`
	Semester     string             `bson:"semester" json:"semester"`
	CreatedAt    time.Time          `bson:"created_at" json:"-"`
}

// swagger:model StudentPublic
type StudentPublic struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Branch   string `json:"branch"`
	Semester string `json:"semester"`
}

func (s *Student) Public() StudentPublic {
	return StudentPublic{
		ID:       s.ID.Hex(),
		Name:     s.Name,
		Email:    s.Email,
		Branch:   s.Branch,
		Semester: s.Semester,
	}
}
