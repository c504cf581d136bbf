package service

import (
	"context"

	"skill_assistant_backend/internal/catalog"
	"skill_assistant_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RecommendationService struct {
	Tests *TestService
}

func NewRecommendationService(tests *TestService) *RecommendationService {
	return &RecommendationService{Tests: tests}
}

// swagger:model Recommendations
type Recommendations struct {
	Webdev []catalog.Course `json:"webdev"`
	ML     []catalog.Course `json:"ml"`
}

// FilterCourses 精确匹配赛道与难度，无记录时难度缺省为 Beginner，
// 结果保持目录声明顺序
func FilterCourses(track string, level *model.TrackLevel) []catalog.Course {
	target := catalog.LevelBeginner
	if level != nil && level.Level != "" {
		target = level.Level
	}

	filtered := make([]catalog.Course, 0)
	for _, course := range catalog.Courses() {
		if course.Track == track && course.Difficulty == target {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

func (s *RecommendationService) Recommend(ctx context.Context, studentID primitive.ObjectID) (Recommendations, error) {
	levels, err := s.Tests.CurrentLevels(ctx, studentID)
	if err != nil {
		return Recommendations{}, err
	}

	return Recommendations{
		Webdev: FilterCourses(catalog.TrackWebdev, levels.Webdev),
		ML:     FilterCourses(catalog.TrackML, levels.ML),
	}, nil
}
