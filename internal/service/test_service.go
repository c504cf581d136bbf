package service

import (
	"context"
	"encoding/json"
	"time"

	"skill_assistant_backend/internal/catalog"
	"skill_assistant_backend/internal/event"
	"skill_assistant_backend/internal/model"
	"skill_assistant_backend/internal/repository"
	"skill_assistant_backend/internal/util"
	"skill_assistant_backend/pkg/logger"
	"skill_assistant_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const levelsCacheTTL = 5 * time.Minute

type TestService struct {
	ResultRepo *repository.TestResultRepository
	Redis      *redis.Client    // 可空，最新水平的只读缓存
	Publisher  *event.Publisher // 可空
}

func NewTestService(resultRepo *repository.TestResultRepository, rdb *redis.Client, publisher *event.Publisher) *TestService {
	return &TestService{
		ResultRepo: resultRepo,
		Redis:      rdb,
		Publisher:  publisher,
	}
}

// Answer 单题作答：题目ID + 所选选项下标
type Answer struct {
	QuestionID  string `json:"questionId" binding:"required"`
	OptionIndex int    `json:"optionIndex"`
}

type ScoredResult struct {
	Score      int
	Total      int
	Percentage float64
	Level      string
}

// ListQuestions 返回赛道题目的对外视图，未知赛道报错
func (s *TestService) ListQuestions(track string) ([]catalog.QuestionPublic, error) {
	questions, ok := catalog.PublicQuestionsFor(track)
	if !ok {
		return nil, util.ErrUnknownTrack
	}
	return questions, nil
}

// ScoreAnswers 计分：未知题目ID静默跳过，答案顺序不影响结果
func ScoreAnswers(track string, answers []Answer) (ScoredResult, error) {
	questions, ok := catalog.QuestionsFor(track)
	if !ok {
		return ScoredResult{}, util.ErrUnknownTrack
	}

	byID := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	score := 0
	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		if ans.OptionIndex == q.CorrectIndex {
			score++
		}
	}

	total := len(questions)
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}

	return ScoredResult{
		Score:      score,
		Total:      total,
		Percentage: percentage,
		Level:      catalog.LevelFor(percentage),
	}, nil
}

// Submit 计分并落一条新的不可变记录，历史累积
func (s *TestService) Submit(ctx context.Context, student *model.Student, track string, answers []Answer) (*model.TestResult, error) {
	scored, err := ScoreAnswers(track, answers)
	if err != nil {
		return nil, err
	}

	result := &model.TestResult{
		StudentID:   student.ID,
		Track:       track,
		Score:       scored.Score,
		Total:       scored.Total,
		Percentage:  scored.Percentage,
		Level:       scored.Level,
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.ResultRepo.Create(ctx, result); err != nil {
		return nil, err
	}

	s.invalidateLevelsCache(ctx, student.ID)
	monitoring.TestSubmissions.WithLabelValues(track, scored.Level).Inc()

	if s.Publisher != nil {
		if err := s.Publisher.Publish(event.TestSubmitted, result); err != nil {
			logger.Log.Warn("failed to publish submission event", zap.Error(err))
		}
	}

	return result, nil
}

// LatestLevels 对倒序序列折叠，每个赛道只保留最先出现（最新）的一条；
// 没有任何提交的赛道缺省为 nil
func LatestLevels(resultsDesc []model.TestResult) model.LevelsResponse {
	seen := make(map[string]*model.TrackLevel, 2)
	for _, r := range resultsDesc {
		if _, ok := seen[r.Track]; ok {
			continue
		}
		seen[r.Track] = &model.TrackLevel{Level: r.Level, Percentage: r.Percentage}
	}
	return model.LevelsResponse{
		Webdev: seen[catalog.TrackWebdev],
		ML:     seen[catalog.TrackML],
	}
}

// CurrentLevels 查询学生各赛道的当前水平，命中缓存时不访问存储
func (s *TestService) CurrentLevels(ctx context.Context, studentID primitive.ObjectID) (model.LevelsResponse, error) {
	key := levelsCacheKey(studentID)
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, key).Result()
		if err == nil {
			var levels model.LevelsResponse
			if json.Unmarshal([]byte(cached), &levels) == nil {
				return levels, nil
			}
		}
	}

	results, err := s.ResultRepo.FindByStudentDesc(ctx, studentID)
	if err != nil {
		return model.LevelsResponse{}, err
	}
	levels := LatestLevels(results)

	if s.Redis != nil {
		if data, err := json.Marshal(levels); err == nil {
			if err := s.Redis.Set(ctx, key, data, levelsCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache levels", zap.Error(err))
			}
		}
	}
	return levels, nil
}

func (s *TestService) invalidateLevelsCache(ctx context.Context, studentID primitive.ObjectID) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(ctx, levelsCacheKey(studentID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate levels cache", zap.Error(err))
	}
}

func levelsCacheKey(studentID primitive.ObjectID) string {
	return "levels:" + studentID.Hex()
}
