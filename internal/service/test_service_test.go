package service

import (
	"errors"
	"testing"
	"time"

	"skill_assistant_backend/internal/catalog"
	"skill_assistant_backend/internal/model"
	"skill_assistant_backend/internal/util"
)

func correctAnswers(t *testing.T, track string, n int) []Answer {
	t.Helper()
	questions, ok := catalog.QuestionsFor(track)
	if !ok {
		t.Fatalf("unknown track %q", track)
	}
	if n > len(questions) {
		t.Fatalf("track %q only has %d questions", track, len(questions))
	}
	answers := make([]Answer, 0, n)
	for _, q := range questions[:n] {
		answers = append(answers, Answer{QuestionID: q.ID, OptionIndex: q.CorrectIndex})
	}
	return answers
}

func TestScoreAnswers(t *testing.T) {
	testCases := []struct {
		name          string
		correct       int
		expectedScore int
		expectedPct   float64
		expectedLevel string
	}{
		{"no answers", 0, 0, 0, catalog.LevelBeginner},
		{"four correct", 4, 4, 40, catalog.LevelBeginner},
		{"five correct", 5, 5, 50, catalog.LevelIntermediate},
		{"seven correct", 7, 7, 70, catalog.LevelIntermediate},
		{"eight correct", 8, 8, 80, catalog.LevelAdvanced},
		{"all correct", 10, 10, 100, catalog.LevelAdvanced},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ScoreAnswers(catalog.TrackWebdev, correctAnswers(t, catalog.TrackWebdev, tc.correct))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Score != tc.expectedScore {
				t.Errorf("score = %d, expected %d", result.Score, tc.expectedScore)
			}
			if result.Total != 10 {
				t.Errorf("total = %d, expected 10", result.Total)
			}
			if result.Percentage != tc.expectedPct {
				t.Errorf("percentage = %v, expected %v", result.Percentage, tc.expectedPct)
			}
			if result.Level != tc.expectedLevel {
				t.Errorf("level = %q, expected %q", result.Level, tc.expectedLevel)
			}
		})
	}
}

func TestScoreAnswersOrderIndependent(t *testing.T) {
	answers := correctAnswers(t, catalog.TrackML, 6)
	reversed := make([]Answer, len(answers))
	for i, a := range answers {
		reversed[len(answers)-1-i] = a
	}

	forward, err := ScoreAnswers(catalog.TrackML, answers)
	if err != nil {
		t.Fatal(err)
	}
	backward, err := ScoreAnswers(catalog.TrackML, reversed)
	if err != nil {
		t.Fatal(err)
	}

	if forward != backward {
		t.Errorf("order changed the result: %+v vs %+v", forward, backward)
	}
}

func TestScoreAnswersSkipsUnknownQuestions(t *testing.T) {
	answers := append(correctAnswers(t, catalog.TrackWebdev, 3),
		Answer{QuestionID: "no-such-question", OptionIndex: 1},
		Answer{QuestionID: "m1", OptionIndex: 1}, // ml 的题目在 webdev 赛道同样不计分
	)

	result, err := ScoreAnswers(catalog.TrackWebdev, answers)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 3 {
		t.Errorf("score = %d, expected 3 (unknown ids must be skipped)", result.Score)
	}
}

func TestScoreAnswersWrongOption(t *testing.T) {
	questions, _ := catalog.QuestionsFor(catalog.TrackWebdev)
	q := questions[0]
	wrong := (q.CorrectIndex + 1) % len(q.Options)

	result, err := ScoreAnswers(catalog.TrackWebdev, []Answer{{QuestionID: q.ID, OptionIndex: wrong}})
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 0 {
		t.Errorf("score = %d, expected 0", result.Score)
	}
}

func TestScoreAnswersUnknownTrack(t *testing.T) {
	_, err := ScoreAnswers("devops", nil)
	if !errors.Is(err, util.ErrUnknownTrack) {
		t.Errorf("expected ErrUnknownTrack, got %v", err)
	}
}

func TestLatestLevels(t *testing.T) {
	now := time.Now()
	// 按提交时间倒序排列，最新在前
	resultsDesc := []model.TestResult{
		{Track: catalog.TrackWebdev, Level: catalog.LevelAdvanced, Percentage: 90, SubmittedAt: now},
		{Track: catalog.TrackWebdev, Level: catalog.LevelBeginner, Percentage: 30, SubmittedAt: now.Add(-time.Hour)},
		{Track: catalog.TrackML, Level: catalog.LevelIntermediate, Percentage: 60, SubmittedAt: now.Add(-2 * time.Hour)},
		{Track: catalog.TrackML, Level: catalog.LevelAdvanced, Percentage: 80, SubmittedAt: now.Add(-3 * time.Hour)},
	}

	levels := LatestLevels(resultsDesc)

	if levels.Webdev == nil || levels.Webdev.Level != catalog.LevelAdvanced || levels.Webdev.Percentage != 90 {
		t.Errorf("webdev level = %+v, expected latest (Advanced, 90)", levels.Webdev)
	}
	if levels.ML == nil || levels.ML.Level != catalog.LevelIntermediate || levels.ML.Percentage != 60 {
		t.Errorf("ml level = %+v, expected latest (Intermediate, 60)", levels.ML)
	}
}

func TestLatestLevelsOmitsUntestedTracks(t *testing.T) {
	levels := LatestLevels([]model.TestResult{
		{Track: catalog.TrackWebdev, Level: catalog.LevelBeginner, Percentage: 20},
	})

	if levels.Webdev == nil {
		t.Error("webdev level missing")
	}
	if levels.ML != nil {
		t.Errorf("ml level = %+v, expected nil for untested track", levels.ML)
	}
}

func TestLatestLevelsEmpty(t *testing.T) {
	levels := LatestLevels(nil)
	if levels.Webdev != nil || levels.ML != nil {
		t.Errorf("expected both tracks absent, got %+v", levels)
	}
}
