package catalog

import (
	"encoding/json"
	"testing"
)

func TestQuestionSets(t *testing.T) {
	for _, track := range Tracks() {
		t.Run(track, func(t *testing.T) {
			questions, ok := QuestionsFor(track)
			if !ok {
				t.Fatalf("QuestionsFor(%q) not found", track)
			}
			if len(questions) != 10 {
				t.Fatalf("expected 10 questions, got %d", len(questions))
			}

			seen := make(map[string]bool)
			for _, q := range questions {
				if len(q.Options) != 4 {
					t.Errorf("question %s: expected 4 options, got %d", q.ID, len(q.Options))
				}
				if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
					t.Errorf("question %s: correct index %d out of range", q.ID, q.CorrectIndex)
				}
				if seen[q.ID] {
					t.Errorf("duplicate question id %s", q.ID)
				}
				seen[q.ID] = true
			}
		})
	}

	if _, ok := QuestionsFor("devops"); ok {
		t.Error("expected unknown track to be rejected")
	}
}

func TestPublicQuestionsHideCorrectIndex(t *testing.T) {
	for _, track := range Tracks() {
		public, ok := PublicQuestionsFor(track)
		if !ok {
			t.Fatalf("PublicQuestionsFor(%q) not found", track)
		}
		if len(public) != 10 {
			t.Fatalf("expected 10 public questions, got %d", len(public))
		}

		data, err := json.Marshal(public)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}

		// 按键名断言，题干文本中出现 correct 一词不算泄露
		var decoded []map[string]any
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		for _, q := range decoded {
			for key := range q {
				switch key {
				case "id", "question", "options":
				default:
					t.Errorf("public question view exposes unexpected field %q", key)
				}
			}
		}
	}
}

func TestLevelFor(t *testing.T) {
	testCases := []struct {
		percentage float64
		expected   string
	}{
		{0, LevelBeginner},
		{40, LevelBeginner},
		{40.01, LevelIntermediate},
		{75, LevelIntermediate},
		{75.01, LevelAdvanced},
		{100, LevelAdvanced},
	}

	for _, tc := range testCases {
		if got := LevelFor(tc.percentage); got != tc.expected {
			t.Errorf("LevelFor(%v) = %q, expected %q", tc.percentage, got, tc.expected)
		}
	}
}

func TestMessageFor(t *testing.T) {
	for _, level := range []string{LevelBeginner, LevelIntermediate, LevelAdvanced} {
		if MessageFor(level) == "" {
			t.Errorf("missing message for level %s", level)
		}
	}
}

func TestCoursesCoverAllTiers(t *testing.T) {
	counts := make(map[string]int)
	for _, course := range Courses() {
		counts[course.Track+"/"+course.Difficulty]++
	}

	for _, track := range Tracks() {
		for _, level := range []string{LevelBeginner, LevelIntermediate, LevelAdvanced} {
			if counts[track+"/"+level] == 0 {
				t.Errorf("no courses for %s at %s", track, level)
			}
		}
	}
}

func TestDocCategories(t *testing.T) {
	categories := DocCategories()
	if len(categories) != 2 {
		t.Fatalf("expected 2 doc categories, got %d", len(categories))
	}
	for _, cat := range categories {
		if len(cat.Items) == 0 {
			t.Errorf("category %s has no items", cat.ID)
		}
		for _, item := range cat.Items {
			if item.Track != cat.ID {
				t.Errorf("item %s has track %s, expected %s", item.ID, item.Track, cat.ID)
			}
		}
	}
}
