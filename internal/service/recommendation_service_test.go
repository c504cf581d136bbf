package service

import (
	"testing"

	"skill_assistant_backend/internal/catalog"
	"skill_assistant_backend/internal/model"
)

func TestFilterCourses(t *testing.T) {
	testCases := []struct {
		name     string
		track    string
		level    *model.TrackLevel
		expected string
	}{
		{"nil level defaults to beginner", catalog.TrackWebdev, nil, catalog.LevelBeginner},
		{"empty level defaults to beginner", catalog.TrackML, &model.TrackLevel{}, catalog.LevelBeginner},
		{"intermediate", catalog.TrackWebdev, &model.TrackLevel{Level: catalog.LevelIntermediate, Percentage: 60}, catalog.LevelIntermediate},
		{"advanced", catalog.TrackML, &model.TrackLevel{Level: catalog.LevelAdvanced, Percentage: 90}, catalog.LevelAdvanced},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			courses := FilterCourses(tc.track, tc.level)
			if len(courses) == 0 {
				t.Fatal("expected at least one course")
			}
			for _, course := range courses {
				if course.Track != tc.track {
					t.Errorf("course %s has track %s, expected %s", course.ID, course.Track, tc.track)
				}
				if course.Difficulty != tc.expected {
					t.Errorf("course %s has difficulty %s, expected %s", course.ID, course.Difficulty, tc.expected)
				}
			}
		})
	}
}

func TestFilterCoursesKeepsCatalogOrder(t *testing.T) {
	filtered := FilterCourses(catalog.TrackWebdev, &model.TrackLevel{Level: catalog.LevelIntermediate})

	var expected []string
	for _, course := range catalog.Courses() {
		if course.Track == catalog.TrackWebdev && course.Difficulty == catalog.LevelIntermediate {
			expected = append(expected, course.ID)
		}
	}

	if len(filtered) != len(expected) {
		t.Fatalf("got %d courses, expected %d", len(filtered), len(expected))
	}
	for i, course := range filtered {
		if course.ID != expected[i] {
			t.Errorf("position %d: got %s, expected %s (catalog order must be preserved)", i, course.ID, expected[i])
		}
	}
}
