package service

import (
	"strings"
	"testing"
)

func TestChatReply(t *testing.T) {
	svc := NewChatService()

	testCases := []struct {
		name     string
		message  string
		expected string // 回复中应出现的片段
	}{
		{"html", "How do I start with HTML?", "HTML (HyperText Markup Language)"},
		{"css", "teach me CSS please", "CSS (Cascading Style Sheets)"},
		{"javascript", "what about JavaScript", "JavaScript makes your web pages interactive"},
		{"js shorthand", "any tips for js?", "JavaScript makes your web pages interactive"},
		{"machine learning", "explain machine learning", "Machine Learning is about learning patterns"},
		{"ml shorthand", "what is ml", "Machine Learning is about learning patterns"},
		{"web development", "how to learn web development", "master HTML, CSS, and JavaScript first"},
		{"fallback", "tell me a joke", "I am a simple assistant"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reply := svc.Reply(tc.message)
			if !strings.Contains(reply, tc.expected) {
				t.Errorf("Reply(%q) = %q, expected it to contain %q", tc.message, reply, tc.expected)
			}
		})
	}
}

func TestChatReplyFirstMatchWins(t *testing.T) {
	svc := NewChatService()

	// html 规则先于 css 与 web development 规则
	reply := svc.Reply("html css web development")
	if !strings.Contains(reply, "HTML (HyperText Markup Language)") {
		t.Errorf("expected the html rule to win, got %q", reply)
	}
}

func TestChatReplyCaseInsensitive(t *testing.T) {
	svc := NewChatService()

	if svc.Reply("HTML") != svc.Reply("html") {
		t.Error("reply should not depend on letter case")
	}
}
