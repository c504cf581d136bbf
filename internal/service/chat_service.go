package service

import "strings"

type ChatService struct{}

func NewChatService() *ChatService {
	return &ChatService{}
}

// chatRule 关键词规则，按声明顺序求值，首个命中生效
type chatRule struct {
	match func(text string) bool
	reply string
}

var chatRules = []chatRule{
	{
		match: func(text string) bool { return strings.Contains(text, "html") },
		reply: "HTML (HyperText Markup Language) defines the structure of web pages using elements like headings, paragraphs, links, and more. Start by learning the basic tags such as <h1>, <p>, <a>, and <div>.",
	},
	{
		match: func(text string) bool { return strings.Contains(text, "css") },
		reply: "CSS (Cascading Style Sheets) is used to style HTML. Focus on selectors, the box model, flexbox, and grid to build responsive layouts.",
	},
	{
		match: func(text string) bool {
			return strings.Contains(text, "javascript") || strings.Contains(text, "js")
		},
		reply: "JavaScript makes your web pages interactive. Begin with variables, functions, arrays, objects, and DOM manipulation.",
	},
	{
		match: func(text string) bool {
			return strings.Contains(text, "machine learning") || strings.Contains(text, "ml")
		},
		reply: "Machine Learning is about learning patterns from data. Start with supervised learning (like regression and classification) before moving to deep learning.",
	},
	{
		match: func(text string) bool {
			return strings.Contains(text, "web") && strings.Contains(text, "development")
		},
		reply: "For web development, master HTML, CSS, and JavaScript first, then explore a framework like React. Build small projects like a todo app or portfolio site.",
	},
}

const chatFallback = "I am a simple assistant. In the future, I will be powered by a real ML model, but for now I can give short tips about HTML, CSS, JavaScript, and Machine Learning."

// Reply 无状态的固定回复：小写后按规则表匹配
func (s *ChatService) Reply(message string) string {
	text := strings.ToLower(message)
	for _, rule := range chatRules {
		if rule.match(text) {
			return rule.reply
		}
	}
	return chatFallback
}
