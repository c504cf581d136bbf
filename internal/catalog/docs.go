package catalog

// DocItem 文档片段，code 可为空
type DocItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Track   string `json:"track"`
	Content string `json:"content"`
	Code    string `json:"code,omitempty"`
}

// DocCategory 文档分类
type DocCategory struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Items []DocItem `json:"items"`
}

var docCategories = []DocCategory{
	{
		ID:    TrackWebdev,
		Title: "Web Development",
		Items: []DocItem{
			{
				ID:      "html-basics",
				Title:   "HTML Basics",
				Track:   TrackWebdev,
				Content: "HTML (HyperText Markup Language) is the standard language for creating web pages. It uses elements represented by tags like <h1>, <p>, and <a> to describe the structure of a document.",
				Code:    "<!DOCTYPE html>\n<html>\n  <head>\n    <title>My First Page</title>\n  </head>\n  <body>\n    <h1>Hello, world!</h1>\n    <p>This is my first web page.</p>\n  </body>\n</html>",
			},
			{
				ID:      "css-basics",
				Title:   "CSS Basics",
				Track:   TrackWebdev,
				Content: "CSS (Cascading Style Sheets) is used to style HTML. You can change colors, layout, fonts, spacing, and more.",
				Code:    "h1 {\n  color: #1f2937;\n  font-size: 2rem;\n}\n\np {\n  line-height: 1.6;\n}",
			},
			{
				ID:      "js-basics",
				Title:   "JavaScript Basics",
				Track:   TrackWebdev,
				Content: "JavaScript adds interactivity to web pages. You can respond to user actions, modify the DOM, and call backend APIs.",
				Code:    "const button = document.querySelector('button');\nbutton.addEventListener('click', () => {\n  alert('Button clicked!');\n});",
			},
		},
	},
	{
		ID:    TrackML,
		Title: "Machine Learning",
		Items: []DocItem{
			{
				ID:      "what-is-ml",
				Title:   "What is Machine Learning?",
				Track:   TrackML,
				Content: "Machine Learning is a field of AI where algorithms learn patterns from data instead of being explicitly programmed with rules.",
			},
			{
				ID:      "types-of-ml",
				Title:   "Types of Machine Learning",
				Track:   TrackML,
				Content: "Common types of ML include supervised learning, unsupervised learning, and reinforcement learning.",
			},
			{
				ID:      "ml-workflow",
				Title:   "Basic ML Workflow",
				Track:   TrackML,
				Content: "A typical ML workflow: define the problem, collect data, preprocess data, choose a model, train, evaluate, and deploy.",
			},
		},
	},
}

// DocCategories 按声明顺序返回全部文档分类
func DocCategories() []DocCategory {
	return docCategories
}
