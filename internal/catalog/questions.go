package catalog

// Track 固定的两个技能赛道
const (
	TrackWebdev = "webdev"
	TrackML     = "ml"
)

// Tracks 按声明顺序返回所有赛道
func Tracks() []string {
	return []string{TrackWebdev, TrackML}
}

// Question 题目全量数据，含正确答案下标，仅在进程内使用
type Question struct {
	ID           string
	Question     string
	Options      []string
	CorrectIndex int
}

// QuestionPublic 对外暴露的题目视图，绝不携带正确答案
type QuestionPublic struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

var webdevQuestions = []Question{
	{
		ID:       "w1",
		Question: "What does HTML stand for?",
		Options: []string{
			"Hyper Trainer Marking Language",
			"Hyper Text Markup Language",
			"Hyper Text Marketing Language",
			"Hyperlinks Text Marking Language",
		},
		CorrectIndex: 1,
	},
	{
		ID:           "w2",
		Question:     "Which HTML tag is used to include JavaScript code?",
		Options:      []string{"<javascript>", "<script>", "<js>", "<code>"},
		CorrectIndex: 1,
	},
	{
		ID:           "w3",
		Question:     "Which CSS property controls text size?",
		Options:      []string{"font-style", "text-size", "font-size", "text-style"},
		CorrectIndex: 2,
	},
	{
		ID:           "w4",
		Question:     "Which HTTP method is typically used to submit form data?",
		Options:      []string{"GET", "POST", "PUT", "DELETE"},
		CorrectIndex: 1,
	},
	{
		ID:           "w5",
		Question:     "Which HTML element is used for the largest heading?",
		Options:      []string{"<head>", "<h6>", "<h1>", "<title>"},
		CorrectIndex: 2,
	},
	{
		ID:           "w6",
		Question:     "Which CSS layout module is best for creating one-dimensional layouts (rows or columns)?",
		Options:      []string{"Grid", "Flexbox", "Float", "Positioning"},
		CorrectIndex: 1,
	},
	{
		ID:           "w7",
		Question:     "In JavaScript, which keyword declares a block-scoped variable that can change?",
		Options:      []string{"var", "let", "const", "static"},
		CorrectIndex: 1,
	},
	{
		ID:       "w8",
		Question: "What does CSS stand for?",
		Options: []string{
			"Computer Style Sheets",
			"Cascading Style Sheets",
			"Creative Style System",
			"Colorful Style Syntax",
		},
		CorrectIndex: 1,
	},
	{
		ID:           "w9",
		Question:     "Which of these is a valid HTTP status code for 'Not Found'?",
		Options:      []string{"200", "301", "404", "500"},
		CorrectIndex: 2,
	},
	{
		ID:           "w10",
		Question:     "Which tag creates a hyperlink in HTML?",
		Options:      []string{"<a>", "<link>", "<href>", "<url>"},
		CorrectIndex: 0,
	},
}

var mlQuestions = []Question{
	{
		ID:       "m1",
		Question: "What is Machine Learning?",
		Options: []string{
			"Programming computers with explicit rules only",
			"A field where computers learn patterns from data",
			"Designing computer hardware",
			"Building websites with HTML and CSS",
		},
		CorrectIndex: 1,
	},
	{
		ID:       "m2",
		Question: "Which of the following is a supervised learning task?",
		Options: []string{
			"Clustering customers by behavior",
			"Classifying emails as spam or not spam",
			"Finding topics in documents without labels",
			"Dimensionality reduction",
		},
		CorrectIndex: 1,
	},
	{
		ID:       "m3",
		Question: "In linear regression, what do we typically minimize during training?",
		Options: []string{
			"Number of parameters",
			"Sum of squared errors between predictions and targets",
			"Number of data points",
			"Model accuracy",
		},
		CorrectIndex: 1,
	},
	{
		ID:       "m4",
		Question: "Which of these is an example of a classification algorithm?",
		Options: []string{
			"K-Means",
			"Principal Component Analysis",
			"Logistic Regression",
			"K-Nearest Neighbors Regressor",
		},
		CorrectIndex: 2,
	},
	{
		ID:       "m5",
		Question: "What does 'overfitting' mean in ML?",
		Options: []string{
			"Model is too simple and underperforms on both train and test",
			"Model performs well on train data but poorly on unseen test data",
			"Model has too few parameters",
			"Model cannot be trained at all",
		},
		CorrectIndex: 1,
	},
	{
		ID:           "m6",
		Question:     "Which of these is commonly used for dimensionality reduction?",
		Options:      []string{"PCA", "SVM", "Random Forest", "Naive Bayes"},
		CorrectIndex: 0,
	},
	{
		ID:       "m7",
		Question: "What is a 'feature' in a dataset?",
		Options: []string{
			"A row in the dataset",
			"A column representing an input variable",
			"The final prediction",
			"The loss function",
		},
		CorrectIndex: 1,
	},
	{
		ID:           "m8",
		Question:     "Which library is widely used for building neural networks in Python?",
		Options:      []string{"NumPy", "Pandas", "Matplotlib", "PyTorch"},
		CorrectIndex: 3,
	},
	{
		ID:       "m9",
		Question: "What is 'training data'?",
		Options: []string{
			"Data used to evaluate model performance",
			"Data used to tune hyperparameters",
			"Data used to learn model parameters",
			"Random noise added to inputs",
		},
		CorrectIndex: 2,
	},
	{
		ID:           "m10",
		Question:     "In classification, which metric measures the proportion of correct predictions?",
		Options:      []string{"Loss", "Accuracy", "Learning rate", "Epoch"},
		CorrectIndex: 1,
	},
}

// QuestionsFor 返回赛道的全量题目，未知赛道返回 ok=false
func QuestionsFor(track string) ([]Question, bool) {
	switch track {
	case TrackWebdev:
		return webdevQuestions, true
	case TrackML:
		return mlQuestions, true
	default:
		return nil, false
	}
}

// PublicQuestionsFor 返回对外视图，保持声明顺序
func PublicQuestionsFor(track string) ([]QuestionPublic, bool) {
	questions, ok := QuestionsFor(track)
	if !ok {
		return nil, false
	}
	public := make([]QuestionPublic, 0, len(questions))
	for _, q := range questions {
		public = append(public, QuestionPublic{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return public, true
}
