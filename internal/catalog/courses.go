package catalog

// Course 静态课程目录条目
type Course struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	Track      string `json:"track"`
	Difficulty string `json:"difficulty"`
}

var courses = []Course{
	// Web Dev - Beginner
	{
		ID:         "c-w-b-1",
		Title:      "HTML & CSS Crash Course",
		Platform:   "YouTube",
		URL:        "https://www.youtube.com/results?search_query=html+css+crash+course",
		Track:      TrackWebdev,
		Difficulty: LevelBeginner,
	},
	{
		ID:         "c-w-b-2",
		Title:      "Web Development for Beginners",
		Platform:   "freeCodeCamp",
		URL:        "https://www.freecodecamp.org/learn/",
		Track:      TrackWebdev,
		Difficulty: LevelBeginner,
	},
	// Web Dev - Intermediate
	{
		ID:         "c-w-i-1",
		Title:      "Modern JavaScript Tutorial",
		Platform:   "MDN / Docs",
		URL:        "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide",
		Track:      TrackWebdev,
		Difficulty: LevelIntermediate,
	},
	{
		ID:         "c-w-i-2",
		Title:      "React for Beginners",
		Platform:   "Scrimba / YouTube",
		URL:        "https://www.youtube.com/results?search_query=react+js+for+beginners",
		Track:      TrackWebdev,
		Difficulty: LevelIntermediate,
	},
	// Web Dev - Advanced
	{
		ID:         "c-w-a-1",
		Title:      "Full-Stack Web Development Projects",
		Platform:   "Udemy / Other",
		URL:        "https://www.udemy.com/topic/web-development/",
		Track:      TrackWebdev,
		Difficulty: LevelAdvanced,
	},
	{
		ID:         "c-w-a-2",
		Title:      "Web Performance Optimization",
		Platform:   "Web.dev",
		URL:        "https://web.dev/fast/",
		Track:      TrackWebdev,
		Difficulty: LevelAdvanced,
	},
	// ML - Beginner
	{
		ID:         "c-m-b-1",
		Title:      "Machine Learning for Beginners",
		Platform:   "YouTube",
		URL:        "https://www.youtube.com/results?search_query=machine+learning+for+beginners",
		Track:      TrackML,
		Difficulty: LevelBeginner,
	},
	{
		ID:         "c-m-b-2",
		Title:      "Intro to ML with Python",
		Platform:   "Kaggle / Courses",
		URL:        "https://www.kaggle.com/learn/intro-to-machine-learning",
		Track:      TrackML,
		Difficulty: LevelBeginner,
	},
	// ML - Intermediate
	{
		ID:         "c-m-i-1",
		Title:      "Supervised Machine Learning",
		Platform:   "Coursera",
		URL:        "https://www.coursera.org/specializations/machine-learning-introduction",
		Track:      TrackML,
		Difficulty: LevelIntermediate,
	},
	{
		ID:         "c-m-i-2",
		Title:      "Hands-On ML with Scikit-Learn",
		Platform:   "Book / Online",
		URL:        "https://www.oreilly.com/library/view/hands-on-machine-learning/9781492032632/",
		Track:      TrackML,
		Difficulty: LevelIntermediate,
	},
	// ML - Advanced
	{
		ID:         "c-m-a-1",
		Title:      "Deep Learning Specialization",
		Platform:   "Coursera",
		URL:        "https://www.coursera.org/specializations/deep-learning",
		Track:      TrackML,
		Difficulty: LevelAdvanced,
	},
	{
		ID:         "c-m-a-2",
		Title:      "Advanced ML on Google Cloud",
		Platform:   "Coursera",
		URL:        "https://www.coursera.org/specializations/advanced-machine-learning-tensorflow-gcp",
		Track:      TrackML,
		Difficulty: LevelAdvanced,
	},
}

// Courses 按声明顺序返回完整课程目录
func Courses() []Course {
	return courses
}
