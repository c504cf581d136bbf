package catalog

// Level 三档水平标签
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// levelThreshold 百分比到水平的映射，按声明顺序求值，首个命中生效
type levelThreshold struct {
	MaxPercentage float64
	Level         string
}

var levelThresholds = []levelThreshold{
	{MaxPercentage: 40, Level: LevelBeginner},
	{MaxPercentage: 75, Level: LevelIntermediate},
}

// LevelFor 将百分比映射到水平标签
func LevelFor(percentage float64) string {
	for _, t := range levelThresholds {
		if percentage <= t.MaxPercentage {
			return t.Level
		}
	}
	return LevelAdvanced
}

var levelMessages = map[string]string{
	LevelBeginner:     "You are at Beginner level. Focus on the basics and build strong foundations.",
	LevelIntermediate: "Nice work! You are at Intermediate level. Keep practicing and build projects.",
	LevelAdvanced:     "Great job! You are at Advanced level. Explore deeper topics and real-world applications.",
}

// MessageFor 返回水平对应的提交反馈语
func MessageFor(level string) string {
	return levelMessages[level]
}
