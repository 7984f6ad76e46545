package quiz

import "math"

// Tier buckets a score percentage.
type Tier string

const (
	TierExcellent    Tier = "excellent"
	TierGood         Tier = "good"
	TierKeepStudying Tier = "keep-studying"
)

var tierMessages = map[Tier]string{
	TierExcellent:    "Excellent work! You've mastered this module!",
	TierGood:         "Good job! You might want to review a few concepts.",
	TierKeepStudying: "Keep studying! Review the module and try again.",
}

// Review explains the outcome of one question.
type Review struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"yourAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	Correct       bool   `json:"correct"`
	Explanation   string `json:"explanation"`
}

// Result is a scored quiz.
type Result struct {
	Module     int      `json:"module"`
	Title      string   `json:"title"`
	Score      int      `json:"score"`
	Total      int      `json:"total"`
	Percentage int      `json:"percentage"`
	Tier       Tier     `json:"tier"`
	Message    string   `json:"message"`
	Review     []Review `json:"review"`
}

// Score grades answers (question index to option index) against q.
// Unanswered and out-of-range answers count as wrong.
func Score(q Quiz, answers map[int]int) Result {
	res := Result{
		Module: q.Module,
		Title:  q.Title,
		Total:  len(q.Questions),
		Review: make([]Review, 0, len(q.Questions)),
	}
	for i, item := range q.Questions {
		chosen, answered := answers[i]
		correct := answered && chosen == item.Correct
		if correct {
			res.Score++
		}
		r := Review{
			Question:      item.Question,
			CorrectAnswer: optionText(item, item.Correct),
			Correct:       correct,
			Explanation:   item.Explanation,
		}
		if answered {
			r.YourAnswer = optionText(item, chosen)
		}
		res.Review = append(res.Review, r)
	}

	var pct float64
	if res.Total > 0 {
		pct = float64(res.Score) / float64(res.Total) * 100
	}
	res.Percentage = int(math.Round(pct))
	res.Tier = TierFor(pct)
	res.Message = tierMessages[res.Tier]
	return res
}

// TierFor maps a percentage to its tier.
func TierFor(pct float64) Tier {
	switch {
	case pct >= 80:
		return TierExcellent
	case pct >= 60:
		return TierGood
	default:
		return TierKeepStudying
	}
}

// Progress is the percentage shown while answering question current (zero based).
func Progress(current, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(current+1) / float64(total) * 100))
}

func optionText(q Question, idx int) string {
	if idx < 0 || idx >= len(q.Options) {
		return ""
	}
	return q.Options[idx]
}
