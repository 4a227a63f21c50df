// Package score converts raw quiz answers into per-category and aggregate
// EQ scores using a fixed linear transform. Scoring is pure and
// deterministic; all validation failures are caller bugs.
package score

import (
	"fmt"
	"math"

	"github.com/ameara/reverie/internal/errors"
)

// Question is one assessment prompt with its category label.
type Question struct {
	Question string `json:"question"`
	Category string `json:"category"`
}

// DefaultQuestions is the built-in EQ assessment bank. One question per
// category; answer order maps positionally onto category scores.
var DefaultQuestions = []Question{
	{
		Question: "I can easily identify what emotions I'm feeling in the moment.",
		Category: "Self-Awareness",
	},
	{
		Question: "I remain calm under pressure and don't let emotions overwhelm me.",
		Category: "Self-Regulation",
	},
	{
		Question: "I can sense when others are feeling uncomfortable or upset.",
		Category: "Social Awareness",
	},
	{
		Question: "I'm skilled at resolving conflicts and managing difficult conversations.",
		Category: "Relationship Management",
	},
}

// AnswerOption is one selectable response on the 1..5 agreement scale.
type AnswerOption struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// AnswerOptions lists the agreement scale in display order.
var AnswerOptions = []AnswerOption{
	{Score: 5, Label: "Strongly Agree"},
	{Score: 4, Label: "Agree"},
	{Score: 3, Label: "Neutral"},
	{Score: 2, Label: "Disagree"},
	{Score: 1, Label: "Strongly Disagree"},
}

// MinAnswer and MaxAnswer bound the agreement scale.
const (
	MinAnswer = 1
	MaxAnswer = 5
)

// Result is a scored assessment. CategoryScores and OverallScore are
// derived from Answers and never stored independently of them.
type Result struct {
	Answers        []int          `json:"answers"`
	CategoryScores map[string]int `json:"category_scores"`
	OverallScore   int            `json:"overall_score"`
}

// Categories extracts the category labels of a question sequence.
func Categories(questions []Question) []string {
	out := make([]string, len(questions))
	for i, q := range questions {
		out[i] = q.Category
	}
	return out
}

// Score computes the assessment result for answers against positionally
// matching categories. Each category score is answer x 20; the overall
// score is round-half-up(mean(answers) x 20). Out-of-range answers are a
// caller contract violation, not silently clamped.
func Score(answers []int, categories []string) (*Result, error) {
	if len(categories) == 0 {
		return nil, errors.NewInvalidRequest("categories must not be empty")
	}
	if len(answers) != len(categories) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf(
			"answers length %d does not match categories length %d",
			len(answers), len(categories)))
	}

	sum := 0
	scores := make(map[string]int, len(categories))
	for i, a := range answers {
		if a < MinAnswer || a > MaxAnswer {
			return nil, errors.NewInvalidRequest(fmt.Sprintf(
				"answer %d out of range %d..%d: %d", i, MinAnswer, MaxAnswer, a))
		}
		sum += a
		scores[categories[i]] = a * 20
	}

	// math.Round rounds half away from zero, which is half-up for the
	// non-negative domain here.
	overall := int(math.Round(float64(sum) / float64(len(answers)) * 20))

	return &Result{
		Answers:        append([]int(nil), answers...),
		CategoryScores: scores,
		OverallScore:   overall,
	}, nil
}
