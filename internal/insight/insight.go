// Package insight derives short advisory strings from free-text reflection
// content using keyword and length heuristics. The rule set is fixed and
// ordered; the same input always yields the same output sequence.
package insight

import (
	"strings"
	"unicode/utf8"
)

// Insight strings, in rule priority order.
const (
	BreathingInsight  = "Consider practicing deep breathing exercises"
	GratitudeInsight  = "Gratitude practice detected - great for mental wellbeing!"
	GoalInsight       = "Goal-oriented thinking shows strong self-direction"
	DetailInsight     = "Detailed reflection shows high self-awareness"
	FallbackInsight   = "Regular journaling supports emotional growth"
	longTextThreshold = 200 // raw character count, pre-trim
)

// rule is one independently-checked trigger contributing at most one insight.
type rule struct {
	matches func(raw, lower string) bool
	insight string
}

var rules = []rule{
	{
		matches: func(_, lower string) bool {
			return strings.Contains(lower, "stress") || strings.Contains(lower, "overwhelm")
		},
		insight: BreathingInsight,
	},
	{
		matches: func(_, lower string) bool {
			return strings.Contains(lower, "grateful") || strings.Contains(lower, "thankful")
		},
		insight: GratitudeInsight,
	},
	{
		matches: func(_, lower string) bool {
			return strings.Contains(lower, "goal") || strings.Contains(lower, "plan")
		},
		insight: GoalInsight,
	},
	{
		matches: func(raw, _ string) bool {
			return utf8.RuneCountInString(raw) > longTextThreshold
		},
		insight: DetailInsight,
	},
}

// Analyze evaluates every rule against text in priority order and returns
// the insights of the rules that fired. If none fire, the single fallback
// insight is returned; the result is never empty.
func Analyze(text string) []string {
	lower := strings.ToLower(text)

	var insights []string
	for _, r := range rules {
		if r.matches(text, lower) {
			insights = append(insights, r.insight)
		}
	}

	if len(insights) == 0 {
		return []string{FallbackInsight}
	}
	return insights
}
