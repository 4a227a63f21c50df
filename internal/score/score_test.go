package score

import (
	"testing"

	"github.com/ameara/reverie/internal/errors"
)

func defaultCategories() []string {
	return Categories(DefaultQuestions)
}

func TestScore_PerCategoryAndOverall(t *testing.T) {
	result, err := Score([]int{5, 4, 3, 2}, defaultCategories())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	want := map[string]int{
		"Self-Awareness":          100,
		"Self-Regulation":         80,
		"Social Awareness":        60,
		"Relationship Management": 40,
	}
	for category, score := range want {
		if result.CategoryScores[category] != score {
			t.Errorf("CategoryScores[%s] = %d, want %d", category, result.CategoryScores[category], score)
		}
	}

	// mean 3.5 * 20 = 70, round-half-up
	if result.OverallScore != 70 {
		t.Errorf("OverallScore = %d, want 70", result.OverallScore)
	}
}

func TestScore_RoundHalfUp(t *testing.T) {
	// mean 2.5 * 20 = 50 exactly; mean of [1,2] is 1.5 -> 30
	result, err := Score([]int{1, 2}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if result.OverallScore != 30 {
		t.Errorf("OverallScore = %d, want 30", result.OverallScore)
	}

	// mean of [1,1,2] = 1.333 -> 26.67 -> 27
	result, err = Score([]int{1, 1, 2}, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if result.OverallScore != 27 {
		t.Errorf("OverallScore = %d, want 27", result.OverallScore)
	}
}

func TestScore_AllValidLengthFour(t *testing.T) {
	categories := defaultCategories()
	for a := MinAnswer; a <= MaxAnswer; a++ {
		answers := []int{a, a, a, a}
		result, err := Score(answers, categories)
		if err != nil {
			t.Fatalf("Score(%v) error = %v", answers, err)
		}
		if result.OverallScore != a*20 {
			t.Errorf("OverallScore(%v) = %d, want %d", answers, result.OverallScore, a*20)
		}
		for i, category := range categories {
			if result.CategoryScores[category] != answers[i]*20 {
				t.Errorf("CategoryScores[%s] = %d, want %d", category, result.CategoryScores[category], answers[i]*20)
			}
		}
	}
}

func TestScore_Validation(t *testing.T) {
	if _, err := Score([]int{3}, nil); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("empty categories: error = %v, want INVALID_REQUEST", err)
	}

	if _, err := Score([]int{3, 3}, []string{"a"}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("length mismatch: error = %v, want INVALID_REQUEST", err)
	}

	if _, err := Score([]int{0}, []string{"a"}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("answer 0: error = %v, want INVALID_REQUEST", err)
	}

	if _, err := Score([]int{6}, []string{"a"}); !errors.Is(err, errors.ErrInvalidRequest) {
		t.Errorf("answer 6: error = %v, want INVALID_REQUEST", err)
	}
}

func TestScore_Deterministic(t *testing.T) {
	first, err := Score([]int{2, 5, 3, 4}, defaultCategories())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	second, err := Score([]int{2, 5, 3, 4}, defaultCategories())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if first.OverallScore != second.OverallScore {
		t.Error("OverallScore differs between identical calls")
	}
	for category, s := range first.CategoryScores {
		if second.CategoryScores[category] != s {
			t.Errorf("CategoryScores[%s] differs between identical calls", category)
		}
	}
}

func TestScore_DoesNotAliasAnswers(t *testing.T) {
	answers := []int{1, 2, 3, 4}
	result, err := Score(answers, defaultCategories())
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	answers[0] = 5
	if result.Answers[0] != 1 {
		t.Error("Result.Answers should be a copy of the input")
	}
}
