package entry

import (
	"fmt"
	"strings"

	"github.com/ameara/reverie/internal/errors"
)

// Kind discriminates the entry variants stored in the entry store.
type Kind string

const (
	KindMood       Kind = "mood"
	KindJournal    Kind = "journal"
	KindVoice      Kind = "voice"
	KindAssessment Kind = "assessment"
)

// Kinds lists all valid entry kinds.
var Kinds = []Kind{KindMood, KindJournal, KindVoice, KindAssessment}

// ValidKind reports whether k is a known entry kind.
func ValidKind(k Kind) bool {
	switch k {
	case KindMood, KindJournal, KindVoice, KindAssessment:
		return true
	}
	return false
}

// Emotion is a mood-log emotion label.
type Emotion string

const (
	EmotionHappy     Emotion = "happy"
	EmotionSad       Emotion = "sad"
	EmotionAngry     Emotion = "angry"
	EmotionNeutral   Emotion = "neutral"
	EmotionEnergetic Emotion = "energetic"
	EmotionAnxious   Emotion = "anxious"
)

// Emotions lists the selectable mood-log emotions in display order.
var Emotions = []Emotion{
	EmotionHappy, EmotionSad, EmotionAngry,
	EmotionNeutral, EmotionEnergetic, EmotionAnxious,
}

// ValidEmotion reports whether e is a known emotion.
func ValidEmotion(e Emotion) bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

// JournalMoods lists the selectable journal mood labels.
// "Neutral" is the default when none is selected.
var JournalMoods = []string{
	"Grateful", "Anxious", "Excited", "Reflective", "Frustrated", "Peaceful",
}

// DefaultJournalMood is applied when a journal entry is committed without a
// mood selection.
const DefaultJournalMood = "Neutral"

// Entry is a reflection entry. Kind selects which field group is populated;
// the flat shape mirrors the single backing table.
type Entry struct {
	// ID is a ULID assigned at append time
	ID string

	// Kind discriminates the variant
	Kind Kind

	// CreatedAt is the Unix timestamp set at commit, immutable afterwards
	CreatedAt int64

	// Mood fields
	Emotion   Emotion
	Intensity int // 1..10
	Notes     string

	// Journal fields
	Content   string
	MoodLabel string
	Insights  []string
	WordCount int

	// Voice fields
	DurationSeconds int
	AudioRef        string // opaque blob reference from the capture adapter
	Transcript      *string
	Emotions        []string

	// Assessment fields
	Answers        []int          // 1..5 each
	CategoryScores map[string]int // category -> 0..100
	OverallScore   int            // 0..100
}

// Validate checks the per-kind required fields. A failure is a caller bug
// surfaced as INVALID_REQUEST, never silently repaired.
func (e *Entry) Validate() error {
	if !ValidKind(e.Kind) {
		return errors.NewInvalidRequest(fmt.Sprintf("unknown entry kind: %q", e.Kind))
	}

	switch e.Kind {
	case KindMood:
		if !ValidEmotion(e.Emotion) {
			return errors.NewInvalidRequest(fmt.Sprintf("unknown emotion: %q", e.Emotion))
		}
		if e.Intensity < 1 || e.Intensity > 10 {
			return errors.NewInvalidRequest(fmt.Sprintf("intensity must be 1..10, got %d", e.Intensity))
		}
	case KindJournal:
		if strings.TrimSpace(e.Content) == "" {
			return errors.NewInvalidRequest("journal content must not be empty")
		}
		if e.WordCount < 0 {
			return errors.NewInvalidRequest("word count must be non-negative")
		}
	case KindVoice:
		if e.DurationSeconds < 0 {
			return errors.NewInvalidRequest("duration must be non-negative")
		}
	case KindAssessment:
		if len(e.Answers) == 0 {
			return errors.NewInvalidRequest("assessment must carry answers")
		}
		for i, a := range e.Answers {
			if a < 1 || a > 5 {
				return errors.NewInvalidRequest(fmt.Sprintf("answer %d out of range 1..5: %d", i, a))
			}
		}
		if e.OverallScore < 0 || e.OverallScore > 100 {
			return errors.NewInvalidRequest(fmt.Sprintf("overall score out of range 0..100: %d", e.OverallScore))
		}
	}

	return nil
}

// Summary is the list-view projection of an entry.
type Summary struct {
	ID        string `json:"id"`
	Kind      Kind   `json:"kind"`
	Preview   string `json:"preview"`
	CreatedAt int64  `json:"created_at"`
}

// ToSummary builds the list-view projection.
func (e *Entry) ToSummary() Summary {
	return Summary{
		ID:        e.ID,
		Kind:      e.Kind,
		Preview:   e.preview(),
		CreatedAt: e.CreatedAt,
	}
}

const previewMaxChars = 80

func (e *Entry) preview() string {
	switch e.Kind {
	case KindMood:
		return fmt.Sprintf("%s (%d/10)", e.Emotion, e.Intensity)
	case KindJournal:
		return truncate(strings.TrimSpace(e.Content), previewMaxChars)
	case KindVoice:
		return fmt.Sprintf("voice note, %s", FormatDuration(e.DurationSeconds))
	case KindAssessment:
		return fmt.Sprintf("EQ score %d/100", e.OverallScore)
	}
	return ""
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// CountWords returns the number of whitespace-delimited tokens in the
// trimmed content. Computed once at commit, never mutated afterwards.
func CountWords(content string) int {
	return len(strings.Fields(content))
}

// FormatDuration renders seconds as m:ss for voice note displays.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
