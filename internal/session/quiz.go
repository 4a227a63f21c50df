package session

import (
	"fmt"

	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
	"github.com/ameara/reverie/internal/score"
	"github.com/ameara/reverie/internal/store"
)

// QuizSnapshot is the read-only view of the quiz flow returned by every
// quiz action.
type QuizSnapshot struct {
	QuestionIndex int    `json:"question_index"`
	QuestionCount int    `json:"question_count"`
	Question      string `json:"question,omitempty"`
	Category      string `json:"category,omitempty"`
	Answered      int    `json:"answered"`
	Complete      bool   `json:"complete"`

	// Populated once the flow reaches Complete
	Result  *score.Result `json:"result,omitempty"`
	EntryID string        `json:"entry_id,omitempty"`
}

// Questions returns the active question bank.
func (c *Controller) Questions() []score.Question {
	return c.questions
}

// QuizState returns the current quiz snapshot without transitioning.
func (c *Controller) QuizState() *QuizSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.quizSnapshotLocked()
}

// SubmitAnswer records one answer and advances the quiz. Submitting the
// final answer invokes the scoring engine, appends the assessment result to
// the entry store, and transitions the flow to Complete. There is no
// back-navigation. Answers on a completed quiz are a guarded no-op.
func (c *Controller) SubmitAnswer(answer int) (*QuizSnapshot, error) {
	if answer < score.MinAnswer || answer > score.MaxAnswer {
		return nil, errors.NewInvalidRequest(fmt.Sprintf(
			"answer out of range %d..%d: %d", score.MinAnswer, score.MaxAnswer, answer))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.quizComplete {
		return c.quizSnapshotLocked(), nil
	}

	c.quizAnswers = append(c.quizAnswers, answer)
	if len(c.quizAnswers) < len(c.questions) {
		return c.quizSnapshotLocked(), nil
	}

	result, err := score.Score(c.quizAnswers, score.Categories(c.questions))
	if err != nil {
		// Roll the answer back so the flow is not wedged by a scoring bug.
		c.quizAnswers = c.quizAnswers[:len(c.quizAnswers)-1]
		return nil, err
	}

	out, err := store.Append(c.db, store.AppendInput{Entry: entry.Entry{
		Kind:           entry.KindAssessment,
		CreatedAt:      c.now().Unix(),
		Answers:        result.Answers,
		CategoryScores: result.CategoryScores,
		OverallScore:   result.OverallScore,
	}})
	if err != nil {
		c.quizAnswers = c.quizAnswers[:len(c.quizAnswers)-1]
		return nil, err
	}

	c.quizResult = result
	c.quizEntryID = out.ID
	c.quizComplete = true

	return c.quizSnapshotLocked(), nil
}

// ResetQuiz discards quiz progress and returns the flow to its initial
// state (index 0, no answers). Committed assessment entries are untouched.
func (c *Controller) ResetQuiz() *QuizSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.quizAnswers = nil
	c.quizResult = nil
	c.quizEntryID = ""
	c.quizComplete = false

	return c.quizSnapshotLocked()
}

func (c *Controller) quizSnapshotLocked() *QuizSnapshot {
	snap := &QuizSnapshot{
		QuestionIndex: len(c.quizAnswers),
		QuestionCount: len(c.questions),
		Answered:      len(c.quizAnswers),
		Complete:      c.quizComplete,
		Result:        c.quizResult,
		EntryID:       c.quizEntryID,
	}
	if !c.quizComplete && snap.QuestionIndex < len(c.questions) {
		q := c.questions[snap.QuestionIndex]
		snap.Question = q.Question
		snap.Category = q.Category
	}
	return snap
}
