package domain

// AttemptState models the lifecycle of a taker's pass through a quiz.
type AttemptState string

const (
	AttemptLoaded     AttemptState = "loaded"
	AttemptInProgress AttemptState = "in_progress"
	AttemptCompleted  AttemptState = "completed"
)

// Attempt is one taker's in-flight pass through a quiz. It holds a read-only
// snapshot of the quiz's questions taken at load time; edits to the source quiz
// after load do not affect it. Attempts are never persisted.
type Attempt struct {
	ID           string
	QuizID       string
	Questions    []Question
	CurrentIndex int
	Score        int
	State        AttemptState
}

// NewAttempt snapshots the quiz's questions and starts at the first one.
func NewAttempt(id string, quiz *Quiz) *Attempt {
	questions := make([]Question, len(quiz.Questions))
	copy(questions, quiz.Questions)
	return &Attempt{
		ID:        id,
		QuizID:    quiz.ID,
		Questions: questions,
		State:     AttemptLoaded,
	}
}

// Completed reports whether the cursor has passed the last question.
func (a *Attempt) Completed() bool {
	return a.State == AttemptCompleted
}

// Submit grades the question at the given index and advances the cursor.
// Grading must be issued strictly in cursor order: an index behind the cursor
// has already consumed its single graded submission, and an index ahead of it
// is not yet reachable.
func (a *Attempt) Submit(questionIndex int, selectedAnswers []string) (GradeResult, error) {
	if a.State == AttemptCompleted {
		return GradeResult{}, NewAlreadyAnsweredError(questionIndex)
	}
	if questionIndex < 0 || questionIndex >= len(a.Questions) {
		return GradeResult{}, NewInvalidQuestionIndexError(questionIndex)
	}
	if questionIndex < a.CurrentIndex {
		return GradeResult{}, NewAlreadyAnsweredError(questionIndex)
	}
	if questionIndex > a.CurrentIndex {
		return GradeResult{}, NewInvalidQuestionIndexError(questionIndex)
	}

	question := a.Questions[questionIndex]
	result := Grade(question.Kind, question.CorrectAnswers, selectedAnswers)
	if result.IsCorrect {
		a.Score++
	}

	a.CurrentIndex++
	if a.CurrentIndex >= len(a.Questions) {
		a.State = AttemptCompleted
	} else {
		a.State = AttemptInProgress
	}
	return result, nil
}
