package domain

import (
	"strings"
	"time"
)

// QuestionKind discriminates the grading semantics of a question.
type QuestionKind string

const (
	// SingleChoice questions have exactly one correct answer and are graded
	// by ordered comparison of the submitted sequence.
	SingleChoice QuestionKind = "single"
	// MultipleChoice questions are graded by set equality of the submitted answers.
	MultipleChoice QuestionKind = "multiple"
)

// IsValid reports whether the kind is one of the supported values.
func (k QuestionKind) IsValid() bool {
	return k == SingleChoice || k == MultipleChoice
}

// DefaultQuizName is used when the author leaves the quiz name blank.
const DefaultQuizName = "Quiz"

// Question is a single quiz question with its answer key.
type Question struct {
	Text           string
	Kind           QuestionKind
	Choices        []string
	CorrectAnswers []string
}

// Validate checks the publishability invariants of a question.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewInvalidInputError("question text is required")
	}
	if !q.Kind.IsValid() {
		return NewInvalidInputError("question kind must be single or multiple")
	}
	if len(q.Choices) == 0 {
		return NewInvalidInputError("at least one choice is required")
	}
	seen := make(map[string]bool, len(q.Choices))
	for _, choice := range q.Choices {
		if choice == "" {
			return NewInvalidInputError("choices must not be empty")
		}
		if seen[choice] {
			return NewInvalidInputError("choices must be unique within a question")
		}
		seen[choice] = true
	}
	if len(q.CorrectAnswers) == 0 {
		return NewInvalidInputError("at least one correct answer is required")
	}
	if q.Kind == SingleChoice && len(q.CorrectAnswers) != 1 {
		return NewInvalidInputError("single choice questions must have exactly one correct answer")
	}
	for _, answer := range q.CorrectAnswers {
		if answer == "" || !seen[answer] {
			return NewInvalidInputError("correct answers must be among the question's choices")
		}
	}
	return nil
}

// ResultRecord is one completed attempt's outcome. Records are append-only.
type ResultRecord struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Timestamp      string `json:"timestamp"`
}

// NewResultRecord stamps a result with the current UTC instant.
func NewResultRecord(score, totalQuestions int) ResultRecord {
	return ResultRecord{
		Score:          score,
		TotalQuestions: totalQuestions,
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
	}
}

// Validate checks the result invariants.
func (r ResultRecord) Validate() error {
	if r.Score < 0 {
		return NewInvalidInputError("score must not be negative")
	}
	if r.TotalQuestions < r.Score {
		return NewInvalidInputError("total questions must be at least the score")
	}
	return nil
}

// Quiz is an authored quiz together with its recorded results.
// ID is empty until the quiz has been saved to the document store.
type Quiz struct {
	ID        string
	Name      string
	Questions []Question
	Results   []ResultRecord
}

// NewQuiz normalizes the display name and builds a quiz ready for publishing.
func NewQuiz(name string, questions []Question) *Quiz {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		trimmed = DefaultQuizName
	}
	return &Quiz{
		Name:      trimmed,
		Questions: questions,
		Results:   []ResultRecord{},
	}
}

// Validate checks that the quiz is publishable.
func (q *Quiz) Validate() error {
	if len(q.Questions) == 0 {
		return NewEmptyQuizSubmissionError()
	}
	for _, question := range q.Questions {
		if err := question.Validate(); err != nil {
			return err
		}
	}
	return nil
}
