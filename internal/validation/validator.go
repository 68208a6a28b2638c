package validation

import (
	"quizpages/internal/domain"
	"quizpages/internal/dto"
	"regexp"
	"strings"
)

const (
	maxQuizNameLength     = 255
	maxQuestionTextLength = 2000
	maxChoiceLength       = 500
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSaveQuizRequest checks the shape of an authoring request. Quiz
// semantics (answer keys, choice uniqueness, empty question lists) belong to
// the domain layer; this only rejects fields the domain cannot interpret.
func (v *Validator) ValidateSaveQuizRequest(req *dto.SaveQuizRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Name) > maxQuizNameLength {
		errors = append(errors, domain.NewOutOfRangeError("name", len(req.Name), 0, maxQuizNameLength))
	}

	for _, q := range req.Questions {
		if strings.TrimSpace(q.Text) == "" {
			errors = append(errors, domain.NewMissingFieldError("questions.text"))
		} else if len(q.Text) > maxQuestionTextLength {
			errors = append(errors, domain.NewOutOfRangeError("questions.text", len(q.Text), 1, maxQuestionTextLength))
		}

		if !isValidQuestionKind(q.Kind) {
			errors = append(errors, domain.NewInvalidFormatError("questions.kind", q.Kind))
		}

		for _, choice := range q.Choices {
			if len(choice) > maxChoiceLength {
				errors = append(errors, domain.NewOutOfRangeError("questions.choices", len(choice), 1, maxChoiceLength))
			}
		}
	}

	return errors
}

// ValidateStartAttemptRequest validates the attempt creation request
func (v *Validator) ValidateStartAttemptRequest(req *dto.StartAttemptRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.QuizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quiz_id"))
	} else if !isValidDocumentID(req.QuizID) {
		errors = append(errors, domain.NewInvalidFormatError("quiz_id", req.QuizID))
	}

	return errors
}

// ValidateGradeAnswerRequest validates a single answer submission. Whether the
// index is within the attempt's question list is the attempt's own check.
func (v *Validator) ValidateGradeAnswerRequest(attemptID string, req *dto.GradeAnswerRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(attemptID) == "" {
		errors = append(errors, domain.NewMissingFieldError("attempt_id"))
	}

	if req.QuestionIndex < 0 {
		errors = append(errors, domain.NewOutOfRangeError("question_index", req.QuestionIndex, 0, maxQuestionIndex))
	}

	if len(req.SelectedAnswers) == 0 {
		errors = append(errors, domain.NewMissingFieldError("selected_answers"))
	}

	return errors
}

// ValidateAttemptID validates an attempt identifier path parameter
func (v *Validator) ValidateAttemptID(attemptID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(attemptID) == "" {
		errors = append(errors, domain.NewMissingFieldError("attempt_id"))
	} else if !isValidULID(attemptID) {
		errors = append(errors, domain.NewInvalidFormatError("attempt_id", attemptID))
	}

	return errors
}

// ValidateDocumentID validates a document identifier path parameter
func (v *Validator) ValidateDocumentID(documentID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(documentID) == "" {
		errors = append(errors, domain.NewMissingFieldError("document_id"))
	} else if !isValidDocumentID(documentID) {
		errors = append(errors, domain.NewInvalidFormatError("document_id", documentID))
	}

	return errors
}

// ValidateRecordResultRequest validates a direct result recording request
func (v *Validator) ValidateRecordResultRequest(documentID string, req *dto.RecordResultRequest) domain.ValidationErrors {
	errors := v.ValidateDocumentID(documentID)

	if req.TotalQuestions <= 0 {
		errors = append(errors, domain.NewOutOfRangeError("total_questions", req.TotalQuestions, 1, maxQuestionIndex))
	} else if req.Score < 0 || req.Score > req.TotalQuestions {
		errors = append(errors, domain.NewOutOfRangeError("score", req.Score, 0, req.TotalQuestions))
	}

	return errors
}

// Helper functions for validation

const maxQuestionIndex = 1000

// isValidQuestionKind checks for a known question kind
func isValidQuestionKind(kind string) bool {
	return kind == string(domain.SingleChoice) || kind == string(domain.MultipleChoice)
}

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidDocumentID checks if the string looks like a store document ID
// (numeric or alphanumeric, no separators beyond hyphens)
func isValidDocumentID(s string) bool {
	if len(s) == 0 || len(s) > 64 {
		return false
	}
	validDocumentID := regexp.MustCompile(`^[a-zA-Z0-9-]+$`)
	return validDocumentID.MatchString(s)
}
