package dto

// QuestionPayload carries an authored question in the save request.
// @Description A single quiz question with its answer key
type QuestionPayload struct {
	Text           string   `json:"text"`
	Kind           string   `json:"kind"`
	Choices        []string `json:"choices"`
	CorrectAnswers []string `json:"correct_answers"`
}

// SaveQuizRequest is the request body for creating a quiz document.
// @Description Request body for saving a quiz
type SaveQuizRequest struct {
	Name      string            `json:"name"`
	Questions []QuestionPayload `json:"questions"`
}

// SaveQuizResponse returns the document id assigned by the store.
type SaveQuizResponse struct {
	ID string `json:"id"`
}

// ResultRecordPayload is one recorded completion of a quiz.
type ResultRecordPayload struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Timestamp      string `json:"timestamp"`
}

// QuizListItem is one catalog row. QuestionSummaries is a flattened
// human-readable projection of the questions; ResultsNote is set instead of
// Results when no attempt has been recorded yet.
type QuizListItem struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	QuestionSummaries []string              `json:"question_summaries"`
	Results           []ResultRecordPayload `json:"results,omitempty"`
	ResultsNote       string                `json:"results_note,omitempty"`
}

// QuizListResponse is the catalog listing.
type QuizListResponse struct {
	Quizzes []QuizListItem `json:"quizzes"`
}

// StartAttemptRequest opens a new attempt on a quiz document.
type StartAttemptRequest struct {
	QuizID string `json:"quiz_id"`
}

// AttemptQuestion is a question as shown to the taker. The answer key is
// deliberately absent: only the grading verdict ever crosses this boundary.
type AttemptQuestion struct {
	Text    string   `json:"text"`
	Kind    string   `json:"kind"`
	Choices []string `json:"choices"`
}

// StartAttemptResponse returns the attempt handle and the question snapshot.
type StartAttemptResponse struct {
	AttemptID string            `json:"attempt_id"`
	QuizID    string            `json:"quiz_id"`
	Questions []AttemptQuestion `json:"questions"`
}

// GradeAnswerRequest submits the taker's selected answers for one question.
type GradeAnswerRequest struct {
	QuestionIndex   int      `json:"question_index"`
	SelectedAnswers []string `json:"selected_answers"`
}

// GradeAnswerResponse is the grading verdict. Score and TotalQuestions are
// only present once the attempt has completed.
type GradeAnswerResponse struct {
	IsCorrect      bool   `json:"is_correct"`
	Feedback       string `json:"feedback"`
	Completed      bool   `json:"completed"`
	Score          int    `json:"score,omitempty"`
	TotalQuestions int    `json:"total_questions,omitempty"`
}

// RecordResultRequest appends a result record to a quiz document.
type RecordResultRequest struct {
	Score          int `json:"score"`
	TotalQuestions int `json:"total_questions"`
}

// RecordResultResponse acknowledges a recorded result.
type RecordResultResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
