package service

import (
	"context"
	"sync"

	"quizpages/internal/domain"
	"quizpages/internal/dto"
	"quizpages/internal/logger"
	"quizpages/internal/util"

	"go.uber.org/zap"
)

// AttemptService drives the question-by-question interaction of a taker with
// a loaded quiz.
type AttemptService interface {
	StartAttempt(ctx context.Context, req *dto.StartAttemptRequest) (*dto.StartAttemptResponse, error)
	SubmitAnswer(ctx context.Context, attemptID string, req *dto.GradeAnswerRequest) (*dto.GradeAnswerResponse, error)
}

// attemptService implements AttemptService. Attempts live in process memory
// only; partial attempts are never persisted.
type attemptService struct {
	quizzes QuizService
	newID   func() string

	mu       sync.Mutex
	attempts map[string]*domain.Attempt
}

// NewAttemptService creates a new instance of attemptService
func NewAttemptService(quizzes QuizService) AttemptService {
	return &attemptService{
		quizzes:  quizzes,
		newID:    util.NewULID,
		attempts: make(map[string]*domain.Attempt),
	}
}

// StartAttempt loads the quiz document and opens a fresh attempt on its
// question snapshot. Starting a new attempt on a quiz discards any attempt
// already open on it: there is at most one in-flight attempt per quiz.
func (s *attemptService) StartAttempt(ctx context.Context, req *dto.StartAttemptRequest) (*dto.StartAttemptResponse, error) {
	quiz, err := s.quizzes.GetQuizForAttempt(ctx, req.QuizID)
	if err != nil {
		return nil, err
	}

	attempt := domain.NewAttempt(s.newID(), quiz)

	s.mu.Lock()
	for id, existing := range s.attempts {
		if existing.QuizID == quiz.ID {
			delete(s.attempts, id)
		}
	}
	s.attempts[attempt.ID] = attempt
	s.mu.Unlock()

	logger.Get().Info("Attempt started",
		zap.String("attempt_id", attempt.ID),
		zap.String("document_id", quiz.ID),
		zap.Int("questions", len(attempt.Questions)),
	)

	questions := make([]dto.AttemptQuestion, len(attempt.Questions))
	for i, question := range attempt.Questions {
		questions[i] = dto.AttemptQuestion{
			Text:    question.Text,
			Kind:    string(question.Kind),
			Choices: question.Choices,
		}
	}
	return &dto.StartAttemptResponse{
		AttemptID: attempt.ID,
		QuizID:    quiz.ID,
		Questions: questions,
	}, nil
}

// SubmitAnswer grades one question of an open attempt. When the submission
// completes the attempt, the final score is recorded on the quiz document;
// a recording failure is logged but does not withhold the completion summary
// from the taker.
func (s *attemptService) SubmitAnswer(ctx context.Context, attemptID string, req *dto.GradeAnswerRequest) (*dto.GradeAnswerResponse, error) {
	s.mu.Lock()
	attempt, ok := s.attempts[attemptID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.NewAttemptNotFoundError(attemptID)
	}

	result, err := attempt.Submit(req.QuestionIndex, req.SelectedAnswers)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}

	completed := attempt.Completed()
	score := attempt.Score
	total := len(attempt.Questions)
	quizID := attempt.QuizID
	if completed {
		delete(s.attempts, attemptID)
	}
	s.mu.Unlock()

	response := &dto.GradeAnswerResponse{
		IsCorrect: result.IsCorrect,
		Feedback:  result.Feedback,
		Completed: completed,
	}
	if !completed {
		return response, nil
	}

	response.Score = score
	response.TotalQuestions = total
	logger.Get().Info("Attempt completed",
		zap.String("attempt_id", attemptID),
		zap.String("document_id", quizID),
		zap.Int("score", score),
		zap.Int("total_questions", total),
	)
	if err := s.quizzes.RecordResult(ctx, quizID, score, total); err != nil {
		logger.Get().Error("Failed to record attempt result",
			zap.String("attempt_id", attemptID),
			zap.String("document_id", quizID),
			zap.Error(err),
		)
	}
	return response, nil
}
