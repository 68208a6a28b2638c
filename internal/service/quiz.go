package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quizpages/internal/cache"
	"quizpages/internal/config"
	"quizpages/internal/domain"
	"quizpages/internal/dto"
	"quizpages/internal/logger"

	"go.uber.org/zap"
)

// ResultsEmptyNote marks a catalog row whose quiz has no recorded attempts.
const ResultsEmptyNote = "no results yet"

// QuizService defines the interface for quiz authoring and catalog operations
type QuizService interface {
	SaveQuiz(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error)
	ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
	GetQuizForAttempt(ctx context.Context, quizID string) (*domain.Quiz, error)
	RecordResult(ctx context.Context, quizID string, score, totalQuestions int) error
}

// quizService implements QuizService
type quizService struct {
	store domain.DocumentStore
	cache domain.Cache
	cfg   *config.Config
}

// NewQuizService creates a new instance of quizService
func NewQuizService(store domain.DocumentStore, cacheAdapter domain.Cache, cfg *config.Config) QuizService {
	return &quizService{
		store: store,
		cache: cacheAdapter,
		cfg:   cfg,
	}
}

// SaveQuiz validates and persists a new quiz document. Validation runs before
// any store call: an empty question list never reaches the wire.
func (s *quizService) SaveQuiz(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error) {
	questions := make([]domain.Question, len(req.Questions))
	for i, q := range req.Questions {
		questions[i] = domain.Question{
			Text:           q.Text,
			Kind:           domain.QuestionKind(q.Kind),
			Choices:        q.Choices,
			CorrectAnswers: q.CorrectAnswers,
		}
	}

	quiz := domain.NewQuiz(req.Name, questions)
	if err := quiz.Validate(); err != nil {
		return nil, err
	}

	id, err := s.store.CreateQuiz(ctx, quiz)
	if err != nil {
		return nil, err
	}
	logger.Get().Info("Quiz saved",
		zap.String("document_id", id),
		zap.String("name", quiz.Name),
		zap.Int("questions", len(quiz.Questions)),
	)
	return &dto.SaveQuizResponse{ID: id}, nil
}

// ListQuizzes projects the store's document collection into catalog rows.
// Documents that did not decode as quizzes are discarded here, explicitly:
// the store is shared with unrelated pages and their presence is expected.
func (s *quizService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	listings, err := s.store.ListQuizDocuments(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.QuizListItem, 0, len(listings))
	for _, listing := range listings {
		if !listing.IsQuiz() {
			logger.Get().Debug("Skipping non-quiz document",
				zap.String("document_id", listing.ID),
				zap.String("name", listing.Name),
			)
			continue
		}
		rows = append(rows, projectQuiz(listing.Quiz))
	}
	return &dto.QuizListResponse{Quizzes: rows}, nil
}

func projectQuiz(quiz *domain.Quiz) dto.QuizListItem {
	summaries := make([]string, len(quiz.Questions))
	for i, question := range quiz.Questions {
		summaries[i] = summarizeQuestion(i, question)
	}

	row := dto.QuizListItem{
		ID:                quiz.ID,
		Name:              quiz.Name,
		QuestionSummaries: summaries,
	}
	if len(quiz.Results) == 0 {
		row.ResultsNote = ResultsEmptyNote
		return row
	}
	results := make([]dto.ResultRecordPayload, len(quiz.Results))
	for i, record := range quiz.Results {
		results[i] = dto.ResultRecordPayload{
			Score:          record.Score,
			TotalQuestions: record.TotalQuestions,
			Timestamp:      record.Timestamp,
		}
	}
	row.Results = results
	return row
}

func summarizeQuestion(index int, question domain.Question) string {
	return fmt.Sprintf("%d. %s [%s]", index+1, question.Text, strings.Join(question.Choices, ", "))
}

// GetQuizForAttempt loads a quiz document for a new attempt, reading through
// the cache. Cache failures degrade to a store fetch; they never fail the load.
func (s *quizService) GetQuizForAttempt(ctx context.Context, quizID string) (*domain.Quiz, error) {
	key := cache.QuizDocumentKey(quizID)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			var quiz domain.Quiz
			if err := json.Unmarshal([]byte(cached), &quiz); err == nil {
				return &quiz, nil
			}
			logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key))
		} else if err != domain.ErrCacheMiss {
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	quiz, err := s.store.FetchQuizDocument(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(quiz); err == nil {
			if err := s.cache.Set(ctx, key, string(payload), s.cfg.Cache.QuizTTL); err != nil {
				logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return quiz, nil
}

// RecordResult appends a completed attempt's outcome to the quiz document and
// invalidates its cache entry. A version conflict is surfaced as-is; whether
// to retry is the caller's decision, since a silent retry could reorder or
// duplicate result records.
func (s *quizService) RecordResult(ctx context.Context, quizID string, score, totalQuestions int) error {
	record := domain.NewResultRecord(score, totalQuestions)
	if err := record.Validate(); err != nil {
		return err
	}

	if err := s.store.AppendResult(ctx, quizID, record); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Delete(ctx, cache.QuizDocumentKey(quizID)); err != nil {
			logger.Get().Warn("Cache invalidation failed",
				zap.String("document_id", quizID),
				zap.Error(err),
			)
		}
	}
	logger.Get().Info("Result recorded",
		zap.String("document_id", quizID),
		zap.Int("score", score),
		zap.Int("total_questions", totalQuestions),
	)
	return nil
}
