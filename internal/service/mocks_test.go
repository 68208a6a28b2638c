package service

import (
	"context"
	"time"

	"quizpages/internal/domain"
	"quizpages/internal/dto"

	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

// MockDocumentStore mocks domain.DocumentStore
type MockDocumentStore struct {
	mock.Mock
}

func (m *MockDocumentStore) CreateQuiz(ctx context.Context, quiz *domain.Quiz) (string, error) {
	args := m.Called(ctx, quiz)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentStore) FetchQuizDocument(ctx context.Context, documentID string) (*domain.Quiz, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockDocumentStore) ListQuizDocuments(ctx context.Context) ([]domain.DocumentListing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DocumentListing), args.Error(1)
}

func (m *MockDocumentStore) AppendResult(ctx context.Context, documentID string, record domain.ResultRecord) error {
	args := m.Called(ctx, documentID, record)
	return args.Error(0)
}

// MockCache mocks domain.Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockQuizService mocks QuizService for attempt tests
type MockQuizService struct {
	mock.Mock
}

func (m *MockQuizService) SaveQuiz(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SaveQuizResponse), args.Error(1)
}

func (m *MockQuizService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuizListResponse), args.Error(1)
}

func (m *MockQuizService) GetQuizForAttempt(ctx context.Context, quizID string) (*domain.Quiz, error) {
	args := m.Called(ctx, quizID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quiz), args.Error(1)
}

func (m *MockQuizService) RecordResult(ctx context.Context, quizID string, score, totalQuestions int) error {
	args := m.Called(ctx, quizID, score, totalQuestions)
	return args.Error(0)
}
