package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"quizpages/internal/domain"
	"quizpages/internal/dto"
	"quizpages/internal/handler"
	"quizpages/internal/middleware"
	"quizpages/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Manual Mocks ---

// MockQuizService
type MockQuizService struct {
	SaveQuizFunc          func(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error)
	ListQuizzesFunc       func(ctx context.Context) (*dto.QuizListResponse, error)
	GetQuizForAttemptFunc func(ctx context.Context, quizID string) (*domain.Quiz, error)
	RecordResultFunc      func(ctx context.Context, quizID string, score, totalQuestions int) error
}

func (m *MockQuizService) SaveQuiz(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error) {
	if m.SaveQuizFunc != nil {
		return m.SaveQuizFunc(ctx, req)
	}
	panic("MockQuizService.SaveQuizFunc not implemented")
}
func (m *MockQuizService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx)
	}
	panic("MockQuizService.ListQuizzesFunc not implemented")
}
func (m *MockQuizService) GetQuizForAttempt(ctx context.Context, quizID string) (*domain.Quiz, error) {
	if m.GetQuizForAttemptFunc != nil {
		return m.GetQuizForAttemptFunc(ctx, quizID)
	}
	panic("MockQuizService.GetQuizForAttemptFunc not implemented")
}
func (m *MockQuizService) RecordResult(ctx context.Context, quizID string, score, totalQuestions int) error {
	if m.RecordResultFunc != nil {
		return m.RecordResultFunc(ctx, quizID, score, totalQuestions)
	}
	panic("MockQuizService.RecordResultFunc not implemented")
}

func newQuizApp(svc *MockQuizService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handler.NewQuizHandler(svc, validation.NewValidator())
	app.Post("/api/quizzes", h.SaveQuiz)
	app.Get("/api/quizzes", h.ListQuizzes)
	app.Post("/api/quizzes/:id/results", h.RecordResult)
	return app
}

func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestQuizHandler_SaveQuiz(t *testing.T) {
	saveRequest := dto.SaveQuizRequest{
		Name: "Geography",
		Questions: []dto.QuestionPayload{{
			Text:           "Capital of France?",
			Kind:           "single",
			Choices:        []string{"Paris", "Lyon"},
			CorrectAnswers: []string{"Paris"},
		}},
	}

	t.Run("Created", func(t *testing.T) {
		mockSvc := &MockQuizService{
			SaveQuizFunc: func(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error) {
				assert.Equal(t, "Geography", req.Name)
				return &dto.SaveQuizResponse{ID: "12345"}, nil
			},
		}
		app := newQuizApp(mockSvc)

		reqBodyBytes, _ := json.Marshal(saveRequest)
		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

		body := decodeBody[dto.SaveQuizResponse](t, resp.Body)
		assert.Equal(t, "12345", body.ID)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		app := newQuizApp(&MockQuizService{})

		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader([]byte("not json")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ValidationFailureSkipsService", func(t *testing.T) {
		app := newQuizApp(&MockQuizService{}) // panics if SaveQuiz is reached

		invalid := saveRequest
		invalid.Questions = []dto.QuestionPayload{{
			Text:    "Q",
			Kind:    "essay",
			Choices: []string{"a", "b"},
		}}
		reqBodyBytes, _ := json.Marshal(invalid)
		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody[middleware.ValidationErrorResponse](t, resp.Body)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "questions.kind", body.Errors[0].Field)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		mockSvc := &MockQuizService{
			SaveQuizFunc: func(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error) {
				return nil, domain.NewDuplicateNameError("Geography")
			},
		}
		app := newQuizApp(mockSvc)

		reqBodyBytes, _ := json.Marshal(saveRequest)
		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		body := decodeBody[middleware.ErrorResponse](t, resp.Body)
		assert.Equal(t, "DUPLICATE_NAME", body.Code)
	})

	t.Run("StoreUnavailable", func(t *testing.T) {
		mockSvc := &MockQuizService{
			SaveQuizFunc: func(ctx context.Context, req *dto.SaveQuizRequest) (*dto.SaveQuizResponse, error) {
				return nil, domain.NewStoreUnavailableError(503)
			},
		}
		app := newQuizApp(mockSvc)

		reqBodyBytes, _ := json.Marshal(saveRequest)
		req := httptest.NewRequest("POST", "/api/quizzes", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	})
}

func TestQuizHandler_ListQuizzes(t *testing.T) {
	t.Run("ReturnsCatalog", func(t *testing.T) {
		mockSvc := &MockQuizService{
			ListQuizzesFunc: func(ctx context.Context) (*dto.QuizListResponse, error) {
				return &dto.QuizListResponse{Quizzes: []dto.QuizListItem{{
					ID:                "12345",
					Name:              "Geography",
					QuestionSummaries: []string{"1. Capital of France? [Paris, Lyon]"},
					ResultsNote:       "no results yet",
				}}}, nil
			},
		}
		app := newQuizApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		body := decodeBody[dto.QuizListResponse](t, resp.Body)
		require.Len(t, body.Quizzes, 1)
		assert.Equal(t, "no results yet", body.Quizzes[0].ResultsNote)
	})

	t.Run("StoreError", func(t *testing.T) {
		mockSvc := &MockQuizService{
			ListQuizzesFunc: func(ctx context.Context) (*dto.QuizListResponse, error) {
				return nil, domain.NewTransportError(io.ErrUnexpectedEOF)
			},
		}
		app := newQuizApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest("GET", "/api/quizzes", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	})
}

func TestQuizHandler_RecordResult(t *testing.T) {
	t.Run("Recorded", func(t *testing.T) {
		recorded := false
		mockSvc := &MockQuizService{
			RecordResultFunc: func(ctx context.Context, quizID string, score, totalQuestions int) error {
				recorded = true
				assert.Equal(t, "12345", quizID)
				assert.Equal(t, 2, score)
				assert.Equal(t, 3, totalQuestions)
				return nil
			},
		}
		app := newQuizApp(mockSvc)

		reqBodyBytes, _ := json.Marshal(dto.RecordResultRequest{Score: 2, TotalQuestions: 3})
		req := httptest.NewRequest("POST", "/api/quizzes/12345/results", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, recorded)
	})

	t.Run("VersionConflict", func(t *testing.T) {
		mockSvc := &MockQuizService{
			RecordResultFunc: func(ctx context.Context, quizID string, score, totalQuestions int) error {
				return domain.NewVersionConflictError(quizID)
			},
		}
		app := newQuizApp(mockSvc)

		reqBodyBytes, _ := json.Marshal(dto.RecordResultRequest{Score: 1, TotalQuestions: 1})
		req := httptest.NewRequest("POST", "/api/quizzes/12345/results", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})

	t.Run("ScoreOutOfRangeSkipsService", func(t *testing.T) {
		app := newQuizApp(&MockQuizService{})

		reqBodyBytes, _ := json.Marshal(dto.RecordResultRequest{Score: 5, TotalQuestions: 3})
		req := httptest.NewRequest("POST", "/api/quizzes/12345/results", bytes.NewReader(reqBodyBytes))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}
