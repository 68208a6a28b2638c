package handler

import (
	"quizpages/internal/domain"
	"quizpages/internal/dto"
	"quizpages/internal/logger"
	"quizpages/internal/service"
	"quizpages/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuizHandler handles quiz authoring and catalog HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validator,
	}
}

// SaveQuiz godoc
// @Summary Save a new quiz
// @Description Creates a quiz document in the backing store
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.SaveQuizRequest true "Quiz definition"
// @Success 201 {object} dto.SaveQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) SaveQuiz(c *fiber.Ctx) error {
	var req dto.SaveQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateSaveQuizRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SaveQuiz(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListQuizzes godoc
// @Summary List all quizzes
// @Description Returns a catalog of every quiz document in the store
// @Tags quiz
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Failure 502 {object} middleware.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	resp, err := h.service.ListQuizzes(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RecordResult godoc
// @Summary Record a quiz result
// @Description Appends a score record to a quiz document
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path string true "Quiz document ID"
// @Param request body dto.RecordResultRequest true "Result record"
// @Success 200 {object} dto.RecordResultResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /quizzes/{id}/results [post]
func (h *QuizHandler) RecordResult(c *fiber.Ctx) error {
	documentID := c.Params("id")

	var req dto.RecordResultRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateRecordResultRequest(documentID, &req); len(errs) > 0 {
		return errs
	}

	if err := h.service.RecordResult(c.Context(), documentID, req.Score, req.TotalQuestions); err != nil {
		return err
	}

	logger.Get().Info("Result recorded via API",
		zap.String("document_id", documentID),
		zap.Int("score", req.Score),
	)
	return c.JSON(dto.RecordResultResponse{Success: true})
}
