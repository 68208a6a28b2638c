package handler

import (
	"quizpages/internal/domain"
	"quizpages/internal/dto"
	"quizpages/internal/service"
	"quizpages/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AttemptHandler handles quiz-taking HTTP requests
type AttemptHandler struct {
	service   service.AttemptService
	validator *validation.Validator
}

// NewAttemptHandler creates a new AttemptHandler instance
func NewAttemptHandler(service service.AttemptService, validator *validation.Validator) *AttemptHandler {
	return &AttemptHandler{
		service:   service,
		validator: validator,
	}
}

// StartAttempt godoc
// @Summary Start a quiz attempt
// @Description Loads a quiz document and opens a fresh attempt on it
// @Tags attempt
// @Accept json
// @Produce json
// @Param request body dto.StartAttemptRequest true "Quiz to attempt"
// @Success 201 {object} dto.StartAttemptResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 422 {object} middleware.ErrorResponse
// @Router /attempts [post]
func (h *AttemptHandler) StartAttempt(c *fiber.Ctx) error {
	var req dto.StartAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateStartAttemptRequest(&req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.StartAttempt(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer
// @Description Grades one question of an open attempt
// @Tags attempt
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param request body dto.GradeAnswerRequest true "Selected answers"
// @Success 200 {object} dto.GradeAnswerResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 409 {object} middleware.ErrorResponse
// @Router /attempts/{id}/answers [post]
func (h *AttemptHandler) SubmitAnswer(c *fiber.Ctx) error {
	attemptID := c.Params("id")

	var req dto.GradeAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body is not valid JSON")
	}

	if errs := h.validator.ValidateGradeAnswerRequest(attemptID, &req); len(errs) > 0 {
		return errs
	}

	resp, err := h.service.SubmitAnswer(c.Context(), attemptID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
