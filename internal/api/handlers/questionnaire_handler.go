package handlers

import (
	"errors"

	"studiekompas/internal/dto"
	"studiekompas/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type QuestionnaireHandler struct {
	flowService *service.FlowService
	logger      *zap.Logger
}

func NewQuestionnaireHandler(flowService *service.FlowService, logger *zap.Logger) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		flowService: flowService,
		logger:      logger,
	}
}

// UpdateStep godoc
// @Summary Save questionnaire answers
// @Description Store the fields of one step. 1: name, level. 2: track. 3: favorite_subjects, hobbies. 4: work_style, dream_job
// @Tags questionnaire
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param step path int true "Step (1-4)"
// @Param request body dto.StepRequest true "Step answers"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/questionnaire/steps/{step} [put]
func (h *QuestionnaireHandler) UpdateStep(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	step, err := c.ParamsInt("step")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid step",
		})
	}

	var req dto.StepRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.flowService.UpdateStep(session, step, service.StepInput{
		Name:             req.Name,
		Level:            req.Level,
		Track:            req.Track,
		FavoriteSubjects: req.FavoriteSubjects,
		Hobbies:          req.Hobbies,
		WorkStyle:        req.WorkStyle,
		DreamJob:         req.DreamJob,
	})
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Next godoc
// @Summary Next questionnaire step
// @Tags questionnaire
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/questionnaire/next [post]
func (h *QuestionnaireHandler) Next(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.flowService.Next(session)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Back godoc
// @Summary Previous questionnaire step
// @Tags questionnaire
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/questionnaire/back [post]
func (h *QuestionnaireHandler) Back(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.flowService.Back(session)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Submit godoc
// @Summary Submit the profile
// @Description Complete the questionnaire and request study recommendations from the AI provider
// @Tags questionnaire
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 502 {object} dto.SubmitErrorResponse
// @Router /sessions/{id}/questionnaire/submit [post]
func (h *QuestionnaireHandler) Submit(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	resp, err := h.flowService.Submit(c.Context(), session)
	if err != nil {
		if errors.Is(err, service.ErrProviderUnavailable) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.SubmitErrorResponse{
				Error:   resp.Error,
				Session: resp,
			})
		}
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}
