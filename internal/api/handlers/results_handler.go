package handlers

import (
	"studiekompas/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ResultsHandler struct {
	resultsService *service.ResultsService
	logger         *zap.Logger
}

func NewResultsHandler(resultsService *service.ResultsService, logger *zap.Logger) *ResultsHandler {
	return &ResultsHandler{
		resultsService: resultsService,
		logger:         logger,
	}
}

// ListRecommendations godoc
// @Summary List recommendations
// @Tags recommendations
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ResultsResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/recommendations [get]
func (h *ResultsHandler) ListRecommendations(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.resultsService.List(session)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// SelectRecommendation godoc
// @Summary Select a recommendation
// @Description Mark the recommendation shown in the detail pane
// @Tags recommendations
// @Produce json
// @Param id path string true "Session ID"
// @Param recId path string true "Recommendation ID"
// @Success 200 {object} dto.ResultsResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/recommendations/{recId}/select [post]
func (h *ResultsHandler) SelectRecommendation(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.resultsService.Select(session, c.Params("recId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// GetRecommendation godoc
// @Summary Recommendation details
// @Tags recommendations
// @Produce json
// @Param id path string true "Session ID"
// @Param recId path string true "Recommendation ID"
// @Success 200 {object} dto.RecommendationDetailResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/recommendations/{recId} [get]
func (h *ResultsHandler) GetRecommendation(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.resultsService.Detail(session, c.Params("recId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// SuggestedQuestion godoc
// @Summary Suggested advisor question
// @Description Pre-filled chat question about the recommendation
// @Tags recommendations
// @Produce json
// @Param id path string true "Session ID"
// @Param recId path string true "Recommendation ID"
// @Success 200 {object} dto.SuggestedQuestionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/recommendations/{recId}/question [get]
func (h *ResultsHandler) SuggestedQuestion(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.resultsService.SuggestedQuestion(session, c.Params("recId"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}
