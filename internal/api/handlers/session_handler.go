package handlers

import (
	"studiekompas/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	flowService *service.FlowService
	logger      *zap.Logger
}

func NewSessionHandler(flowService *service.FlowService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		flowService: flowService,
		logger:      logger,
	}
}

// CreateSession godoc
// @Summary Create a flow session
// @Description Start a new anonymous session on the welcome screen
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	return c.Status(fiber.StatusCreated).JSON(h.flowService.CreateSession())
}

// GetSession godoc
// @Summary Get a flow session
// @Description Current view, questionnaire state and submitted profile
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(h.flowService.Get(session))
}

// Start godoc
// @Summary Open the questionnaire
// @Description Move from the welcome screen to step 1 of the questionnaire
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/start [post]
func (h *SessionHandler) Start(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.flowService.Start(session)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Reset godoc
// @Summary Start over
// @Description Return to the welcome screen and forget profile, results and chat
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(h.flowService.Reset(session))
}

// EndSession godoc
// @Summary End a flow session
// @Description Forget the session with its profile, results and chat
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [delete]
func (h *SessionHandler) EndSession(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	h.flowService.End(session)
	return c.SendStatus(fiber.StatusNoContent)
}
