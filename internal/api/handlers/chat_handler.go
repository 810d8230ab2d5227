package handlers

import (
	"studiekompas/internal/dto"
	"studiekompas/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *service.ChatService
	logger      *zap.Logger
}

func NewChatHandler(chatService *service.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// History godoc
// @Summary Advisor chat history
// @Tags chat
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/chat [get]
func (h *ChatHandler) History(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	resp, err := h.chatService.History(session)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}

// Send godoc
// @Summary Ask the advisor
// @Description Send a message to the AI study advisor. Provider failures are answered with a fixed apology.
// @Tags chat
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatReplyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/chat [post]
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	session, err := getSession(c)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	resp, err := h.chatService.Send(c.Context(), session, req.Message)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(resp)
}
