package handlers

import (
	"studiekompas/internal/service"

	"github.com/gofiber/fiber/v2"
)

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

// Help godoc
// @Summary How StudieKompas works
// @Description Static three-step explanation shown from the welcome screen
// @Tags help
// @Produce json
// @Success 200 {object} dto.HelpResponse
// @Router /help [get]
func (h *HelpHandler) Help(c *fiber.Ctx) error {
	return c.JSON(service.Help())
}

// Options godoc
// @Summary Questionnaire options
// @Description Education levels, tracks and work styles with their Dutch labels
// @Tags help
// @Produce json
// @Success 200 {object} dto.OptionsResponse
// @Router /options [get]
func (h *HelpHandler) Options(c *fiber.Ctx) error {
	return c.JSON(service.Options())
}
