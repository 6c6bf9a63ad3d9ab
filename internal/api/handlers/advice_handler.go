package handlers

import (
	"fin-advisor/internal/dto"
	"fin-advisor/internal/models"
	"fin-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AdviceHandler struct {
	advisor *service.AdvisorService
	logger  *zap.Logger
}

func NewAdviceHandler(advisor *service.AdvisorService, logger *zap.Logger) *AdviceHandler {
	return &AdviceHandler{
		advisor: advisor,
		logger:  logger,
	}
}

// GenerateAdvice godoc
// @Summary Generate personalized financial advice
// @Description Answer a free-text financial question using the knowledge base and the user's profile
// @Tags advice
// @Accept json
// @Produce json
// @Param request body dto.GenerateAdviceRequest true "Advice request"
// @Success 200 {object} dto.AdviceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/advice [post]
func (h *AdviceHandler) GenerateAdvice(c *fiber.Ctx) error {
	var req dto.GenerateAdviceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.UserID == "" || req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing userId or query",
		})
	}

	overrides := models.UserContext{}
	if req.Context != nil {
		overrides = *req.Context
	}

	response, err := h.advisor.GenerateAdvice(c.Context(), req.UserID, req.Query, overrides)
	if err != nil {
		h.logger.Error("Failed to generate advice", zap.String("user_id", req.UserID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate financial advice",
		})
	}

	return c.JSON(response)
}

// GenerateAdviceByType godoc
// @Summary Generate canned financial advice
// @Description Answer a fixed question selected by advice type (savings, investment, credit, taxes, goals)
// @Tags advice
// @Produce json
// @Param userId query string true "User ID"
// @Param type query string false "Advice type" default(general)
// @Success 200 {object} dto.AdviceResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/advice [get]
func (h *AdviceHandler) GenerateAdviceByType(c *fiber.Ctx) error {
	userID := c.Query("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing userId",
		})
	}

	adviceType := c.Query("type", "general")

	response, err := h.advisor.GenerateAdviceByType(c.Context(), userID, adviceType)
	if err != nil {
		h.logger.Error("Failed to generate advice", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate financial advice",
		})
	}

	return c.JSON(response)
}
