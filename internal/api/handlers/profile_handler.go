package handlers

import (
	"fin-advisor/internal/dto"
	"fin-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	profiles *service.ProfileService
	logger   *zap.Logger
}

func NewProfileHandler(profiles *service.ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		logger:   logger,
	}
}

// UpsertProfile godoc
// @Summary Save a user's financial profile
// @Description Create or replace the stored profile used to personalize advice
// @Tags profiles
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body dto.UpsertProfileRequest true "Profile attributes"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/profiles/{userId} [put]
func (h *ProfileHandler) UpsertProfile(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing userId",
		})
	}

	var req dto.UpsertProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	profile, err := h.profiles.Save(c.Context(), userID, req.UserContext)
	if err != nil {
		h.logger.Error("Failed to save profile", zap.String("user_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save profile",
		})
	}

	return c.JSON(dto.ProfileResponse{Profile: profile})
}
