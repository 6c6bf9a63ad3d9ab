package handlers

import (
	"errors"

	"fin-advisor/internal/dto"
	"fin-advisor/internal/models"
	"fin-advisor/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	store  *service.KnowledgeStore
	logger *zap.Logger
}

func NewKnowledgeHandler(store *service.KnowledgeStore, logger *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		store:  store,
		logger: logger,
	}
}

// AddKnowledge godoc
// @Summary Add a knowledge document
// @Description Add a financial-advice passage to the knowledge base; it becomes searchable immediately
// @Tags knowledge
// @Accept json
// @Produce json
// @Param request body dto.AddKnowledgeRequest true "Knowledge item"
// @Success 201 {object} dto.KnowledgeItemResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/knowledge [post]
func (h *KnowledgeHandler) AddKnowledge(c *fiber.Ctx) error {
	var req dto.AddKnowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Content is required",
		})
	}

	metadata := models.DocumentMetadata{}
	if req.Metadata != nil {
		metadata = *req.Metadata
	}
	if req.Category != "" {
		metadata.Category = req.Category
	}
	metadata.Priority = req.Priority
	if metadata.Priority == "" {
		metadata.Priority = models.PriorityMedium
	}

	doc, err := h.store.AddDocument(c.Context(), req.Content, metadata)
	if err != nil {
		if errors.Is(err, models.ErrEmptyContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Content is required",
			})
		}
		h.logger.Error("Failed to add knowledge document", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to add knowledge item",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.KnowledgeItemResponse{
		Message: "Knowledge item added successfully",
		Item:    doc,
	})
}

// ListKnowledge godoc
// @Summary List knowledge documents
// @Description List knowledge documents filtered by optional category and priority, newest first
// @Tags knowledge
// @Produce json
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter"
// @Success 200 {array} models.KnowledgeDocument
// @Router /api/v1/knowledge [get]
func (h *KnowledgeHandler) ListKnowledge(c *fiber.Ctx) error {
	docs, err := h.store.List(c.Context(), c.Query("category"), c.Query("priority"))
	if err != nil {
		h.logger.Error("Failed to list knowledge documents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list knowledge items",
		})
	}

	if docs == nil {
		docs = []*models.KnowledgeDocument{}
	}
	return c.JSON(docs)
}

// UpdateKnowledge godoc
// @Summary Update a knowledge document
// @Description Apply a partial update to a knowledge document
// @Tags knowledge
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param request body dto.UpdateKnowledgeRequest true "Fields to update"
// @Success 200 {object} dto.KnowledgeItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/knowledge/{id} [put]
func (h *KnowledgeHandler) UpdateKnowledge(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid knowledge item ID",
		})
	}

	var req dto.UpdateKnowledgeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	doc, err := h.store.Update(c.Context(), id, service.KnowledgeUpdate{
		Content:  req.Content,
		Metadata: req.Metadata,
		Category: req.Category,
		Priority: req.Priority,
	})
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		}
		h.logger.Error("Failed to update knowledge document", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update knowledge item",
		})
	}

	return c.JSON(dto.KnowledgeItemResponse{
		Message: "Knowledge item updated successfully",
		Item:    doc,
	})
}

// DeleteKnowledge godoc
// @Summary Delete a knowledge document
// @Tags knowledge
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string
// @Router /api/v1/knowledge/{id} [delete]
func (h *KnowledgeHandler) DeleteKnowledge(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid knowledge item ID",
		})
	}

	if err := h.store.Delete(c.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Knowledge item not found",
			})
		}
		h.logger.Error("Failed to delete knowledge document", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete knowledge item",
		})
	}

	return c.JSON(fiber.Map{"ok": true})
}
