package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/pkg/utils"
	"github.com/travelmate-console/internal/pkg/validator"
	"github.com/travelmate-console/internal/usecase"
	"github.com/travelmate-console/internal/usecase/dto"
)

type ModerationHandler struct {
	moderationUC *usecase.ModerationUseCase
	logger       *zap.Logger
}

func NewModerationHandler(moderationUC *usecase.ModerationUseCase, logger *zap.Logger) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: moderationUC,
		logger:       logger,
	}
}

// Decide applies an approve or dismiss decision to one listing.
func (h *ModerationHandler) Decide(c *fiber.Ctx) error {
	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	itemType := domain.ItemType(c.Params("type"))
	id := c.Params("id")

	result, err := h.moderationUC.Decide(c.Context(), itemType, id, *req.Approve)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
