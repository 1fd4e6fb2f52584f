package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travelmate-console/internal/pkg/errors"
	"github.com/travelmate-console/internal/pkg/utils"
	"github.com/travelmate-console/internal/pkg/validator"
	"github.com/travelmate-console/internal/usecase"
	"github.com/travelmate-console/internal/usecase/dto"
)

// WizardHandler exposes the submission wizard over HTTP. Every mutation
// returns the refreshed session view so the console can re-render without
// a follow-up fetch.
type WizardHandler struct {
	wizardUC *usecase.WizardUseCase
	logger   *zap.Logger
}

func NewWizardHandler(wizardUC *usecase.WizardUseCase, logger *zap.Logger) *WizardHandler {
	return &WizardHandler{
		wizardUC: wizardUC,
		logger:   logger,
	}
}

// Start opens a session: create mode by default, edit mode when the body
// carries a placeId.
func (h *WizardHandler) Start(c *fiber.Ctx) error {
	var req dto.StartWizardRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return utils.SendError(c, errors.ErrInvalidRequest)
		}
	}

	if req.PlaceID != "" {
		view, err := h.wizardUC.StartEdit(c.Context(), req.PlaceID)
		if err != nil {
			return utils.SendError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: view})
	}

	view := h.wizardUC.StartCreate(c.Context())
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: view})
}

func (h *WizardHandler) Session(c *fiber.Ctx) error {
	view, err := h.wizardUC.Session(c.Params("sid"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) Advance(c *fiber.Ctx) error {
	view, err := h.wizardUC.Advance(c.Params("sid"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) Back(c *fiber.Ctx) error {
	view, err := h.wizardUC.Back(c.Params("sid"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) SetCategory(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	view, err := h.wizardUC.SetCategory(c.Params("sid"), req.Category)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) SetIdentity(c *fiber.Ctx) error {
	var req dto.IdentityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	view, err := h.wizardUC.SetIdentity(c.Params("sid"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) SetLogistics(c *fiber.Ctx) error {
	var req dto.LogisticsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	view, err := h.wizardUC.SetLogistics(c.Params("sid"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) SetCoordinate(c *fiber.Ctx) error {
	var req dto.CoordinateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	view, err := h.wizardUC.SetCoordinate(c.Params("sid"), req.Lat, req.Lng)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) Toggle(c *fiber.Ctx) error {
	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	view, err := h.wizardUC.Toggle(c.Params("sid"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) AppendImage(c *fiber.Ctx) error {
	var req dto.ImageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	view, err := h.wizardUC.AppendImage(c.Params("sid"), req.Image)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) RemoveImage(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	view, err := h.wizardUC.RemoveImage(c.Params("sid"), index)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) Geosearch(c *fiber.Ctx) error {
	var req dto.GeosearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"validation": err.Error(),
		}))
	}

	view, err := h.wizardUC.Geosearch(c.Context(), c.Params("sid"), req.Query)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, view, nil)
}

func (h *WizardHandler) Commit(c *fiber.Ctx) error {
	result, err := h.wizardUC.Commit(c.Context(), c.Params("sid"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

func (h *WizardHandler) Discard(c *fiber.Ctx) error {
	if err := h.wizardUC.Discard(c.Params("sid")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
