package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travelmate-console/internal/domain"
	"github.com/travelmate-console/internal/pkg/utils"
	"github.com/travelmate-console/internal/usecase"
)

// CatalogHandler serves the aggregated dashboard and routes card actions.
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	detailUC  *usecase.DetailUseCase
	logger    *zap.Logger
}

func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, detailUC *usecase.DetailUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		detailUC:  detailUC,
		logger:    logger,
	}
}

// Snapshot returns the catalog aggregate, cached when fresh.
func (h *CatalogHandler) Snapshot(c *fiber.Ctx) error {
	snapshot, err := h.catalogUC.Snapshot(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, snapshot, nil)
}

// Refresh forces a re-read of every tracked collection.
func (h *CatalogHandler) Refresh(c *fiber.Ctx) error {
	snapshot, err := h.catalogUC.Refresh(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, snapshot, nil)
}

// Detail returns one listing with its provider resolved.
func (h *CatalogHandler) Detail(c *fiber.Ctx) error {
	itemType := domain.ItemType(c.Params("type"))
	id := c.Params("id")

	detail, err := h.detailUC.Get(c.Context(), itemType, id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, detail, nil)
}

// Dispatch resolves an operator gesture on a card to a navigation intent.
func (h *CatalogHandler) Dispatch(c *fiber.Ctx) error {
	action := domain.Action(c.Params("action"))
	itemType := domain.ItemType(c.Params("type"))
	id := c.Params("id")

	intent, err := h.catalogUC.Dispatch(action, itemType, id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, intent, nil)
}
