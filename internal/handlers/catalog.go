package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/heritage/internal/models"
	"github.com/example/heritage/internal/records"
	"github.com/example/heritage/internal/utils"
)

// CatalogHandler manages architecture features and products.
type CatalogHandler struct {
	db *gorm.DB
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ListFeatures returns paginated architecture features.
func (h *CatalogHandler) ListFeatures(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	scope := listScope(c)

	var total int64
	if err := h.db.Model(&models.ArchitectureFeature{}).Scopes(scope).Count(&total).Error; err != nil {
		return err
	}

	var features []models.ArchitectureFeature
	if err := h.db.Scopes(scope).Limit(pg.Limit).Offset(pg.Offset).
		Find(&features).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": features, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

// GetFeature returns a single architecture feature by ID.
func (h *CatalogHandler) GetFeature(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var feature models.ArchitectureFeature
	if err := h.db.First(&feature, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "feature not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": feature})
}

// CreateFeature persists a new architecture feature.
func (h *CatalogHandler) CreateFeature(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	var payload models.ArchitectureFeature
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = models.BaseModel{}

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateFeature updates an existing architecture feature.
func (h *CatalogHandler) UpdateFeature(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var feature models.ArchitectureFeature
	if err := h.db.First(&feature, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "feature not found")
		}
		return err
	}

	var payload models.ArchitectureFeature
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = feature.BaseModel

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": payload})
}

// DeleteFeature soft deletes an architecture feature.
func (h *CatalogHandler) DeleteFeature(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var feature models.ArchitectureFeature
	if err := h.db.First(&feature, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "feature not found")
		}
		return err
	}

	if err := records.SoftDelete(h.db, &feature, user); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RestoreFeature clears a feature's soft-delete marker.
func (h *CatalogHandler) RestoreFeature(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var feature models.ArchitectureFeature
	if err := h.db.First(&feature, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "feature not found")
		}
		return err
	}

	if err := records.Restore(h.db, &feature, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": feature})
}

// FeatureLogs returns the audit trail for a feature, newest first.
func (h *CatalogHandler) FeatureLogs(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var feature models.ArchitectureFeature
	if err := h.db.First(&feature, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "feature not found")
		}
		return err
	}

	entries, err := records.Logs(h.db, &feature)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}

// Product endpoints follow the same pattern.

func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	scope := listScope(c)

	var total int64
	if err := h.db.Model(&models.Product{}).Scopes(scope).Count(&total).Error; err != nil {
		return err
	}

	var products []models.Product
	if err := h.db.Scopes(scope).Limit(pg.Limit).Offset(pg.Offset).
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": products, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	var payload models.Product
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = models.BaseModel{}

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	var payload models.Product
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = product.BaseModel

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": payload})
}

func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if err := records.SoftDelete(h.db, &product, user); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CatalogHandler) RestoreProduct(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	if err := records.Restore(h.db, &product, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": product})
}

func (h *CatalogHandler) ProductLogs(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "product not found")
		}
		return err
	}

	entries, err := records.Logs(h.db, &product)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}
