package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/heritage/internal/models"
	"github.com/example/heritage/internal/records"
	"github.com/example/heritage/internal/utils"
)

// TempleHandler manages temples and their gallery images.
type TempleHandler struct {
	db *gorm.DB
}

// NewTempleHandler constructs TempleHandler.
func NewTempleHandler(db *gorm.DB) *TempleHandler {
	return &TempleHandler{db: db}
}

// ListTemples returns paginated temples. Soft-deleted rows are hidden unless
// include_deleted=true is passed.
func (h *TempleHandler) ListTemples(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)
	scope := listScope(c)

	var total int64
	if err := h.db.Model(&models.Temple{}).Scopes(scope).Count(&total).Error; err != nil {
		return err
	}

	var temples []models.Temple
	if err := h.db.Scopes(scope).Limit(pg.Limit).Offset(pg.Offset).
		Find(&temples).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    temples,
		"pagination": fiber.Map{
			"current_page":   pg.Page,
			"items_per_page": pg.Limit,
			"total_items":    total,
		},
	})
}

// GetTemple returns a single temple by ID. Soft-deleted temples stay
// addressable here.
func (h *TempleHandler) GetTemple(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var temple models.Temple
	if err := h.db.First(&temple, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "temple not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": temple})
}

// CreateTemple persists a new temple.
func (h *TempleHandler) CreateTemple(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	var payload models.Temple
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = models.BaseModel{}

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// UpdateTemple updates an existing temple.
func (h *TempleHandler) UpdateTemple(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var temple models.Temple
	if err := h.db.First(&temple, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "temple not found")
		}
		return err
	}

	var payload models.Temple
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = temple.BaseModel

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": payload})
}

// DeleteTemple soft deletes a temple, attributed to the acting user.
func (h *TempleHandler) DeleteTemple(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var temple models.Temple
	if err := h.db.First(&temple, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "temple not found")
		}
		return err
	}

	if err := records.SoftDelete(h.db, &temple, user); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// RestoreTemple clears a temple's soft-delete marker.
func (h *TempleHandler) RestoreTemple(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var temple models.Temple
	if err := h.db.First(&temple, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "temple not found")
		}
		return err
	}

	if err := records.Restore(h.db, &temple, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": temple})
}

// TempleLogs returns the audit trail for a temple, newest first.
func (h *TempleHandler) TempleLogs(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var temple models.Temple
	if err := h.db.First(&temple, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "temple not found")
		}
		return err
	}

	entries, err := records.Logs(h.db, &temple)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}

// ListGalleryImages returns a temple's gallery, hiding soft-deleted images
// unless include_deleted=true is passed.
func (h *TempleHandler) ListGalleryImages(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var images []models.TempleGalleryImage
	if err := h.db.Scopes(listScope(c)).Where("temple_id = ?", id).
		Find(&images).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": images})
}

// CreateGalleryImage attaches a new gallery image to a temple.
func (h *TempleHandler) CreateGalleryImage(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var temple models.Temple
	if err := h.db.First(&temple, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "temple not found")
		}
		return err
	}

	var payload models.TempleGalleryImage
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = models.BaseModel{}
	payload.TempleID = temple.ID

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": payload})
}

// Gallery image mutations follow the same pattern as temples.

func (h *TempleHandler) GetGalleryImage(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var image models.TempleGalleryImage
	if err := h.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": image})
}

func (h *TempleHandler) UpdateGalleryImage(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var image models.TempleGalleryImage
	if err := h.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return err
	}

	var payload models.TempleGalleryImage
	if err := c.BodyParser(&payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	payload.BaseModel = image.BaseModel
	payload.TempleID = image.TempleID

	if err := records.Save(h.db, &payload, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": payload})
}

func (h *TempleHandler) DeleteGalleryImage(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var image models.TempleGalleryImage
	if err := h.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return err
	}

	if err := records.SoftDelete(h.db, &image, user); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TempleHandler) RestoreGalleryImage(c *fiber.Ctx) error {
	user, err := requireUser(c)
	if err != nil {
		return err
	}

	id, err := parseID(c)
	if err != nil {
		return err
	}

	var image models.TempleGalleryImage
	if err := h.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return err
	}

	if err := records.Restore(h.db, &image, user); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": image})
}

func (h *TempleHandler) GalleryImageLogs(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var image models.TempleGalleryImage
	if err := h.db.First(&image, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return err
	}

	entries, err := records.Logs(h.db, &image)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": entries})
}
