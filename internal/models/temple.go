package models

import "fmt"

// Temple is an informational record about a single temple.
type Temple struct {
	BaseModel
	Name         string `gorm:"size:255" json:"name"`
	Overview     string `gorm:"type:text" json:"overview"`
	Highlights   string `gorm:"type:text" json:"highlights"`
	LocationInfo string `gorm:"type:text" json:"location_info"`
	MainImageURL string `json:"main_image_url"`

	GalleryImages []TempleGalleryImage `json:"gallery_images,omitempty"`
}

// RecordType keys audit entries and external-id reservations for temples.
func (t *Temple) RecordType() string { return "temple" }

func (t *Temple) String() string { return t.Name }

// TempleGalleryImage belongs to a temple. The store cascades hard deletes of
// a temple to its gallery rows.
type TempleGalleryImage struct {
	BaseModel
	TempleID uint    `gorm:"index;not null" json:"temple_id"`
	Temple   *Temple `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ImageURL string  `json:"image_url"`
}

// RecordType keys audit entries and external-id reservations for gallery images.
func (g *TempleGalleryImage) RecordType() string { return "temple_gallery_image" }

func (g *TempleGalleryImage) String() string {
	if g.Temple != nil {
		return fmt.Sprintf("Gallery image for %s", g.Temple.Name)
	}
	return fmt.Sprintf("Gallery image for temple %d", g.TempleID)
}
