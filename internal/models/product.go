package models

// Product is a catalog item sold alongside the informational content.
type Product struct {
	BaseModel
	Name        string  `gorm:"size:255" json:"name"`
	Price       float64 `json:"price"`
	Description string  `gorm:"type:text" json:"description"`
	ImageURL    string  `json:"image_url"`
}

// RecordType keys audit entries and external-id reservations for products.
func (p *Product) RecordType() string { return "product" }

func (p *Product) String() string { return p.Name }
