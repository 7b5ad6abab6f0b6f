package models

// ArchitectureFeature describes one architectural element shared across
// temples.
type ArchitectureFeature struct {
	BaseModel
	Title            string `gorm:"size:255" json:"title"`
	ShortDescription string `gorm:"size:500" json:"short_description"`
	FullDescription  string `gorm:"type:text" json:"full_description"`
}

// RecordType keys audit entries and external-id reservations for features.
func (f *ArchitectureFeature) RecordType() string { return "architecture_feature" }

func (f *ArchitectureFeature) String() string { return f.Title }
