package models

// ExternalID reserves a short identifier in the namespace shared by every
// record type. The primary key on Value turns cross-type uniqueness into a
// store constraint, closing the race inherent in check-then-insert.
type ExternalID struct {
	Value      string `gorm:"size:10;primaryKey" json:"value"`
	RecordType string `gorm:"size:64;index" json:"record_type"`
}

// TableName pins the registry table name.
func (ExternalID) TableName() string { return "external_ids" }
