package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExtIDLength is the length of generated external identifiers.
const ExtIDLength = 10

// BaseModel provides the shared columns for all record tables: store identity,
// an immutable uid, a short shareable external id, timestamps, the soft-delete
// marker and acting-user attribution. Record types embed it rather than
// inheriting behavior; the behavior lives in the records package.
type BaseModel struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UID         uuid.UUID  `gorm:"type:uuid;not null" json:"uid"`
	ExtID       string     `gorm:"size:10;uniqueIndex" json:"ext_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `gorm:"index" json:"deleted_at"`
	CreatedByID *uint      `json:"created_by"`
	UpdatedByID *uint      `json:"updated_by"`
	CreatedBy   *User      `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	UpdatedBy   *User      `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:SET NULL" json:"-"`
}

// BeforeCreate ensures UUIDs are generated for new records.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.UID == uuid.Nil {
		b.UID = uuid.New()
	}
	return nil
}

// Meta returns the embedded metadata, letting any type that embeds BaseModel
// satisfy the records.Record interface.
func (b *BaseModel) Meta() *BaseModel { return b }

// IsDeleted reports whether the record is soft deleted.
func (b *BaseModel) IsDeleted() bool { return b.DeletedAt != nil }
