package models

import "time"

// Audit action kinds.
const (
	ActionCreation     = "creation"
	ActionModification = "modification"
	ActionDeletion     = "deletion"
)

// AuditLog is one append-only entry recording who did what to which record.
// ObjectRepr and RecordID capture the subject as it looked at logging time;
// the entry outlives both the record's mutations and the acting user account.
type AuditLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     *uint     `gorm:"index" json:"user_id"`
	User       *User     `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
	RecordType string    `gorm:"size:64;index:idx_audit_subject" json:"record_type"`
	RecordID   uint      `gorm:"index:idx_audit_subject" json:"record_id"`
	ObjectRepr string    `gorm:"size:255" json:"object_repr"`
	Action     string    `gorm:"size:16" json:"action"`
	Message    string    `json:"message"`
	IsAdmin    bool      `json:"is_admin"`
	Code       *string   `gorm:"size:64" json:"code"`
	ActionTime time.Time `gorm:"index" json:"action_time"`
}
