// Package records implements the behavior shared by every record type:
// external-id assignment, soft deletion, restoration and audit logging.
// Concrete types opt in by embedding models.BaseModel, which supplies the
// metadata accessor; each type only adds a type key and a printable form.
package records

import (
	"time"

	"gorm.io/gorm"

	"github.com/example/heritage/internal/models"
)

// Record is any persistent type carrying the shared metadata columns.
type Record interface {
	Meta() *models.BaseModel
	RecordType() string
	String() string
}

// Save persists rec, allocating an external id on first save. The registry
// reservation and the record row are written in one transaction so a failed
// save cannot leak the id; on error the in-memory metadata is rolled back
// too, so a retried Save starts from a clean slate. New records get a
// "creation" audit entry when an actor is known. A nil actor is a valid
// unattributed save and leaves created_by/updated_by untouched; deletion and
// restoration are the operations that must be attributable. Store errors,
// including uniqueness violations, propagate unchanged.
func Save(db *gorm.DB, rec Record, actor *models.User) error {
	meta := rec.Meta()
	isNew := meta.ID == 0
	snapshot := *meta

	if actor != nil {
		if isNew {
			meta.CreatedByID = &actor.ID
		}
		meta.UpdatedByID = &actor.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if meta.ExtID == "" {
			extID, err := GenerateExtID(tx, models.ExtIDLength)
			if err != nil {
				return err
			}
			reservation := models.ExternalID{Value: extID, RecordType: rec.RecordType()}
			if err := tx.Create(&reservation).Error; err != nil {
				return err
			}
			meta.ExtID = extID
		}

		if err := tx.Save(rec).Error; err != nil {
			return err
		}

		if isNew && actor != nil {
			return logAction(tx, rec, actor, models.ActionCreation, "Object created", false, nil)
		}
		return nil
	})
	if err != nil {
		*meta = snapshot
	}
	return err
}

// SoftDelete marks rec deleted. Deletion must always be attributable, so a
// nil actor fails with ErrInvalidOperation before anything is touched. The
// row is never physically removed.
func SoftDelete(db *gorm.DB, rec Record, actor *models.User) error {
	if actor == nil {
		return ErrInvalidOperation
	}

	meta := rec.Meta()
	snapshot := *meta
	now := time.Now()
	meta.DeletedAt = &now
	meta.UpdatedByID = &actor.ID

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := logAction(tx, rec, actor, models.ActionDeletion, "Object soft deleted", false, nil); err != nil {
			return err
		}
		return Save(tx, rec, actor)
	})
	if err != nil {
		*meta = snapshot
	}
	return err
}

// Restore clears the soft-delete marker and logs the restoration. The system
// this replaces accepted anonymous restores; here restoration is attributable
// like deletion.
func Restore(db *gorm.DB, rec Record, actor *models.User) error {
	if actor == nil {
		return ErrInvalidOperation
	}

	meta := rec.Meta()
	snapshot := *meta
	meta.DeletedAt = nil
	meta.UpdatedByID = &actor.ID

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := Save(tx, rec, actor); err != nil {
			return err
		}
		return logAction(tx, rec, actor, models.ActionModification, "Object restored", false, nil)
	})
	if err != nil {
		*meta = snapshot
	}
	return err
}

// IsDeleted reports whether rec is soft deleted.
func IsDeleted(rec Record) bool { return rec.Meta().IsDeleted() }

// Logs returns every audit entry for rec, most recent first.
func Logs(db *gorm.DB, rec Record) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := db.Where("record_type = ? AND record_id = ?", rec.RecordType(), rec.Meta().ID).
		Order("action_time desc, id desc").
		Find(&entries).Error
	return entries, err
}

// LogAction appends a single audit entry for rec, capturing its printable
// form and store identity at call time.
func LogAction(db *gorm.DB, rec Record, actor *models.User, action, message string, isAdmin bool, code *string) error {
	return logAction(db, rec, actor, action, message, isAdmin, code)
}

func logAction(db *gorm.DB, rec Record, actor *models.User, action, message string, isAdmin bool, code *string) error {
	entry := models.AuditLog{
		RecordType: rec.RecordType(),
		RecordID:   rec.Meta().ID,
		ObjectRepr: rec.String(),
		Action:     action,
		Message:    message,
		IsAdmin:    isAdmin,
		Code:       code,
		ActionTime: time.Now(),
	}
	if actor != nil {
		entry.UserID = &actor.ID
	}
	return db.Create(&entry).Error
}

// Active is the default enumeration policy: rows that are not soft deleted,
// in ascending store-identity order. Used as a gorm scope.
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL").Order("id asc")
}

// All is the unrestricted view for administrative and audit listings: every
// row regardless of deletion state, in ascending store-identity order.
func All(db *gorm.DB) *gorm.DB {
	return db.Order("id asc")
}
