package records

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/heritage/internal/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "records.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ExternalID{},
		&models.AuditLog{},
		&models.Temple{},
		&models.TempleGalleryImage{},
		&models.ArchitectureFeature{},
		&models.Product{},
	))

	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Name: "Test User"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestSaveAssignsIdentityFields(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	product := &models.Product{Name: "Prayer Beads", Price: 4.50}
	require.NoError(t, Save(db, product, user))

	require.NotZero(t, product.ID)
	require.NotEmpty(t, product.UID)
	require.Len(t, product.ExtID, models.ExtIDLength)
	for _, r := range product.ExtID {
		require.Contains(t, extIDAlphabet, string(r))
	}
	require.NotNil(t, product.CreatedByID)
	require.Equal(t, user.ID, *product.CreatedByID)
	require.False(t, product.UpdatedAt.Before(product.CreatedAt))

	// The registry reserved the id under the product type.
	var reservation models.ExternalID
	require.NoError(t, db.First(&reservation, "value = ?", product.ExtID).Error)
	require.Equal(t, "product", reservation.RecordType)
}

func TestSaveKeepsExistingExternalID(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	temple := &models.Temple{Name: "Golden Pavilion"}
	require.NoError(t, Save(db, temple, user))
	extID := temple.ExtID
	uid := temple.UID

	temple.Overview = "Zen temple in northern Kyoto."
	require.NoError(t, Save(db, temple, user))

	require.Equal(t, extID, temple.ExtID)
	require.Equal(t, uid, temple.UID)

	var count int64
	require.NoError(t, db.Model(&models.ExternalID{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestExternalIDUniqueAcrossTypes(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	seen := map[string]bool{}
	recs := []Record{
		&models.Temple{Name: "Temple A"},
		&models.Temple{Name: "Temple B"},
		&models.ArchitectureFeature{Title: "Gopuram"},
		&models.Product{Name: "Guide Book", Price: 12},
	}
	for _, rec := range recs {
		require.NoError(t, Save(db, rec, user))
		extID := rec.Meta().ExtID
		require.False(t, seen[extID], "external id %q reused", extID)
		seen[extID] = true
	}

	var count int64
	require.NoError(t, db.Model(&models.ExternalID{}).Count(&count).Error)
	require.EqualValues(t, len(recs), count)
}

func TestSoftDeleteRequiresActor(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	product := &models.Product{Name: "Incense Holder", Price: 3.25}
	require.NoError(t, Save(db, product, user))

	err := SoftDelete(db, product, nil)
	require.ErrorIs(t, err, ErrInvalidOperation)
	require.Nil(t, product.DeletedAt)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.Nil(t, stored.DeletedAt)
	require.False(t, stored.IsDeleted())
}

func TestRestoreRequiresActor(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	product := &models.Product{Name: "Candle", Price: 1.10}
	require.NoError(t, Save(db, product, user))
	require.NoError(t, SoftDelete(db, product, user))

	require.ErrorIs(t, Restore(db, product, nil), ErrInvalidOperation)

	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.True(t, stored.IsDeleted())
}

func TestDeleteRestoreAuditTrail(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	temple := &models.Temple{Name: "Stone Shrine"}
	require.NoError(t, Save(db, temple, user))
	require.NoError(t, SoftDelete(db, temple, user))
	require.True(t, IsDeleted(temple))

	require.NoError(t, Restore(db, temple, user))
	require.False(t, IsDeleted(temple))

	var stored models.Temple
	require.NoError(t, db.First(&stored, "id = ?", temple.ID).Error)
	require.Nil(t, stored.DeletedAt)
	require.NotNil(t, stored.UpdatedByID)
	require.Equal(t, user.ID, *stored.UpdatedByID)

	entries, err := Logs(db, temple)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, models.ActionModification, entries[0].Action)
	require.Equal(t, "Object restored", entries[0].Message)
	require.Equal(t, models.ActionDeletion, entries[1].Action)
	require.Equal(t, "Object soft deleted", entries[1].Message)
	require.Equal(t, models.ActionCreation, entries[2].Action)

	for _, entry := range entries {
		require.Equal(t, "temple", entry.RecordType)
		require.Equal(t, temple.ID, entry.RecordID)
		require.Equal(t, "Stone Shrine", entry.ObjectRepr)
		require.NotNil(t, entry.UserID)
		require.Equal(t, user.ID, *entry.UserID)
	}
}

func TestDefaultEnumerationExcludesDeleted(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	temples := make([]*models.Temple, 3)
	for i, name := range []string{"First", "Second", "Third"} {
		temples[i] = &models.Temple{Name: name}
		require.NoError(t, Save(db, temples[i], user))
	}

	require.NoError(t, SoftDelete(db, temples[1], user))

	var active []models.Temple
	require.NoError(t, db.Scopes(Active).Find(&active).Error)
	require.Len(t, active, 2)
	require.Equal(t, "First", active[0].Name)
	require.Equal(t, "Third", active[1].Name)

	var all []models.Temple
	require.NoError(t, db.Scopes(All).Find(&all).Error)
	require.Len(t, all, 3)

	// Soft-deleted rows stay addressable by direct lookup.
	var deleted models.Temple
	require.NoError(t, db.First(&deleted, "id = ?", temples[1].ID).Error)
	require.True(t, deleted.IsDeleted())
}

func TestLogActionCapturesCode(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "admin@example.com")
	user.IsAdmin = true
	require.NoError(t, db.Save(user).Error)

	feature := &models.ArchitectureFeature{Title: "Mandapa"}
	require.NoError(t, Save(db, feature, user))

	code := "FEATURE_REVIEW"
	require.NoError(t, LogAction(db, feature, user, models.ActionModification, "Reviewed by admin", true, &code))

	entries, err := Logs(db, feature)
	require.NoError(t, err)
	require.Equal(t, "Reviewed by admin", entries[0].Message)
	require.True(t, entries[0].IsAdmin)
	require.NotNil(t, entries[0].Code)
	require.Equal(t, code, *entries[0].Code)
}

func TestIncenseSetScenario(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "shop@example.com")

	product := &models.Product{Name: "Incense Set", Price: 9.99}
	require.NoError(t, Save(db, product, user))
	require.Len(t, product.ExtID, models.ExtIDLength)

	require.NoError(t, SoftDelete(db, product, user))

	var active []models.Product
	require.NoError(t, db.Scopes(Active).Find(&active).Error)
	require.Empty(t, active)

	var all []models.Product
	require.NoError(t, db.Scopes(All).Find(&all).Error)
	require.Len(t, all, 1)
	require.NotNil(t, all[0].DeletedAt)

	require.NoError(t, Restore(db, product, user))

	active = nil
	require.NoError(t, db.Scopes(Active).Find(&active).Error)
	require.Len(t, active, 1)
	require.Nil(t, active[0].DeletedAt)
	require.Equal(t, "Incense Set", active[0].Name)
}

func TestSaveRollbackLeavesMetadataClean(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	// Sink the creation log so the save transaction fails after the insert.
	require.NoError(t, db.Migrator().DropTable(&models.AuditLog{}))

	product := &models.Product{Name: "Brass Bell", Price: 7.75}
	require.Error(t, Save(db, product, user))
	require.Zero(t, product.ID)
	require.Empty(t, product.ExtID)
	require.Nil(t, product.CreatedByID)
	require.Nil(t, product.UpdatedByID)

	// A retry starts clean: the record persists and its external id is
	// reserved in the shared registry.
	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	require.NoError(t, Save(db, product, user))
	require.NotZero(t, product.ID)
	require.Len(t, product.ExtID, models.ExtIDLength)

	var count int64
	require.NoError(t, db.Model(&models.ExternalID{}).Where("value = ?", product.ExtID).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestSoftDeleteRollbackKeepsRecordActive(t *testing.T) {
	db := setupDB(t)
	user := createUser(t, db, "curator@example.com")

	product := &models.Product{Name: "Oil Lamp", Price: 5.40}
	require.NoError(t, Save(db, product, user))

	require.NoError(t, db.Migrator().DropTable(&models.AuditLog{}))
	require.Error(t, SoftDelete(db, product, user))
	require.Nil(t, product.DeletedAt)

	require.NoError(t, db.AutoMigrate(&models.AuditLog{}))
	var stored models.Product
	require.NoError(t, db.First(&stored, "id = ?", product.ID).Error)
	require.False(t, stored.IsDeleted())

	require.NoError(t, SoftDelete(db, product, user))
	require.True(t, IsDeleted(product))
}
