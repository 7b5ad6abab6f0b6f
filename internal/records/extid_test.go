package records

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/example/heritage/internal/models"
)

func TestRandomExtIDComposition(t *testing.T) {
	for i := 0; i < 100; i++ {
		id, err := randomExtID(models.ExtIDLength)
		require.NoError(t, err)
		require.Len(t, id, models.ExtIDLength)
		for _, r := range id {
			require.True(t, strings.ContainsRune(extIDAlphabet, r), "unexpected rune %q in %q", r, id)
		}
	}
}

func TestGenerateExtIDDoesNotReserve(t *testing.T) {
	db := setupDB(t)

	id, err := GenerateExtID(db, models.ExtIDLength)
	require.NoError(t, err)
	require.Len(t, id, models.ExtIDLength)

	var count int64
	require.NoError(t, db.Model(&models.ExternalID{}).Where("value = ?", id).Count(&count).Error)
	require.Zero(t, count, "generation must not reserve the id itself")
}

func TestGenerateExtIDCustomLength(t *testing.T) {
	db := setupDB(t)

	id, err := GenerateExtID(db, 6)
	require.NoError(t, err)
	require.Len(t, id, 6)
}

func TestGenerateExtIDExhaustsBoundedRetries(t *testing.T) {
	db := setupDB(t)

	// Reserve the whole one-character namespace; every candidate collides.
	for _, r := range extIDAlphabet {
		require.NoError(t, db.Create(&models.ExternalID{Value: string(r), RecordType: "product"}).Error)
	}

	_, err := GenerateExtID(db, 1)
	require.ErrorIs(t, err, ErrGenerationExhausted)
}
