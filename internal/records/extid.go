package records

import (
	"crypto/rand"
	"math/big"

	"gorm.io/gorm"

	"github.com/example/heritage/internal/models"
)

const extIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// maxExtIDAttempts bounds the retry loop so namespace pressure cannot turn
// id assignment into unbounded recursion.
const maxExtIDAttempts = 16

// randomExtID draws a candidate of the given length uniformly from lowercase
// letters and digits.
func randomExtID(length int) (string, error) {
	buf := make([]byte, length)
	max := big.NewInt(int64(len(extIDAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		buf[i] = extIDAlphabet[n.Int64()]
	}
	return string(buf), nil
}

// GenerateExtID returns an external id unused by any record type. Candidates
// are checked against the shared registry; a collision triggers a fresh draw.
// The registry's primary key still backstops concurrent allocations.
func GenerateExtID(db *gorm.DB, length int) (string, error) {
	for attempt := 0; attempt < maxExtIDAttempts; attempt++ {
		candidate, err := randomExtID(length)
		if err != nil {
			return "", err
		}

		var count int64
		if err := db.Model(&models.ExternalID{}).
			Where("value = ?", candidate).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}

	return "", ErrGenerationExhausted
}
