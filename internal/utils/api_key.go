package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"

	"github.com/yukikurage/todo-api/internal/constants"
)

// ErrMissingAPIKey is returned when the X-Api-Key header is absent or blank.
var ErrMissingAPIKey = errors.New("missing api key")

// GenerateAPIKey returns a random alphanumeric key of constants.APIKeyLength characters.
func GenerateAPIKey() (string, error) {
	alphabetSize := big.NewInt(int64(len(constants.APIKeyAlphabet)))

	var sb strings.Builder
	sb.Grow(constants.APIKeyLength)
	for i := 0; i < constants.APIKeyLength; i++ {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		sb.WriteByte(constants.APIKeyAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

// HashAPIKey returns the lowercase hex SHA-256 digest of key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// APIKeyFromHeader extracts the API key from the request headers.
func APIKeyFromHeader(h http.Header) (string, error) {
	key := strings.TrimSpace(h.Get(constants.HeaderAPIKey))
	if key == "" {
		return "", ErrMissingAPIKey
	}
	return key, nil
}
