package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"patient-sync-service/internal/pkg/constvars"
	"strings"

	"github.com/google/uuid"
)

// NewFhirResourceID returns a fresh id as 32 lowercase hex characters without dashes.
func NewFhirResourceID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// ChecksumSHA256 fingerprints an uploaded payload.
func ChecksumSHA256(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
