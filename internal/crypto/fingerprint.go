package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a short stable identifier of a secret, safe to log
// or show in status output.
func Fingerprint(secret string) string {
	if secret == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:6])
}
