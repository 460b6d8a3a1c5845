package persistence

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/osse101/CaseBox_Go/internal/domain"
)

// Digest returns the hex SHA-256 of text.
func Digest(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Frame appends the digest line to text: text + "\n" + digest.
func Frame(text string) string {
	return text + "\n" + Digest(text)
}

// Unframe splits a framed file into its payload text and verifies the
// trailing digest. Trailing newlines after the digest are tolerated.
func Unframe(content string) (string, error) {
	content = strings.TrimRight(content, "\r\n")
	idx := strings.LastIndex(content, "\n")
	if idx < 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrIntegrity, ErrContextMissingDigest)
	}

	text, stored := content[:idx], strings.TrimSpace(content[idx+1:])
	if !strings.EqualFold(stored, Digest(text)) {
		return "", fmt.Errorf("%w: %s", domain.ErrIntegrity, ErrContextDigest)
	}
	return text, nil
}
