package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"staffdesk/internal/domain/service"

	"github.com/pkg/errors"
)

const resetTokenBytes = 32

type resetTokenIssuer struct{}

// NewResetTokenIssuer creates the recovery-token generator. Tokens are
// 256 bits from crypto/rand; only their SHA-256 digest is ever persisted.
func NewResetTokenIssuer() service.ResetTokenIssuer {
	return &resetTokenIssuer{}
}

func (i *resetTokenIssuer) Generate() (string, string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", errors.Wrap(err, "failed to generate reset token")
	}

	raw := base64.RawURLEncoding.EncodeToString(buf)

	return raw, i.Hash(raw), nil
}

func (i *resetTokenIssuer) Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}
