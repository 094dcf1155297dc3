package service

import (
	"errors"
	"time"

	"staffdesk/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Validation failure modes of a session token. The token service maps the
// underlying JWT library errors onto these so the delivery layer can respond
// without importing the library.
var (
	// ErrTokenMalformed is returned when the token structure cannot be parsed.
	ErrTokenMalformed = errors.New("malformed session token")
	// ErrTokenSignatureInvalid is returned when the signature does not verify.
	ErrTokenSignatureInvalid = errors.New("session token signature invalid")
	// ErrTokenExpired is returned when the token is past its expiry instant.
	ErrTokenExpired = errors.New("session token has expired")
	// ErrTokenIssuerMismatch is returned when the issuer claim disagrees with configuration.
	ErrTokenIssuerMismatch = errors.New("session token issuer mismatch")
	// ErrTokenAudienceMismatch is returned when the audience claim disagrees with configuration.
	ErrTokenAudienceMismatch = errors.New("session token audience mismatch")
)

// Claims defines the assertions embedded in a session token: the stable
// subject id, the login name, and the role memberships at issuance time.
// Claims are immutable once embedded; role changes after issuance do not
// affect already-issued tokens.
type Claims struct {
	UserID   uuid.UUID `json:"uid"`
	UserName string    `json:"name"`
	Roles    []string  `json:"roles"`
	jwt.RegisteredClaims
}

// ClaimsFromUser builds the claim set for an account. Deterministic for a
// given account state: no randomness, no side effects. Time-bound registered
// claims are filled in by the token service at issuance.
func ClaimsFromUser(user *entity.User) *Claims {
	return &Claims{
		UserID:   user.ID,
		UserName: user.UserName,
		Roles:    user.Roles.ToStrings(),
	}
}

// TokenService defines the interface for issuing and validating session tokens.
// Tokens are stateless: validity is fully determined by signature and expiry at
// verification time, and no server-side session record exists.
type TokenService interface {
	// GenerateToken issues a signed, time-bounded session token carrying the
	// account's claims as of now.
	GenerateToken(user *entity.User) (string, error)

	// ValidateToken verifies signature, expiry, issuer and audience, and
	// returns the embedded claims unchanged on success.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenDuration returns the configured session token lifetime.
	AccessTokenDuration() time.Duration
}
