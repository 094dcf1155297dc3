package auth

import (
	"strings"
	"time"

	"staffdesk/config"
	"staffdesk/internal/domain/entity"
	"staffdesk/internal/domain/service"
	"staffdesk/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

type jwtService struct {
	secret    []byte
	issuer    string
	audience  string
	accessTTL time.Duration
}

// NewJWTService creates an HMAC-SHA256 token service. Issuer and audience are
// pinned into every issued token and enforced on validation.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if strings.TrimSpace(cfg.JWT.Secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	if strings.TrimSpace(cfg.JWT.Issuer) == "" {
		return nil, errors.New("jwt issuer is required")
	}
	if strings.TrimSpace(cfg.JWT.Audience) == "" {
		return nil, errors.New("jwt audience is required")
	}

	return &jwtService{
		secret:    []byte(cfg.JWT.Secret),
		issuer:    cfg.JWT.Issuer,
		audience:  cfg.JWT.Audience,
		accessTTL: cfg.JWT.AccessTokenTTL,
	}, nil
}

func (s *jwtService) GenerateToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := service.ClaimsFromUser(user)
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Subject:   user.ID.String(),
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.secret, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, mapTokenError(err)
	}
	if !token.Valid {
		return nil, service.ErrTokenSignatureInvalid
	}

	return claims, nil
}

func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// mapTokenError translates jwt/v5 errors (which arrive joined) onto the
// domain's typed validation failures. Order matters: expiry is reported
// before the generic invalid-claims cases.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return service.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return service.ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return service.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return service.ErrTokenIssuerMismatch
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return service.ErrTokenAudienceMismatch
	default:
		return errors.Wrap(err, "failed to validate session token")
	}
}
