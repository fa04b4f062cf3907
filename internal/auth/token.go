package auth

import (
	"fmt"
	"time"

	apperrors "photostudio-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	tokenIssuer     = "photostudio-backend"
	defaultTokenTTL = 12 * time.Hour
)

// Verifier turns a bearer token into a caller
type Verifier interface {
	Verify(token string) (Caller, error)
}

// Issuer signs tokens for a caller
type Issuer interface {
	Issue(caller Caller) (string, error)
}

// Claims represents the identity token claims
type Claims struct {
	Role     CallerKind `json:"role" example:"studio"`
	StudioID string     `json:"studio_id" example:"7f9c24e5-1f1a-4c39-9a43-5d1f7d0e2b11"`
	MemberID string     `json:"member_id,omitempty" example:"b3c1f0a2-7d4e-4a55-8f3e-2c9d6e1a0b77"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service signing with secret
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for caller
func (s *TokenService) Issue(caller Caller) (string, error) {
	if err := caller.Validate(); err != nil {
		return "", err
	}

	subject := caller.StudioID.String()
	memberID := ""
	if caller.IsTeamMember() {
		subject = caller.MemberID.String()
		memberID = caller.MemberID.String()
	}

	now := time.Now()
	claims := &Claims{
		Role:     caller.Kind,
		StudioID: caller.StudioID.String(),
		MemberID: memberID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify validates the token signature and expiry and returns the caller it names
func (s *TokenService) Verify(tokenString string) (Caller, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Caller{}, apperrors.ErrInvalidToken
	}
	return claims.Caller()
}

// Caller converts verified claims into a caller
func (c *Claims) Caller() (Caller, error) {
	studioID, err := uuid.Parse(c.StudioID)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: studio_id: %v", apperrors.ErrInvalidToken, err)
	}

	var caller Caller
	switch c.Role {
	case KindStudio:
		caller = StudioCaller(studioID)
	case KindTeamMember:
		memberID, err := uuid.Parse(c.MemberID)
		if err != nil {
			return Caller{}, fmt.Errorf("%w: member_id: %v", apperrors.ErrInvalidToken, err)
		}
		caller = TeamMemberCaller(studioID, memberID)
	default:
		return Caller{}, fmt.Errorf("%w: unknown role %q", apperrors.ErrInvalidToken, c.Role)
	}

	if err := caller.Validate(); err != nil {
		return Caller{}, err
	}
	return caller, nil
}
