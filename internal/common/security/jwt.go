package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenTTL is fixed; callers cannot ask for a different lifetime.
const TokenTTL = time.Hour

var (
	ErrTokenMissing = errors.New("token not found")
	ErrTokenInvalid = errors.New("token is invalid or expired")
)

// Principal is what a token asserts about its bearer.
type Principal struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type TokenService struct {
	auth *jwtauth.JWTAuth
	now  func() time.Time
}

// NewTokenService signs with HS256. now may be nil, in which case time.Now is
// used for both issuance and expiry checks.
func NewTokenService(secret []byte, now func() time.Time) *TokenService {
	if now == nil {
		now = time.Now
	}
	return &TokenService{
		auth: jwtauth.New("HS256", secret, nil, jwt.WithClock(jwt.ClockFunc(now))),
		now:  now,
	}
}

func (s *TokenService) GenerateToken(p Principal) (string, error) {
	issued := s.now()
	claims := map[string]interface{}{
		"id":       p.ID,
		"username": p.Username,
		"role":     p.Role,
		"iat":      issued.Unix(),
		"exp":      issued.Add(TokenTTL).Unix(),
	}
	_, tokenString, err := s.auth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return tokenString, nil
}

// VerifyToken checks signature and expiry. An empty string yields
// ErrTokenMissing; every other rejection wraps ErrTokenInvalid.
func (s *TokenService) VerifyToken(tokenString string) (Principal, error) {
	if tokenString == "" {
		return Principal{}, ErrTokenMissing
	}
	token, err := jwtauth.VerifyToken(s.auth, tokenString)
	if err != nil {
		return Principal{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	return PrincipalFromClaims(token.PrivateClaims())
}

// PrincipalFromClaims extracts the custom claims written by GenerateToken.
func PrincipalFromClaims(claims map[string]interface{}) (Principal, error) {
	var p Principal
	var ok bool
	if p.ID, ok = claims["id"].(string); !ok || p.ID == "" {
		return Principal{}, fmt.Errorf("%w: id claim is missing or not a string", ErrTokenInvalid)
	}
	if p.Username, ok = claims["username"].(string); !ok {
		return Principal{}, fmt.Errorf("%w: username claim is missing or not a string", ErrTokenInvalid)
	}
	if p.Role, ok = claims["role"].(string); !ok {
		return Principal{}, fmt.Errorf("%w: role claim is missing or not a string", ErrTokenInvalid)
	}
	return p, nil
}
