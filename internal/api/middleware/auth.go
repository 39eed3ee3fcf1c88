package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/okellojun/HackLab/internal/common"
	"github.com/okellojun/HackLab/internal/common/security"
)

type contextKey string

const principalCtxKey contextKey = "principal"

// Outcome is the result of checking a request's bearer token.
type Outcome int

const (
	Authenticated Outcome = iota
	Unauthenticated
	Forbidden
)

type AuthResult struct {
	Outcome   Outcome
	Principal security.Principal
}

// Authenticate classifies a raw bearer token. An absent token is
// Unauthenticated; any verification failure is Forbidden.
func Authenticate(tokens *security.TokenService, token string) AuthResult {
	p, err := tokens.VerifyToken(token)
	switch {
	case err == nil:
		return AuthResult{Outcome: Authenticated, Principal: p}
	case errors.Is(err, security.ErrTokenMissing):
		return AuthResult{Outcome: Unauthenticated}
	default:
		return AuthResult{Outcome: Forbidden}
	}
}

// Authenticator reads "Authorization: Bearer T" and rejects the request with
// 401 or 403 unless the token verifies. The principal is stored on the context.
func Authenticator(tokens *security.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := Authenticate(tokens, jwtauth.TokenFromHeader(r))
			switch res.Outcome {
			case Unauthenticated:
				common.RespondWithError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
				return
			case Forbidden:
				common.RespondWithError(w, http.StatusForbidden, http.StatusText(http.StatusForbidden))
				return
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), res.Principal)))
		})
	}
}

func WithPrincipal(ctx context.Context, p security.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, p)
}

// PrincipalFromContext returns the principal set by Authenticator.
func PrincipalFromContext(ctx context.Context) (security.Principal, bool) {
	p, ok := ctx.Value(principalCtxKey).(security.Principal)
	return p, ok
}
