package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/socialsphere/app/internal/token"
)

type contextKey string

const ClaimsKey contextKey = "session_claims"

// CookieName is the cookie carrying the signed session token.
const CookieName = "token"

// Session gates protected routes on a verifiable session token. A missing
// or unverifiable cookie redirects to the login page; the wrapped handler
// never runs. On success the verified claims become the trusted identity
// for the rest of the request.
func Session(tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				log.Printf("session token rejected: %v", err)
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaims extracts the verified session claims from the request context.
// Only valid inside handlers wrapped by Session.
func GetClaims(ctx context.Context) *token.Claims {
	return ctx.Value(ClaimsKey).(*token.Claims)
}
