package middleware

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/google/uuid"
)

// CartSessionMiddleware 每個請求保證有購物車session id
// 沒有cookie就發一個新的  登入與否用同一顆購物車
func CartSessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string

		if cookie, err := r.Cookie(constants.CartSessionCookie); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     constants.CartSessionCookie,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(constants.CartTTL.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), constants.CartSessionKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
