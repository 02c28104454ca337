package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/rj/api"
	"github.com/RoyceAzure/rj/api/token"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/google/uuid"
)

// AuthMiddleware 驗證ctx是否有token payload
// 未登入的請求在這裡擋下  不會進到資料層
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Value(constants.AuthorizationPayloadKey).(*token.Payload[uuid.UUID])
		if !ok {
			api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
			return
		}
		next.ServeHTTP(w, r)
	})
}
