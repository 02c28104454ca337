package middleware

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/util"
	"github.com/RoyceAzure/rj/api"
	er "github.com/RoyceAzure/rj/util/rj_error"
)

// AdminMiddleware 後台路由限admin
// 必須掛在AuthMiddleware之後
func AdminMiddleware(userService service.IUserService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload := util.GetTokenPayloadFromContext(r.Context())
			if payload == nil {
				api.ErrorJSON(w, int(er.UnauthenticatedCode), er.New(er.UnauthenticatedCode, "unauthenticated"), er.ErrStrMap[er.UnauthenticatedCode])
				return
			}

			user, err := userService.GetUserByID(r.Context(), payload.UserId)
			if err != nil || !user.IsAdmin {
				api.ErrorJSON(w, int(er.UnauthorizedCode), er.New(er.UnauthorizedCode, "admin only"), er.ErrStrMap[er.UnauthorizedCode])
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
