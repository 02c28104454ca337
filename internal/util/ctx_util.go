package util

import (
	"context"
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/constants"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/google/uuid"
)

// GetTokenPayloadFromContext 從請求上下文取token payload
// 未登入回傳nil
func GetTokenPayloadFromContext(ctx context.Context) *token.Payload[uuid.UUID] {
	var tokenPayload *token.Payload[uuid.UUID]

	if v := ctx.Value(constants.AuthorizationPayloadKey); v != nil {
		tokenPayload = v.(*token.Payload[uuid.UUID])
	}

	return tokenPayload
}

// GetCartSessionFromContext 從請求上下文取購物車session id
// middleware保證每個請求都有  取不到回傳空字串
func GetCartSessionFromContext(ctx context.Context) string {
	if v := ctx.Value(constants.CartSessionKey); v != nil {
		return v.(string)
	}
	return ""
}

// RequestOrigin 從當前請求組出scheme://host
// 供success/cancel轉址URL使用  proxy後面看X-Forwarded-Proto
func RequestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host
}
