package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/training-calendar-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/training-calendar-api/internal/pkg/jwthelper"
)

const (
	// ClaimsKey holds the *jwthelper.CustomClaims of an authenticated request.
	ClaimsKey = "claims"
	// TokenKey holds the raw bearer token of an authenticated request.
	TokenKey = "token"

	bearerPrefix = "Bearer "
)

var (
	ErrMissingToken    = errors.New("missing bearer token")
	ErrRevokedToken    = errors.New("token has been revoked")
	errMalformedBearer = errors.New("authorization header must be a bearer token")
)

type RevocationChecker interface {
	Contains(token string) bool
}

type Authenticator struct {
	key     []byte
	revoked RevocationChecker
}

func NewAuthenticator(key string, revoked RevocationChecker) *Authenticator {
	return &Authenticator{
		key:     []byte(key),
		revoked: revoked,
	}
}

// BearerToken extracts the token from the Authorization header.
func BearerToken(ctx *gin.Context) (string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", ErrMissingToken
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", errMalformedBearer
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}

// VerifyJWT rejects requests without a valid, non-revoked token. The revocation
// check runs before the signature is verified.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := BearerToken(ctx)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(err))
			return
		}

		if a.revoked.Contains(token) {
			response.RenderErr(ctx, response.ErrUnauthorized(ErrRevokedToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.key, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Set(TokenKey, token)
		ctx.Next()
	}
}

// Claims returns the claims stored by VerifyJWT.
func Claims(ctx *gin.Context) (*jwthelper.CustomClaims, bool) {
	v, ok := ctx.Get(ClaimsKey)
	if !ok {
		return nil, false
	}

	claims, ok := v.(*jwthelper.CustomClaims)

	return claims, ok
}
