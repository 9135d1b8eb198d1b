package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/carkenya/internal/domain/apperr"
	"github.com/mikiasgoitom/carkenya/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/carkenya/internal/usecase/contract"
)

// Context keys set by the auth middleware.
const (
	ContextCallerKey = "caller"
	ContextTokenKey  = "token"
	ContextUserIDKey = "userID"
)

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthMiddleWare resolves the bearer token, when present, into the caller.
// Requests without a valid session continue as anonymous; authorization is
// decided per operation.
func AuthMiddleWare(auth usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			c.Next()
			return
		}
		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": apperr.MessageOf(err),
				"code":  string(apperr.KindOf(err)),
			})
			return
		}
		if user != nil {
			c.Set(ContextCallerKey, user)
			c.Set(ContextUserIDKey, user.ID)
			c.Set(ContextTokenKey, token)
		}
		c.Next()
	}
}

// RequireAuth rejects requests that carry no valid session.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CallerFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "not authenticated",
				"code":  string(apperr.KindUnauthenticated),
			})
			return
		}
		c.Next()
	}
}

// CallerFrom returns the resolved caller or nil for anonymous requests.
func CallerFrom(c *gin.Context) *entity.User {
	v, ok := c.Get(ContextCallerKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}

// TokenFrom returns the bearer token of an authenticated request.
func TokenFrom(c *gin.Context) string {
	return c.GetString(ContextTokenKey)
}
