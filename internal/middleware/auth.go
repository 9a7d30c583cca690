package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"NZWalks-API/internal/auth"
)

const claimsKey = "auth.claims"

// TokenParser Bearer トークンの検証
type TokenParser interface {
	Parse(token string) (*auth.Claims, error)
}

// Authorizer ロールによるアクセス制御。parser が nil の場合は認可を行わない
type Authorizer struct {
	parser TokenParser
}

// NewAuthorizer 認可ミドルウェアを作成。認証無効時は parser に nil を渡す
func NewAuthorizer(parser TokenParser) *Authorizer {
	return &Authorizer{parser: parser}
}

// RequireRole Bearer トークンを検証し、role を持たないリクエストを拒否する
func (a *Authorizer) RequireRole(role string) gin.HandlerFunc {
	if a == nil || a.parser == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := a.parser.Parse(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				abortUnauthorized(c, "token expired")
			} else {
				abortUnauthorized(c, "invalid token")
			}
			return
		}

		if !claims.HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "role " + role + " is required",
			})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims 認可済みリクエストのクレーム。認可を経ていなければ nil
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", `Bearer realm="nzwalks-api"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": message,
	})
}
