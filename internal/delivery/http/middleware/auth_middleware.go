package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go-pulse-backend/config"
	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/auth"
	"go-pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AccessGate is the route-level access control: public paths pass through,
// protected paths require a valid Supabase session token (Authorization
// header or auth_token cookie). Browser requests are redirected to /login,
// API clients get a JSON 401.
func AccessGate(jwksProvider *auth.Provider, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsPublicPath(c.Request.URL.Path) {
			c.Next()
			return
		}

		tokenString := extractToken(c)
		if tokenString == "" {
			reject(c, "Authorization header or auth_token cookie required")
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			// Supabase signs with HS256 (legacy secret) or RS256 (JWKS).
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}
			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				return jwksProvider.KeyFunc(token)
			}
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})
		if err != nil || !token.Valid {
			logger.Log.Debug("token validation failed", "error", err)
			reject(c, "Invalid token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			reject(c, "Invalid claims")
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)
		fullName := metadataFullName(claims)

		// Usecases read identity from the request context, handlers from
		// the gin keys; set both.
		c.Set(string(domain.KeyUserID), sub)
		c.Set(string(domain.KeyUserEmail), email)
		c.Set(string(domain.KeyUserName), fullName)

		ctx := c.Request.Context()
		ctx = context.WithValue(ctx, domain.KeyUserID, sub)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
		ctx = context.WithValue(ctx, domain.KeyUserName, fullName)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin gates the admin aggregation routes on the injected email
// allow-list. Must run after AccessGate.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(string(domain.KeyUserEmail))
		if !cfg.IsAdminEmail(email) {
			response.Error(c, http.StatusForbidden, "Admin access required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie("auth_token"); err == nil {
		return cookie
	}
	return ""
}

func reject(c *gin.Context, message string) {
	if WantsHTML(c.GetHeader("Accept")) {
		c.Redirect(http.StatusFound, LoginRedirect)
		c.Abort()
		return
	}
	response.Error(c, http.StatusUnauthorized, message, nil)
	c.Abort()
}

func metadataFullName(claims jwt.MapClaims) string {
	meta, ok := claims["user_metadata"].(map[string]interface{})
	if !ok {
		return ""
	}
	name, _ := meta["full_name"].(string)
	return name
}
