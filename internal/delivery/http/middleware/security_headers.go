package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeadersMiddleware adds essential security headers to all responses.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Forces browsers to only use HTTPS for this domain
		c.Header("Strict-Transport-Security", "max-age=63072000; includeSubDomains; preload")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Legacy XSS protection (for older browsers)
		c.Header("X-XSS-Protection", "1; mode=block")

		// Prevent clickjacking by disallowing framing
		c.Header("X-Frame-Options", "DENY")

		// Send full URL to same origin, only origin to cross-origin
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		// Restrict browser features access
		c.Header("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

		// Baseline CSP. For an API this primarily affects error pages,
		// plus the attachment previews served off Supabase storage.
		c.Header("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data: https://*.supabase.co; "+
				"font-src 'self'; "+
				"connect-src 'self' https://*.supabase.co; "+
				"frame-ancestors 'none'; "+
				"base-uri 'self'; "+
				"form-action 'self'")

		// Authenticated responses carry per-user planner data; never cache them.
		if c.GetHeader("Authorization") != "" || hasAuthCookie(c) {
			c.Header("Cache-Control", "no-store, no-cache, must-revalidate, private")
			c.Header("Pragma", "no-cache")
			c.Header("Expires", "0")
		}

		c.Next()
	}
}

func hasAuthCookie(c *gin.Context) bool {
	cookie, err := c.Cookie("auth_token")
	return err == nil && cookie != ""
}
