package middleware

import "strings"

// Frontend destinations the access gate redirects browsers to.
const (
	LoginRedirect     = "/login"
	DashboardRedirect = "/dashboard"
	AdminRedirect     = "/admin"
)

// IsPublicPath classifies a route: public paths are reachable without a
// session, everything else under /v1 requires one.
func IsPublicPath(path string) bool {
	switch path {
	case "/v1/health", "/v1/auth/login", "/v1/auth/signup", "/v1/auth/callback":
		return true
	}
	return strings.HasPrefix(path, "/v1/auth/oauth/") || strings.HasPrefix(path, "/v1/swagger")
}

// WantsHTML reports whether the client is a browser navigation rather than
// an API call; the gate redirects the former and returns JSON to the latter.
func WantsHTML(acceptHeader string) bool {
	return strings.Contains(acceptHeader, "text/html")
}

// RedirectPath decides where the gate sends a browser request: protected
// paths without a session go to the login page; a live session hitting the
// login endpoint goes to its home page. Empty means no redirect.
func RedirectPath(path string, authenticated, isAdmin bool) string {
	if !authenticated {
		if IsPublicPath(path) {
			return ""
		}
		return LoginRedirect
	}
	if path == "/v1/auth/login" {
		if isAdmin {
			return AdminRedirect
		}
		return DashboardRedirect
	}
	return ""
}
