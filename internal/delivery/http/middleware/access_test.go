package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicPath(t *testing.T) {
	public := []string{
		"/v1/health",
		"/v1/auth/login",
		"/v1/auth/signup",
		"/v1/auth/callback",
		"/v1/auth/oauth/google",
		"/v1/swagger/index.html",
	}
	for _, p := range public {
		assert.True(t, IsPublicPath(p), "expected %q to be public", p)
	}

	protected := []string{
		"/v1/dashboard/stats",
		"/v1/planner",
		"/v1/planner/goals",
		"/v1/roadmap",
		"/v1/admin/interns",
		"/v1/profile",
		"/v1/quiz/topic",
		"/v1/auth/me",
		"/v1/auth/logout",
	}
	for _, p := range protected {
		assert.False(t, IsPublicPath(p), "expected %q to be protected", p)
	}
}

func TestWantsHTML(t *testing.T) {
	assert.True(t, WantsHTML("text/html,application/xhtml+xml"))
	assert.False(t, WantsHTML("application/json"))
	assert.False(t, WantsHTML(""))
	assert.False(t, WantsHTML("*/*"))
}

func TestRedirectPath(t *testing.T) {
	t.Run("unauthenticated browser on a protected path goes to login", func(t *testing.T) {
		assert.Equal(t, LoginRedirect, RedirectPath("/v1/dashboard/stats", false, false))
		assert.Equal(t, LoginRedirect, RedirectPath("/v1/admin/interns", false, false))
	})

	t.Run("unauthenticated on a public path stays put", func(t *testing.T) {
		assert.Equal(t, "", RedirectPath("/v1/auth/login", false, false))
		assert.Equal(t, "", RedirectPath("/v1/health", false, false))
	})

	t.Run("authenticated hitting login is sent home", func(t *testing.T) {
		assert.Equal(t, DashboardRedirect, RedirectPath("/v1/auth/login", true, false))
		assert.Equal(t, AdminRedirect, RedirectPath("/v1/auth/login", true, true))
	})

	t.Run("authenticated elsewhere is not redirected", func(t *testing.T) {
		assert.Equal(t, "", RedirectPath("/v1/dashboard/stats", true, false))
		assert.Equal(t, "", RedirectPath("/v1/admin/interns", true, true))
	})
}
