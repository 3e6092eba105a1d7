package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go-pulse-backend/config"
	"go-pulse-backend/internal/delivery/http/middleware"
	"go-pulse-backend/internal/delivery/http/response"
	"go-pulse-backend/internal/domain"
	"go-pulse-backend/pkg/apperror"
	"go-pulse-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const authCookieName = "auth_token"

type AuthHandler struct {
	config *config.Config
	client *http.Client
}

func NewAuthHandler(rg *gin.RouterGroup, paramsConfig *config.Config, loginLimiter gin.HandlerFunc) {
	handler := &AuthHandler{
		config: paramsConfig,
		client: &http.Client{Timeout: 10 * time.Second},
	}

	auth := rg.Group("/auth")
	{
		// Public (AccessGate lets these through unauthenticated)
		auth.POST("/login", loginLimiter, handler.Login)
		auth.POST("/signup", loginLimiter, handler.Signup)
		auth.GET("/oauth/:provider", handler.OAuthURL)
		auth.POST("/callback", handler.Callback)

		// Protected
		auth.POST("/logout", handler.Logout)
		auth.GET("/me", handler.Me)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name"`
}

type CallbackRequest struct {
	Code         string `json:"code" binding:"required"`
	CodeVerifier string `json:"code_verifier"`
}

// gotrueSession is the subset of the GoTrue token response we use.
type gotrueSession struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	User         struct {
		ID           string                 `json:"id"`
		Email        string                 `json:"email"`
		UserMetadata map[string]interface{} `json:"user_metadata"`
	} `json:"user"`
}

// proxyGoTrue forwards a JSON request to the Supabase auth API, carrying the
// client IP and User-Agent so Supabase's own abuse protection keys correctly.
func (h *AuthHandler) proxyGoTrue(c *gin.Context, method, path string, body interface{}, bearer string) (*http.Response, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), method, h.config.SupabaseUrl+"/auth/v1"+path, &buf)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", h.config.SupabaseKey)
	req.Header.Set("X-Forwarded-For", c.ClientIP())
	req.Header.Set("User-Agent", c.Request.UserAgent())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	return h.client.Do(req)
}

// gotrueErrorMessage extracts a human-readable message from a GoTrue error body.
func gotrueErrorMessage(resp *http.Response, fallback string) string {
	var errResp map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)

	if m, ok := errResp["msg"].(string); ok && m != "" {
		return m
	}
	if m, ok := errResp["error_description"].(string); ok && m != "" {
		return m
	}
	return fallback
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *gotrueSession) {
	maxAge := session.ExpiresIn
	if maxAge <= 0 {
		maxAge = 3600
	}
	secure := gin.Mode() == gin.ReleaseMode
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, session.AccessToken, maxAge, "/", "", secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	secure := gin.Mode() == gin.ReleaseMode
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(authCookieName, "", -1, "/", "", secure, true)
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password via Supabase
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resp, err := h.proxyGoTrue(c, http.MethodPost, "/token?grant_type=password", gin.H{
		"email":    req.Email,
		"password": req.Password,
	}, "")
	if err != nil {
		logger.Log.Error("supabase login request failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Login service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg := gotrueErrorMessage(resp, "Invalid login credentials")
		if msg == "Invalid login credentials" {
			msg = "Wrong email or password"
		}
		c.Error(apperror.Unauthorized(msg))
		return
	}

	var session gotrueSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse login response", err))
		return
	}

	h.setSessionCookie(c, &session)

	// Admin emails land on the admin dashboard, everyone else on theirs.
	redirect := middleware.DashboardRedirect
	if h.config.IsAdminEmail(session.User.Email) {
		redirect = middleware.AdminRedirect
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token":    session.AccessToken,
		"user":     session.User,
		"redirect": redirect,
	})
}

// Signup godoc
// @Summary      User Registration
// @Description  Register a new intern account via Supabase
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      SignupRequest  true  "Registration Details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	body := gin.H{
		"email":    req.Email,
		"password": req.Password,
		"options": gin.H{
			"emailRedirectTo": h.config.FrontendURL + "/auth/callback",
		},
	}
	if req.FullName != "" {
		body["data"] = gin.H{"full_name": req.FullName}
	}

	resp, err := h.proxyGoTrue(c, http.MethodPost, "/signup", body, "")
	if err != nil {
		logger.Log.Error("supabase signup request failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Registration service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.Error(apperror.BadRequest(gotrueErrorMessage(resp, "Registration failed")))
		return
	}

	var session gotrueSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse response", err))
		return
	}

	msg := "Registration successful. Please check your email to confirm."
	var data interface{}
	if session.AccessToken != "" {
		// Auto-confirm enabled; treat it as a live session
		h.setSessionCookie(c, &session)
		msg = "Registration successful"
		data = gin.H{
			"token": session.AccessToken,
			"user":  session.User,
		}
	}

	response.Success(c, http.StatusCreated, msg, data)
}

// OAuthURL godoc
// @Summary      OAuth Authorize URL
// @Description  Returns the Supabase authorize URL for the given provider
// @Tags         auth
// @Produce      json
// @Param        provider  path      string  true  "OAuth provider (e.g. google)"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /auth/oauth/{provider} [get]
func (h *AuthHandler) OAuthURL(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.Error(apperror.BadRequest("Missing provider"))
		return
	}

	q := url.Values{}
	q.Set("provider", provider)
	q.Set("redirect_to", h.config.FrontendURL+"/auth/callback")

	response.Success(c, http.StatusOK, "Authorize URL", gin.H{
		"url": fmt.Sprintf("%s/auth/v1/authorize?%s", h.config.SupabaseUrl, q.Encode()),
	})
}

// Callback godoc
// @Summary      OAuth Callback
// @Description  Exchanges an auth code for a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        callback  body      CallbackRequest  true  "Auth code from the provider redirect"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Router       /auth/callback [post]
func (h *AuthHandler) Callback(c *gin.Context) {
	var req CallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Missing auth code"))
		return
	}

	body := gin.H{"auth_code": req.Code}
	if req.CodeVerifier != "" {
		body["code_verifier"] = req.CodeVerifier
	}

	resp, err := h.proxyGoTrue(c, http.MethodPost, "/token?grant_type=pkce", body, "")
	if err != nil {
		logger.Log.Error("supabase code exchange failed", "error", err)
		c.Error(apperror.New(http.StatusInternalServerError, "Login service unavailable", err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		c.Error(apperror.Unauthorized(gotrueErrorMessage(resp, "Could not complete sign-in")))
		return
	}

	var session gotrueSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to parse session response", err))
		return
	}

	h.setSessionCookie(c, &session)

	redirect := middleware.DashboardRedirect
	if h.config.IsAdminEmail(session.User.Email) {
		redirect = middleware.AdminRedirect
	}

	response.Success(c, http.StatusOK, "Signed in", gin.H{
		"token":    session.AccessToken,
		"user":     session.User,
		"redirect": redirect,
	})
}

// Logout godoc
// @Summary      Logout
// @Description  Revokes the Supabase session and clears the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(authCookieName)
	if token == "" {
		if header := c.GetHeader("Authorization"); len(header) > 7 {
			token = header[7:]
		}
	}

	if token != "" {
		resp, err := h.proxyGoTrue(c, http.MethodPost, "/logout", nil, token)
		if err != nil {
			// Cookie still gets cleared; revocation is best effort.
			logger.Log.Warn("supabase logout failed", "error", err)
		} else {
			resp.Body.Close()
		}
	}

	h.clearSessionCookie(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me godoc
// @Summary      Current Identity
// @Description  Returns the authenticated user from the verified token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	email := c.GetString(string(domain.KeyUserEmail))
	fullName := c.GetString(string(domain.KeyUserName))

	response.Success(c, http.StatusOK, "User details", gin.H{
		"id":        userID,
		"email":     email,
		"full_name": fullName,
		"is_admin":  h.config.IsAdminEmail(email),
	})
}
