package handler

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dropspace/dropspace/internal/config"
	"github.com/dropspace/dropspace/internal/service"
	"golang.org/x/oauth2"
)

type AuthHandler struct {
	authService  *service.AuthService
	userService  *service.UserService
	oauthConfig  *oauth2.Config
	userInfoURL  string
	isProduction bool
}

func NewAuthHandler(authService *service.AuthService, userService *service.UserService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.AuthClientID,
			ClientSecret: cfg.AuthClientSecret,
			RedirectURL:  cfg.AppURL + "/auth/callback",
			Scopes:       []string{"openid", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthIssuerURL + "/oauth2/authorize",
				TokenURL: cfg.AuthIssuerURL + "/oauth2/token",
			},
		},
		userInfoURL:  cfg.AuthIssuerURL + "/oauth2/userinfo",
		isProduction: cfg.IsProduction(),
	}
}

// Login redirects to the hosted identity provider's consent screen.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// State token for CSRF protection
	state := generateOAuthState()

	http.SetCookie(w, &http.Cookie{
		Name:     "oauth_state",
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.isProduction,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600, // 10 minutes
	})

	url := h.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// Callback completes the code exchange and provisions the user on
// first login.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie("oauth_state")
	if err != nil || cookie.Value != state || state == "" {
		slog.Warn("oauth state validation failed", "error", err)
		http.Error(w, "Authentication failed. Please try again.", http.StatusUnauthorized)
		return
	}

	// Clear state cookie
	http.SetCookie(w, &http.Cookie{
		Name:   "oauth_state",
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("oauth callback missing code")
		http.Error(w, "Authentication failed. Please try again.", http.StatusUnauthorized)
		return
	}

	token, err := h.oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		slog.Error("oauth token exchange failed", "error", err)
		http.Error(w, "Authentication failed. Please try again.", http.StatusUnauthorized)
		return
	}

	client := h.oauthConfig.Client(context.Background(), token)
	resp, err := client.Get(h.userInfoURL)
	if err != nil {
		slog.Error("failed to get user info", "error", err)
		http.Error(w, "Authentication failed. Please try again.", http.StatusUnauthorized)
		return
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			slog.Error("failed to close response body", "error", closeErr)
		}
	}()

	var userInfo struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
	}
	err = json.NewDecoder(resp.Body).Decode(&userInfo)
	if err != nil || userInfo.Sub == "" {
		slog.Error("failed to decode user info", "error", err)
		http.Error(w, "Authentication failed. Please try again.", http.StatusUnauthorized)
		return
	}

	user, err := h.userService.Provision(userInfo.Sub, userInfo.Email)
	if err != nil {
		slog.Error("failed to provision user", "error", err, "subject", userInfo.Sub)
		http.Error(w, "Authentication failed. Please try again.", http.StatusUnauthorized)
		return
	}

	jwtToken, err := h.authService.GenerateJWT(user)
	if err != nil {
		slog.Error("failed to generate JWT", "error", err, "user_id", user.ID)
		http.Error(w, "Authentication failed. Please try again.", http.StatusUnauthorized)
		return
	}

	h.authService.SetJWTCookie(w, jwtToken, time.Now().Add(h.authService.Expiry()))
	http.Redirect(w, r, "/app/dashboard", http.StatusSeeOther)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func generateOAuthState() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
