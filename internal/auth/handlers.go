package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/RadRun/RR-Backend/internal/httpx"
	"github.com/RadRun/RR-Backend/internal/principal"
	"github.com/RadRun/RR-Backend/internal/session"
	"github.com/RadRun/RR-Backend/internal/utils"
)

// CookieName is the session cookie the whole app agrees on.
const CookieName = "session_id"

// Authenticator is what the handlers need from the Service; split out as an
// interface so handler tests can fake it without a database.
type Authenticator interface {
	SignUp(ctx context.Context, params SignUpParams) (*principal.Principal, *session.Session, error)
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(ctx context.Context, token string) (*session.Session, error)
	SessionTTL() time.Duration
}

type Handler struct {
	Auth         Authenticator
	CookieSecure bool
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type sessionResponse struct {
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type signUpResponse struct {
	User    *principal.Principal `json:"user"`
	Session sessionResponse      `json:"session"`
}

type logoutResponse struct {
	SessionID string `json:"session_id"`
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.CookieSecure,
	}
}

func (h *Handler) SignUpHandler(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	p, sess, err := h.Auth.SignUp(r.Context(), SignUpParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		httpx.Error(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(sess.ID, int(h.Auth.SessionTTL().Seconds())))
	httpx.JSON(w, http.StatusOK, signUpResponse{
		User:    p,
		Session: sessionResponse{SessionID: sess.ID, ExpiresAt: sess.ExpiresAt},
	})
}

func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpx.Decode(r, &req); err != nil {
		httpx.Error(w, err)
		return
	}

	sess, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httpx.Error(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(sess.ID, int(h.Auth.SessionTTL().Seconds())))
	httpx.JSON(w, http.StatusOK, sessionResponse{SessionID: sess.ID, ExpiresAt: sess.ExpiresAt})
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		http.Error(w, "Couldn't find cookie", http.StatusBadRequest)
		return
	}
	token, err := uuid.Parse(cookie.Value)
	if err != nil {
		http.Error(w, "Invalid session token", http.StatusBadRequest)
		return
	}

	sess, err := h.Auth.Logout(r.Context(), token.String())
	if err != nil {
		httpx.Error(w, err)
		return
	}

	// Expire the cookie client-side as well.
	http.SetCookie(w, h.sessionCookie("", -1))
	httpx.JSON(w, http.StatusOK, logoutResponse{SessionID: sess.ID})
}

func (h *Handler) MeHandler(w http.ResponseWriter, r *http.Request) {
	p, ok := utils.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "No authenticated principal in context", http.StatusInternalServerError)
		return
	}

	httpx.JSON(w, http.StatusOK, p)
}
