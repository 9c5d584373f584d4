package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/RadRun/RR-Backend/internal/apperr"
	"github.com/RadRun/RR-Backend/internal/principal"
	"github.com/RadRun/RR-Backend/internal/session"
	"github.com/RadRun/RR-Backend/internal/utils"
)

// fakeAuthenticator implements Authenticator without a database.
type fakeAuthenticator struct {
	signUpPrincipal *principal.Principal
	signUpSession   *session.Session
	signUpErr       error

	loginSession *session.Session
	loginErr     error

	logoutSession *session.Session
	logoutErr     error
	logoutToken   string
}

func (f *fakeAuthenticator) SignUp(ctx context.Context, params SignUpParams) (*principal.Principal, *session.Session, error) {
	if f.signUpErr != nil {
		return nil, nil, f.signUpErr
	}
	return f.signUpPrincipal, f.signUpSession, nil
}

func (f *fakeAuthenticator) Login(ctx context.Context, email, password string) (*session.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginSession, nil
}

func (f *fakeAuthenticator) Logout(ctx context.Context, token string) (*session.Session, error) {
	f.logoutToken = token
	if f.logoutErr != nil {
		return nil, f.logoutErr
	}
	return f.logoutSession, nil
}

func (f *fakeAuthenticator) SessionTTL() time.Duration { return 7 * 24 * time.Hour }

func testSession(token string) *session.Session {
	return &session.Session{
		ID:        token,
		UserID:    1,
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
	}
}

func sessionCookieFrom(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	return nil
}

func TestSignUpHandler_Success(t *testing.T) {
	token := uuid.NewString()
	fake := &fakeAuthenticator{
		signUpPrincipal: &principal.Principal{
			ID:           1,
			FirstName:    "A",
			LastName:     "B",
			Email:        "a@b.com",
			PasswordHash: "$argon2id$secret-hash",
		},
		signUpSession: testSession(token),
	}
	h := &Handler{Auth: fake}

	body := `{"first_name":"A","last_name":"B","email":"a@b.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SignUpHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}

	var res struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		Session struct {
			SessionID string `json:"session_id"`
		} `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.User.Email != "a@b.com" {
		t.Errorf("expected email echoed back, got %q", res.User.Email)
	}
	if res.Session.SessionID != token {
		t.Errorf("expected session id %q, got %q", token, res.Session.SessionID)
	}

	// The hash must never reach the client.
	if strings.Contains(rec.Body.String(), "secret-hash") || strings.Contains(rec.Body.String(), "password") {
		t.Errorf("password material leaked: %s", rec.Body.String())
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie == nil {
		t.Fatal("expected session_id cookie to be set")
	}
	if cookie.Value != token {
		t.Errorf("expected cookie value %q, got %q", token, cookie.Value)
	}
	if !cookie.HttpOnly || cookie.Path != "/" {
		t.Errorf("expected HttpOnly cookie on /, got %+v", cookie)
	}
	if cookie.MaxAge != int((7 * 24 * time.Hour).Seconds()) {
		t.Errorf("expected max-age of 7 days, got %d", cookie.MaxAge)
	}
}

func TestSignUpHandler_DuplicateEmail(t *testing.T) {
	fake := &fakeAuthenticator{signUpErr: fmt.Errorf("email taken: %w", apperr.ErrConflict)}
	h := &Handler{Auth: fake}

	body := `{"first_name":"A","last_name":"B","email":"a@b.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SignUpHandler(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestSignUpHandler_BadBody(t *testing.T) {
	h := &Handler{Auth: &fakeAuthenticator{}}

	for name, body := range map[string]string{
		"malformed json":   "{not json",
		"missing email":    `{"password":"pw"}`,
		"missing password": `{"email":"a@b.com"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/auth/sign-up", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.SignUpHandler(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestLoginHandler_Success(t *testing.T) {
	token := uuid.NewString()
	fake := &fakeAuthenticator{loginSession: testSession(token)}
	h := &Handler{Auth: fake}

	body := `{"email":"a@b.com","password":"pw"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.LoginHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var res struct {
		SessionID string    `json:"session_id"`
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.SessionID != token {
		t.Errorf("expected session id %q, got %q", token, res.SessionID)
	}
	if res.ExpiresAt.IsZero() {
		t.Error("expected expires_at to be set")
	}

	if cookie := sessionCookieFrom(t, rec); cookie == nil || cookie.Value != token {
		t.Errorf("expected session cookie %q, got %+v", token, cookie)
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	fake := &fakeAuthenticator{loginErr: apperr.ErrUnauthorized}
	h := &Handler{Auth: fake}

	body := `{"email":"a@b.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.LoginHandler(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	// The body must not say whether the email or the password was wrong.
	if strings.Contains(strings.ToLower(rec.Body.String()), "email") ||
		strings.Contains(strings.ToLower(rec.Body.String()), "password") {
		t.Errorf("response reveals which check failed: %q", rec.Body.String())
	}
}

func TestLogoutHandler_Success(t *testing.T) {
	token := uuid.NewString()
	fake := &fakeAuthenticator{logoutSession: testSession(token)}
	h := &Handler{Auth: fake}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	rec := httptest.NewRecorder()
	h.LogoutHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if fake.logoutToken != token {
		t.Errorf("expected logout called with %q, got %q", token, fake.logoutToken)
	}

	var res struct {
		SessionID string `json:"session_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.SessionID != token {
		t.Errorf("expected session id %q, got %q", token, res.SessionID)
	}

	cookie := sessionCookieFrom(t, rec)
	if cookie == nil {
		t.Fatal("expected clearing cookie to be set")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Errorf("expected cleared cookie, got value=%q max-age=%d", cookie.Value, cookie.MaxAge)
	}
}

func TestLogoutHandler_MissingCookie(t *testing.T) {
	h := &Handler{Auth: &fakeAuthenticator{}}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()
	h.LogoutHandler(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLogoutHandler_UnknownToken(t *testing.T) {
	fake := &fakeAuthenticator{logoutErr: apperr.ErrNotFound}
	h := &Handler{Auth: fake}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: uuid.NewString()})
	rec := httptest.NewRecorder()
	h.LogoutHandler(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestMeHandler(t *testing.T) {
	h := &Handler{Auth: &fakeAuthenticator{}}

	p := &principal.Principal{ID: 7, FirstName: "A", Email: "a@b.com", PasswordHash: "secret-hash"}
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req = req.WithContext(utils.WithPrincipal(req.Context(), p))
	rec := httptest.NewRecorder()
	h.MeHandler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"email":"a@b.com"`) {
		t.Errorf("expected principal in body, got %q", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Errorf("hash leaked: %q", rec.Body.String())
	}
}

func TestMeHandler_NoPrincipalInContext(t *testing.T) {
	h := &Handler{Auth: &fakeAuthenticator{}}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	h.MeHandler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
