package handlers_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/voxnote/internal/auth"
	"github.com/nfrund/voxnote/internal/content"
	"github.com/nfrund/voxnote/internal/handlers"
	"github.com/nfrund/voxnote/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// fakeExchanger stands in for the backend and records every code it sees.
type fakeExchanger struct {
	mu       sync.Mutex
	loggedIn bool
	codes    []string
}

func (f *fakeExchanger) Exchange(_ context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes = append(f.codes, code)
	return f.loggedIn, nil
}

func (f *fakeExchanger) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.codes...)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))
	return e
}

func setupAuthTest(t *testing.T) (*echo.Echo, *fakeExchanger) {
	t.Helper()
	e := newEcho()

	ex := &fakeExchanger{loggedIn: true}
	handoff := auth.NewHandoff(ex, auth.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	flow := auth.NewGoogleFlow("client-id", "http://localhost:8080/auth/google/callback", time.Minute)

	h := handlers.NewAuthHandler(flow, flow, handoff)
	e.GET("/auth/google", h.GoogleLogin)
	e.GET("/auth/google/callback", h.GoogleCallback)
	return e, ex
}

// startLogin hits the login route and returns the issued state and cookies.
func startLogin(t *testing.T, e *echo.Echo) (string, []*http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	require.Equal(t, "accounts.google.com", loc.Host)

	state := loc.Query().Get("state")
	require.NotEmpty(t, state)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "the login state must be stored in a cookie")
	return state, cookies
}

func callback(e *echo.Echo, query url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?"+query.Encode(), nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGoogleCallback_RelaysCode(t *testing.T) {
	e, ex := setupAuthTest(t)
	state, cookies := startLogin(t, e)

	rec := callback(e, url.Values{"state": {state}, "code": {"4/0Abc-def"}}, cookies)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"4/0Abc-def"}, ex.calls())
}

func TestGoogleCallback_EmptyCodeIsForwarded(t *testing.T) {
	e, ex := setupAuthTest(t)
	state, cookies := startLogin(t, e)

	callback(e, url.Values{"state": {state}, "code": {""}}, cookies)

	assert.Equal(t, []string{""}, ex.calls())
}

func TestGoogleCallback_ReplayNeverReachesBackend(t *testing.T) {
	e, ex := setupAuthTest(t)
	state, cookies := startLogin(t, e)
	q := url.Values{"state": {state}, "code": {"once"}}

	callback(e, q, cookies)
	rec := callback(e, q, cookies)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"once"}, ex.calls())
}

func TestGoogleCallback_RejectedBeforeExchange(t *testing.T) {
	tests := map[string]func(state string, cookies []*http.Cookie) (url.Values, []*http.Cookie){
		"state mismatch": func(_ string, cookies []*http.Cookie) (url.Values, []*http.Cookie) {
			return url.Values{"state": {"forged"}, "code": {"c"}}, cookies
		},
		"no session cookie": func(state string, _ []*http.Cookie) (url.Values, []*http.Cookie) {
			return url.Values{"state": {state}, "code": {"c"}}, nil
		},
		"missing state": func(_ string, cookies []*http.Cookie) (url.Values, []*http.Cookie) {
			return url.Values{"code": {"c"}}, cookies
		},
		"provider error": func(state string, cookies []*http.Cookie) (url.Values, []*http.Cookie) {
			return url.Values{"state": {state}, "error": {"access_denied"}}, cookies
		},
	}

	for name, build := range tests {
		t.Run(name, func(t *testing.T) {
			e, ex := setupAuthTest(t)
			state, cookies := startLogin(t, e)

			q, sent := build(state, cookies)
			rec := callback(e, q, sent)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
			assert.Empty(t, ex.calls())
		})
	}
}

// inlineFlow completes synchronously, like a test double of the provider.
type inlineFlow struct{ code string }

func (f inlineFlow) StartLogin(ctx context.Context, complete auth.Completion) (auth.LoginStart, error) {
	complete(ctx, f.code)
	return auth.LoginStart{}, nil
}

func TestGoogleLogin_InlineFlow(t *testing.T) {
	e := newEcho()
	ex := &fakeExchanger{loggedIn: true}
	var successes int
	handoff := auth.NewHandoff(ex,
		auth.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		auth.WithSuccess(func(context.Context) { successes++ }),
	)
	h := handlers.NewAuthHandler(inlineFlow{code: "inline-code"}, nil, handoff)
	e.GET("/auth/google", h.GoogleLogin)

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"inline-code"}, ex.calls())
	assert.Equal(t, 1, successes)
}

func TestLandingHandler(t *testing.T) {
	landing, err := content.Default()
	require.NoError(t, err)

	e := newEcho()
	h := handlers.NewLandingHandler(content.Fixed(landing), rendering.NewUniversalRenderer())
	e.GET("/", h.Index)
	e.GET("/ui/nav", h.NavFragment)
	e.GET("/health", handlers.Health)

	t.Run("index starts closed in sign-up mode", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?menu=open&mode=login", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
		body := rec.Body.String()
		assert.Contains(t, body, "<!doctype html>")
		assert.Contains(t, body, "Sign up with Google")
		assert.Contains(t, body, `aria-expanded="false"`)
	})

	t.Run("nav fragment follows the query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ui/nav?menu=open&mode=login", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.NotContains(t, body, "<!doctype html>")
		assert.Contains(t, body, `aria-expanded="true"`)
		assert.Contains(t, body, "Log in with Google")
		assert.Contains(t, body, `hx-swap-oob="true"`)
	})

	t.Run("health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})
}

func TestLandingHandler_NilContent(t *testing.T) {
	e := newEcho()
	h := handlers.NewLandingHandler(nil, rendering.NewUniversalRenderer())
	e.GET("/", h.Index)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `id="features"`)
}

// swapSource lets a test change the content between requests.
type swapSource struct {
	mu      sync.Mutex
	landing *content.Landing
}

func (s *swapSource) Current() *content.Landing {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.landing
}

func (s *swapSource) set(l *content.Landing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.landing = l
}

func TestLandingHandler_ReadsContentPerRequest(t *testing.T) {
	src := &swapSource{landing: &content.Landing{Features: []content.Feature{{Title: "Old feature"}}}}

	e := newEcho()
	h := handlers.NewLandingHandler(src, rendering.NewUniversalRenderer())
	e.GET("/", h.Index)

	get := func() string {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		return rec.Body.String()
	}

	assert.Contains(t, get(), "Old feature")

	src.set(&content.Landing{Features: []content.Feature{{Title: "New feature"}}})
	body := get()
	assert.Contains(t, body, "New feature")
	assert.NotContains(t, body, "Old feature")
}
