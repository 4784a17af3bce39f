// Package testutil provides the fake platform backend the client and
// console tests run against: an echo app behind httptest that records every
// request it serves, so tests can assert on exactly which calls were made.
package testutil

import (
	"bytes"
	"io/ioutil"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"

	"github.com/shuleapp/console/core"
	"github.com/shuleapp/console/core/session"
)

const jwtTestSecret = "console-tests"

type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

type FakeAPI struct {
	t   *testing.T
	app *echo.Echo
	srv *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

func NewFakeAPI(t *testing.T) *FakeAPI {
	f := &FakeAPI{
		t:   t,
		app: echo.New(),
	}
	f.app.Pre(f.record)
	f.srv = httptest.NewServer(f.app)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *FakeAPI) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()
		var body []byte
		if req.Body != nil {
			body, _ = ioutil.ReadAll(req.Body)
			req.Body = ioutil.NopCloser(bytes.NewReader(body))
		}
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Body:   body,
		})
		f.mu.Unlock()
		return next(ctx)
	}
}

func (f *FakeAPI) URL() string { return f.srv.URL }

// Handle registers a canned JSON response for method+path (echo route syntax).
func (f *FakeAPI) Handle(method, path string, status int, body interface{}) {
	f.HandleFunc(method, path, func(ctx echo.Context) error {
		if body == nil {
			return ctx.NoContent(status)
		}
		return ctx.JSON(status, body)
	})
}

// HandleFunc registers a custom handler for method+path.
func (f *FakeAPI) HandleFunc(method, path string, h echo.HandlerFunc) {
	f.app.Add(method, path, h)
}

func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	reqs := make([]RecordedRequest, len(f.requests))
	copy(reqs, f.requests)
	return reqs
}

// Count reports how many recorded requests match method and path prefix.
func (f *FakeAPI) Count(method, pathPrefix string) int {
	var n int
	for _, req := range f.Requests() {
		if req.Method == method && strings.HasPrefix(req.Path, pathPrefix) {
			n++
		}
	}
	return n
}

func (f *FakeAPI) ResetRequests() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = nil
}

// Config points the client config at the fake backend.
func (f *FakeAPI) Config() *core.Config {
	conf := &core.Config{}
	*conf = *core.Conf
	conf.API.BaseURL = f.srv.URL
	conf.API.Timeout = 5 * time.Second
	return conf
}

// MemStore is an in-memory client.TokenStore.
type MemStore struct {
	mu   sync.Mutex
	sess session.Session
}

func NewMemStore(sess ...session.Session) *MemStore {
	store := new(MemStore)
	if len(sess) > 0 {
		store.sess = sess[0]
	}
	return store
}

func (s *MemStore) Session() session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess
}

func (s *MemStore) SetSession(sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = sess
	return nil
}

// Token signs a JWT carrying the given claims. The client never verifies
// signatures, but a structurally real token keeps the parse path honest.
func Token(t *testing.T, claims session.Claims) string {
	if claims.ExpiresAt == 0 {
		claims.ExpiresAt = time.Now().Add(time.Hour).Unix()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	ss, err := token.SignedString([]byte(jwtTestSecret))
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}
	return ss
}

// AdminSession builds a ready-to-use session for an admin member.
func AdminSession(t *testing.T) session.Session {
	claims := session.Claims{
		StandardClaims: jwt.StandardClaims{Subject: "usr-admin"},
		Email:          "admin@test.cd",
		Name:           "Admin",
		Roles:          []string{"admin", "instructor"},
		IsAdmin:        true,
		IsInstructor:   true,
	}
	return session.Session{
		AccessToken:  Token(t, claims),
		RefreshToken: "refresh-" + claims.Subject,
	}
}
