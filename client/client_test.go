package client_test

import (
	"context"
	"io/ioutil"
	"log"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core"
	"github.com/shuleapp/console/core/session"
	testutil "github.com/shuleapp/console/tests"
)

func newClient(t *testing.T, f *testutil.FakeAPI, sess ...session.Session) (*client.Client, *testutil.MemStore) {
	store := testutil.NewMemStore(sess...)
	logger := core.NewStdLogger(log.New(ioutil.Discard, "", 0))
	return client.New(f.Config(), store, logger), store
}

func TestClient_Login(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	issued := testutil.AdminSession(t)
	f.HandleFunc(http.MethodPost, "/auth/login", func(ctx echo.Context) error {
		var body map[string]string
		require.NoError(t, ctx.Bind(&body))
		assert.Equal(t, "admin@test.cd", body["email"]) // cleaned and lowered
		return ctx.JSON(http.StatusOK, issued)
	})

	api, store := newClient(t, f)
	sess, err := api.Login(context.Background(), "  Admin@Test.cd ", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, issued, sess)
	assert.Equal(t, issued, store.Session(), "session should be persisted")

	claims, err := api.Claims()
	require.NoError(t, err)
	assert.Equal(t, "admin@test.cd", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestClient_Claims_noSession(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	api, _ := newClient(t, f)

	_, err := api.Claims()
	assert.Equal(t, session.ErrNoSession, errors.Cause(err))
}

func TestClient_APIErrorDetail(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	f.Handle(http.MethodGet, "/auth/me", http.StatusForbidden, map[string]string{"detail": "account disabled"})

	api, _ := newClient(t, f, testutil.AdminSession(t))
	_, err := api.Me(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "account disabled", apiErr.Detail)
}

func TestClient_APIErrorGenericFallback(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	f.HandleFunc(http.MethodGet, "/auth/me", func(ctx echo.Context) error {
		return ctx.HTML(http.StatusBadGateway, "<html>upstream exploded</html>")
	})

	api, _ := newClient(t, f, testutil.AdminSession(t))
	_, err := api.Me(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "something went wrong, please try again", apiErr.Detail)
}

func TestClient_RefreshRetriesOnce(t *testing.T) {
	f := testutil.NewFakeAPI(t)

	var meCalls int
	f.HandleFunc(http.MethodGet, "/auth/me", func(ctx echo.Context) error {
		meCalls++
		if meCalls == 1 {
			return ctx.JSON(http.StatusUnauthorized, map[string]string{"detail": "token expired"})
		}
		return ctx.JSON(http.StatusOK, map[string]interface{}{"id": "usr-admin", "role": "admin"})
	})

	renewed := testutil.AdminSession(t)
	f.HandleFunc(http.MethodPost, "/auth/refresh", func(ctx echo.Context) error {
		var body map[string]string
		require.NoError(t, ctx.Bind(&body))
		assert.NotEmpty(t, body["refresh_token"])
		return ctx.JSON(http.StatusOK, renewed)
	})

	api, store := newClient(t, f, testutil.AdminSession(t))
	m, err := api.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "usr-admin", m.ID)

	assert.Equal(t, 2, f.Count(http.MethodGet, "/auth/me"), "original call should be resent exactly once")
	assert.Equal(t, 1, f.Count(http.MethodPost, "/auth/refresh"))
	assert.Equal(t, renewed, store.Session(), "renewed session should be persisted")
}

func TestClient_RefreshDoesNotLoop(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	f.Handle(http.MethodGet, "/auth/me", http.StatusUnauthorized, map[string]string{"detail": "nope"})
	f.Handle(http.MethodPost, "/auth/refresh", http.StatusOK, testutil.AdminSession(t))

	api, _ := newClient(t, f, testutil.AdminSession(t))
	_, err := api.Me(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, 2, f.Count(http.MethodGet, "/auth/me"), "a second 401 must not trigger another refresh")
	assert.Equal(t, 1, f.Count(http.MethodPost, "/auth/refresh"))
}

func TestClient_RefreshWithoutRefreshToken(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	f.Handle(http.MethodGet, "/auth/me", http.StatusUnauthorized, nil)

	sess := testutil.AdminSession(t)
	sess.RefreshToken = ""
	api, _ := newClient(t, f, sess)

	_, err := api.Me(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "session expired, please log in again", apiErr.Detail)
	assert.Equal(t, 0, f.Count(http.MethodPost, "/auth/refresh"))
}

func TestClient_Logout(t *testing.T) {
	f := testutil.NewFakeAPI(t)
	api, store := newClient(t, f, testutil.AdminSession(t))

	require.NoError(t, api.Logout())
	assert.True(t, store.Session().IsZero())
	assert.Empty(t, f.Requests(), "logout is local, no request should be issued")
}
