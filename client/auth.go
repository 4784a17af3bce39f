package client

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/core"
	"github.com/shuleapp/console/core/member"
	"github.com/shuleapp/console/core/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the backend and persists the issued session.
func (c *Client) Login(ctx context.Context, email, password string) (session.Session, error) {
	body := loginRequest{Email: core.CleanString(email, true /* lower */), Password: password}

	var sess session.Session
	if err := c.doAnon(ctx, http.MethodPost, "/auth/login", body, &sess); err != nil {
		return session.Session{}, errors.Wrap(err, "logging in")
	}
	if err := c.tokens.SetSession(sess); err != nil {
		return session.Session{}, errors.Wrap(err, "storing session")
	}
	return sess, nil
}

// Logout drops the stored session. The backend keeps no server-side session
// to invalidate.
func (c *Client) Logout() error {
	return errors.Wrap(c.tokens.SetSession(session.Session{}), "clearing session")
}

// Me fetches the member behind the current session.
func (c *Client) Me(ctx context.Context) (member.Member, error) {
	var raw map[string]interface{}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &raw); err != nil {
		return member.Member{}, errors.Wrap(err, "fetching current member")
	}
	m, err := member.ParseMember(raw)
	return m, errors.Wrap(err, "parsing current member")
}

// Claims parses the stored access token for display and menu derivation.
func (c *Client) Claims() (session.Claims, error) {
	sess := c.tokens.Session()
	if sess.IsZero() {
		return session.Claims{}, session.ErrNoSession
	}
	return session.ParseClaims(sess.AccessToken)
}
