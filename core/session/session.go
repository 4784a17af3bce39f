package session

import (
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

var (
	ErrNoSession    = errors.New("not logged in")
	errMalformedJWT = errors.New("malformed access token")
)

// Session is the token pair issued by the backend. The access token is read
// before each outgoing call; the refresh token backs the retry-once-on-401
// path.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (s Session) IsZero() bool { return s.AccessToken == "" }

// Claims are the authorization claims transmitted via the access token.
// They are parsed without signature verification: the console only derives
// display state from them, the backend stays the authority on every call.
type Claims struct {
	jwt.StandardClaims
	Email        string   `json:"email,omitempty"`
	Name         string   `json:"name,omitempty"`
	Roles        []string `json:"roles,omitempty"`
	IsStudent    bool     `json:"is_student,omitempty"`
	IsInstructor bool     `json:"is_instructor,omitempty"`
	IsAdmin      bool     `json:"is_admin,omitempty"`
}

// ParseClaims extracts the claims from an access token.
func ParseClaims(token string) (Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return Claims{}, errors.Wrap(errMalformedJWT, err.Error())
	}
	normalizeClaims(claims)
	return *claims, nil
}

// normalizeClaims reconciles the boolean portal flags with the roles list;
// either may be absent depending on the backend's version.
func normalizeClaims(c *Claims) {
	for _, role := range c.Roles {
		switch strings.ToLower(strings.TrimSpace(role)) {
		case "admin":
			c.IsAdmin = true
		case "instructor", "teacher":
			c.IsInstructor = true
		case "student":
			c.IsStudent = true
		}
	}
	if c.IsAdmin && len(c.Roles) == 0 {
		c.Roles = append(c.Roles, "admin")
	}
}

func (c Claims) Expired() bool {
	return c.ExpiresAt != 0 && time.Now().After(time.Unix(c.ExpiresAt, 0))
}

// HasRole does a case-insensitive membership test on the roles claim.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}
