package session

import (
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func signedToken(t *testing.T, claims Claims) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	ss, err := token.SignedString([]byte("whatever"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return ss
}

func TestParseClaims(t *testing.T) {
	token := signedToken(t, Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   "usr-1",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
		Email: "awe@test.cd",
		Roles: []string{"instructor"},
	})

	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims(): %v", err)
	}
	if claims.Subject != "usr-1" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "usr-1")
	}
	if claims.Email != "awe@test.cd" {
		t.Errorf("Email = %q, want %q", claims.Email, "awe@test.cd")
	}
	if !claims.IsInstructor {
		t.Error("IsInstructor = false, want true (derived from roles)")
	}
	if claims.IsAdmin {
		t.Error("IsAdmin = true, want false")
	}
	if claims.Expired() {
		t.Error("Expired() = true for a fresh token")
	}
}

func TestParseClaims_legacyTeacherRole(t *testing.T) {
	token := signedToken(t, Claims{Roles: []string{"Teacher"}})
	claims, err := ParseClaims(token)
	if err != nil {
		t.Fatalf("ParseClaims(): %v", err)
	}
	if !claims.IsInstructor {
		t.Error("IsInstructor = false, want true for legacy teacher role")
	}
}

func TestParseClaims_malformed(t *testing.T) {
	if _, err := ParseClaims("not-a-jwt"); err == nil {
		t.Error("ParseClaims() expected error for malformed token")
	}
}

func TestClaims_HasRole(t *testing.T) {
	c := Claims{Roles: []string{"Admin", " instructor "}}
	if !c.HasRole("admin") {
		t.Error("HasRole(admin) = false")
	}
	if !c.HasRole("instructor") {
		t.Error("HasRole(instructor) = false")
	}
	if c.HasRole("student") {
		t.Error("HasRole(student) = true")
	}
}

func TestMenu(t *testing.T) {
	routes := func(items []MenuItem) []string {
		rs := make([]string, 0, len(items))
		for _, item := range items {
			rs = append(rs, item.Route)
		}
		return rs
	}

	base := []string{"dashboard", "courses", "assessments", "notifications"}
	instructor := append(append([]string{}, base...), "my-courses", "question-bank", "gradebook")
	admin := append(append([]string{}, base...), "members", "settings")
	both := append(append([]string{}, instructor...), "members", "settings")

	tests := []struct {
		name   string
		claims Claims
		want   []string
	}{
		{name: "student", claims: Claims{IsStudent: true}, want: base},
		{name: "instructor", claims: Claims{IsInstructor: true}, want: instructor},
		{name: "admin", claims: Claims{IsAdmin: true}, want: admin},
		{name: "admin and instructor", claims: Claims{IsAdmin: true, IsInstructor: true}, want: both},
		{name: "no claims", claims: Claims{}, want: base},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := routes(Menu(tt.claims)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Menu() routes = %v, want %v", got, tt.want)
			}
		})
	}
}
