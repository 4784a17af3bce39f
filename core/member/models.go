package member

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shuleapp/console/core"
)

// Roles
const (
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"
	RoleStudent    = "student"
)

var (
	AllRoles = []string{RoleAdmin, RoleInstructor, RoleStudent}

	rolePriorities = map[string]int{
		RoleAdmin:      30,
		RoleInstructor: 20,
		RoleStudent:    10,
	}

	// errors
	ErrNotFound = errors.New("member not found")
)

func RolePriority(role string) int {
	return rolePriorities[role]
}

func MaxRolePriority(roles []string) int {
	var max int
	for _, role := range roles {
		if RolePriority(role) > max {
			max = RolePriority(role)
		}
	}
	return max
}

func ValidRole(role string) bool {
	_, ok := rolePriorities[role]
	return ok
}

// Member mirrors the backend's user resource. It is mutated only through the
// dedicated set-role / set-active endpoints, never a generic update.
type Member struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"full_name"`
	Role            string    `json:"role"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	LastLogin       time.Time `json:"last_login"`
	CourseCount     int       `json:"course_count"`
	AssessmentCount int       `json:"assessment_count"`
}

// NewMember contains information needed to register a new Member.
type NewMember struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin instructor student"`
	Password string `json:"password" validate:"required,min=8"`
}

func (nm *NewMember) Validate() error {
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Name = core.CleanString(nm.Name)
	return core.TranslateValidationErrors(core.Validate.Struct(nm))
}

// ParseMember normalizes a loosely shaped backend payload into a Member.
// Legacy deployments expose the role under several fields; this is the one
// place that probing happens, so the rest of the console sees a typed value.
func ParseMember(raw map[string]interface{}) (Member, error) {
	var m Member

	switch id := raw["id"].(type) {
	case string:
		m.ID = id
	case float64:
		m.ID = strconv.FormatInt(int64(id), 10)
	default:
		return Member{}, errors.New("member payload has no id")
	}

	m.Email, _ = raw["email"].(string)
	if m.Name, _ = raw["full_name"].(string); m.Name == "" {
		m.Name, _ = raw["name"].(string)
	}

	role, err := normalizeRole(raw)
	if err != nil {
		return Member{}, err
	}
	m.Role = role

	if active, ok := raw["is_active"].(bool); ok {
		m.IsActive = active
	} else {
		m.IsActive = true
	}

	m.CreatedAt = parseTime(raw["created_at"])
	m.LastLogin = parseTime(raw["last_login"])
	if n, ok := raw["course_count"].(float64); ok {
		m.CourseCount = int(n)
	}
	if n, ok := raw["assessment_count"].(float64); ok {
		m.AssessmentCount = int(n)
	}
	return m, nil
}

func normalizeRole(raw map[string]interface{}) (string, error) {
	if role, ok := raw["role"].(string); ok && role != "" {
		role = core.CleanString(role, true /* lower */)
		if !ValidRole(role) {
			return "", fmt.Errorf("unknown role %q", role)
		}
		return role, nil
	}
	if roles, ok := raw["roles"].([]interface{}); ok && len(roles) > 0 {
		if role, ok := roles[0].(string); ok {
			role = core.CleanString(role, true /* lower */)
			if !ValidRole(role) {
				return "", fmt.Errorf("unknown role %q", role)
			}
			return role, nil
		}
	}
	// legacy boolean flags, highest privilege first
	for _, probe := range []struct {
		field string
		role  string
	}{
		{field: "is_admin", role: RoleAdmin},
		{field: "is_staff", role: RoleAdmin},
		{field: "is_instructor", role: RoleInstructor},
	} {
		if flag, ok := raw[probe.field].(bool); ok && flag {
			return probe.role, nil
		}
	}
	return RoleStudent, nil
}

func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
	case float64:
		return time.Unix(int64(t), 0).UTC()
	}
	return time.Time{}
}

// QueryFilter narrows the member list. All fields are encoded as query
// params and applied by the backend; the console never filters locally.
type QueryFilter struct {
	Search   string
	Role     string
	IsActive *bool
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
	qf.Role = core.CleanString(qf.Role, true /* lower */)
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Search == "" && qf.Role == "" && qf.IsActive == nil
}

func (qf *QueryFilter) Values() url.Values {
	v := make(url.Values)
	if qf.Search != "" {
		v.Set("search", qf.Search)
	}
	if qf.Role != "" {
		v.Set("role", qf.Role)
	}
	if qf.IsActive != nil {
		v.Set("is_active", strconv.FormatBool(*qf.IsActive))
	}
	return v
}

// Ordering is the "field" / "-field" sort spec sent as the `ordering` param.
type Ordering struct {
	Field     string
	Ascending bool
}

func ParseOrdering(spec string) []Ordering {
	var ords []Ordering
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		ords = append(ords, Ordering{Field: field, Ascending: !descending})
	}
	return ords
}

func EncodeOrdering(ords []Ordering) string {
	specs := make([]string, 0, len(ords))
	for _, ord := range ords {
		if ord.Ascending {
			specs = append(specs, ord.Field)
		} else {
			specs = append(specs, "-"+ord.Field)
		}
	}
	return strings.Join(specs, ",")
}
