package session

// MenuItem is one entry of the console's navigation. Route is the section
// key commands hang off of.
type MenuItem struct {
	Title string
	Route string
}

var (
	baseItems = []MenuItem{
		{Title: "Dashboard", Route: "dashboard"},
		{Title: "Courses", Route: "courses"},
		{Title: "Assessments", Route: "assessments"},
		{Title: "Notifications", Route: "notifications"},
	}
	instructorItems = []MenuItem{
		{Title: "My Courses", Route: "my-courses"},
		{Title: "Question Bank", Route: "question-bank"},
		{Title: "Gradebook", Route: "gradebook"},
	}
	adminItems = []MenuItem{
		{Title: "Members", Route: "members"},
		{Title: "Platform Settings", Route: "settings"},
	}
)

// Menu derives the navigation from the session claims: base entries first,
// then instructor entries, then admin entries, always in that order. It is
// computed fresh on each render, never cached.
func Menu(c Claims) []MenuItem {
	items := make([]MenuItem, 0, len(baseItems)+len(instructorItems)+len(adminItems))
	items = append(items, baseItems...)
	if c.IsInstructor {
		items = append(items, instructorItems...)
	}
	if c.IsAdmin {
		items = append(items, adminItems...)
	}
	return items
}
