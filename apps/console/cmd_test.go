package main

import (
	"bytes"
	"io/ioutil"
	"log"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core"
	"github.com/shuleapp/console/core/question"
	"github.com/shuleapp/console/core/session"
	emailsvc "github.com/shuleapp/console/services/email"
	testutil "github.com/shuleapp/console/tests"
)

func newTestCLI(t *testing.T, sess ...session.Session) (*commandLine, *testutil.FakeAPI, *bytes.Buffer) {
	f := testutil.NewFakeAPI(t)
	store := testutil.NewMemStore(sess...)
	logger := core.NewStdLogger(log.New(ioutil.Discard, "", 0))
	out := new(bytes.Buffer)
	cli := &commandLine{
		api:    client.New(f.Config(), store, logger),
		email:  emailsvc.NewConsoleService(),
		logger: logger,
		out:    out,
	}
	return cli, f, out
}

func mockPassword(t *testing.T, pwd string) {
	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func TestCLI_usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: []string{"console"}},
		{name: "unknown command", args: []string{"console", "frobnicate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _, out := newTestCLI(t)
			err := cli.run(tt.args)
			assert.Equal(t, errHelp, err)
			assert.Contains(t, out.String(), "Usage:")
		})
	}
}

func TestCLI_login(t *testing.T) {
	cli, f, out := newTestCLI(t)
	f.Handle(http.MethodPost, "/auth/login", http.StatusOK, testutil.AdminSession(t))
	mockPassword(t, "s3cretpass")

	err := cli.run([]string{"console", "login", "-email", "admin@test.cd"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Logged in as admin@test.cd")
	assert.Equal(t, 1, f.Count(http.MethodPost, "/auth/login"))
}

func TestCLI_menu(t *testing.T) {
	t.Run("not logged in", func(t *testing.T) {
		cli, _, out := newTestCLI(t)
		err := cli.run([]string{"console", "menu"})
		assert.Equal(t, errHelp, err)
		assert.Contains(t, out.String(), "not logged in")
	})

	t.Run("admin sees admin and instructor entries", func(t *testing.T) {
		cli, _, out := newTestCLI(t, testutil.AdminSession(t))
		require.NoError(t, cli.run([]string{"console", "menu"}))
		assert.Contains(t, out.String(), "Members")
		assert.Contains(t, out.String(), "Question Bank")
		assert.Contains(t, out.String(), "Dashboard")
	})
}

func TestCLI_memberAdd_refetchesList(t *testing.T) {
	cli, f, _ := newTestCLI(t, testutil.AdminSession(t))
	f.Handle(http.MethodPost, "/admin/users", http.StatusCreated, map[string]interface{}{
		"id": "usr-9", "email": "new@test.cd", "full_name": "New", "role": "student",
	})
	f.Handle(http.MethodGet, "/admin/users", http.StatusOK, []map[string]interface{}{
		{"id": "usr-9", "email": "new@test.cd", "full_name": "New", "role": "student"},
	})
	mockPassword(t, "s3cretpass")

	err := cli.run([]string{"console", "member-add", "-email", "new@test.cd", "-name", "New", "-role", "student"})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count(http.MethodPost, "/admin/users"))
	assert.Equal(t, 1, f.Count(http.MethodGet, "/admin/users"), "a successful write re-fetches the list exactly once")
}

func TestCLI_memberSetRole_aboveOwnRole(t *testing.T) {
	claims := session.Claims{Roles: []string{"instructor"}}
	sess := session.Session{AccessToken: testutil.Token(t, claims), RefreshToken: "r"}

	cli, f, out := newTestCLI(t, sess)
	err := cli.run([]string{"console", "member-set-role", "-id", "usr-1", "-role", "admin"})
	assert.Equal(t, errHelp, err)
	assert.Contains(t, out.String(), "not enough rights")
	assert.Empty(t, f.Requests(), "a refused grant must not reach the backend")
}

func TestCLI_memberDelete_self(t *testing.T) {
	cli, f, out := newTestCLI(t, testutil.AdminSession(t))
	err := cli.run([]string{"console", "member-delete", "-id", "usr-admin"})
	assert.Equal(t, errHelp, err)
	assert.Contains(t, out.String(), "cannot delete your own account")
	assert.Empty(t, f.Requests())
}

func TestCLI_questionAdd_refetchesList(t *testing.T) {
	cli, f, _ := newTestCLI(t, testutil.AdminSession(t))
	f.Handle(http.MethodPost, "/assessments/:aid/questions", http.StatusCreated, question.Question{ID: "q-1"})
	f.Handle(http.MethodGet, "/assessments/:aid/questions", http.StatusOK, []question.Question{})

	err := cli.run([]string{
		"console", "question-add",
		"-assessment", "a-1",
		"-text", "Capital of DRC?",
		"-options", "Kinshasa|Lubumbashi",
		"-answer", "A",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count(http.MethodPost, "/assessments/a-1/questions"))
	assert.Equal(t, 1, f.Count(http.MethodGet, "/assessments/a-1/questions"))
}

func TestCLI_questionAdd_invalidStaysLocal(t *testing.T) {
	cli, f, out := newTestCLI(t, testutil.AdminSession(t))

	// an answer referencing an empty option never reaches the backend
	err := cli.run([]string{
		"console", "question-add",
		"-assessment", "a-1",
		"-text", "Capital of DRC?",
		"-options", "Kinshasa|Lubumbashi",
		"-answer", "D",
	})
	assert.Equal(t, errHelp, err)
	assert.Contains(t, out.String(), "invalid input:")
	assert.Empty(t, f.Requests())
}

func TestCLI_questionEdit_previewsWithoutApplying(t *testing.T) {
	cli, f, out := newTestCLI(t, testutil.AdminSession(t))
	f.Handle(http.MethodGet, "/assessments/:aid/questions/:id", http.StatusOK, question.Question{
		ID:            "q-1",
		AssessmentID:  "a-1",
		Text:          "Capital of DRC?",
		Type:          question.TypeMultipleChoice,
		Options:       []string{"Kinshasa", "Lubumbashi"},
		CorrectAnswer: "A",
		Points:        1,
		Difficulty:    3,
	})

	err := cli.run([]string{
		"console", "question-edit",
		"-assessment", "a-1",
		"-id", "q-1",
		"-text", "Capital city of the DRC?",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "re-run with -yes to apply")
	assert.Contains(t, out.String(), "-Capital of DRC?")
	assert.Contains(t, out.String(), "+Capital city of the DRC?")
	assert.Equal(t, 0, f.Count(http.MethodPut, "/assessments"), "preview must not submit the edit")
}

func TestCLI_announce_sendsEmailCopy(t *testing.T) {
	cli, f, _ := newTestCLI(t, testutil.AdminSession(t))
	f.Handle(http.MethodPost, "/notifications/announce", http.StatusCreated, map[string]string{"id": "n-1"})
	f.Handle(http.MethodGet, "/notifications", http.StatusOK, []map[string]string{})

	emailsvc.ClearSentMessages()
	err := cli.run([]string{
		"console", "announce",
		"-title", "Maintenance window",
		"-body", "The platform is down Sunday 02:00 UTC.",
		"-audience", "all",
		"-email",
		"-email-to", "everyone@test.cd",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.Count(http.MethodPost, "/notifications/announce"))
	assert.Equal(t, 1, f.Count(http.MethodGet, "/notifications"))
}
