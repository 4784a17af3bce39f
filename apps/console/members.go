package main

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"syscall"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core"
	"github.com/shuleapp/console/core/member"
)

func parseActiveFlag(val string) (*bool, error) {
	if val == "" {
		return nil, nil
	}
	active, err := strconv.ParseBool(val)
	if err != nil {
		return nil, errors.Wrap(err, "parsing -active")
	}
	return &active, nil
}

func (cli *commandLine) members(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("members", flag.ExitOnError)
	search := cmd.String("search", "", "Match on name or email.")
	role := cmd.String("role", "", "Filter by role: admin, instructor or student.")
	activeStr := cmd.String("active", "", "Filter by active state: true or false.")
	ordering := cmd.String("ordering", "", `Sort spec, e.g. "-created_at,email".`)
	if err := cmd.Parse(args); err != nil {
		return err
	}
	active, err := parseActiveFlag(*activeStr)
	if err != nil {
		return err
	}

	filter := member.QueryFilter{Search: *search, Role: *role, IsActive: active}
	return cli.renderMembers(ctx, filter, member.ParseOrdering(*ordering))
}

// renderMembers is the list view: the backend applies filter and ordering,
// the console just renders what came back. Stale responses are dropped.
func (cli *commandLine) renderMembers(ctx context.Context, filter member.QueryFilter, ords []member.Ordering) error {
	members, err := cli.api.ListMembers(ctx, filter, ords)
	if err != nil {
		if errors.Cause(err) == client.ErrStale {
			return nil
		}
		return cli.fail(err)
	}

	w := cli.table()
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE\tLAST LOGIN")
	for _, m := range members {
		lastLogin := "never"
		if !m.LastLogin.IsZero() {
			lastLogin = m.LastLogin.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\t%s\n", m.ID, m.Name, m.Email, m.Role, m.IsActive, lastLogin)
	}
	return w.Flush()
}

func (cli *commandLine) memberShow(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("member-show", flag.ExitOnError)
	id := cmd.String("id", "", "The member's id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	m, err := cli.api.GetMember(ctx, *id)
	if err != nil {
		return cli.fail(err)
	}
	w := cli.table()
	fmt.Fprintf(w, "ID\t%s\n", m.ID)
	fmt.Fprintf(w, "Name\t%s\n", m.Name)
	fmt.Fprintf(w, "Email\t%s\n", m.Email)
	fmt.Fprintf(w, "Role\t%s\n", m.Role)
	fmt.Fprintf(w, "Active\t%t\n", m.IsActive)
	fmt.Fprintf(w, "Courses\t%d\n", m.CourseCount)
	fmt.Fprintf(w, "Assessments\t%d\n", m.AssessmentCount)
	return w.Flush()
}

func (cli *commandLine) memberAdd(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("member-add", flag.ExitOnError)
	email := cmd.String("email", "", "The new member's email.")
	name := cmd.String("name", "", "The new member's full name.")
	role := cmd.String("role", member.RoleStudent, "One of: admin, instructor, student.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" || *name == "" {
		cmd.Usage()
		return errHelp
	}
	if err := cli.checkRoleGrant(*role); err != nil {
		return cli.fail(err)
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}

	nm := member.NewMember{Email: *email, Name: *name, Role: *role, Password: string(pwd)}
	if _, err := cli.api.CreateMember(ctx, nm); err != nil {
		return cli.fail(err)
	}
	return cli.renderMembers(ctx, member.QueryFilter{}, nil)
}

func (cli *commandLine) memberSetRole(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("member-set-role", flag.ExitOnError)
	id := cmd.String("id", "", "The member's id.")
	role := cmd.String("role", "", "One of: admin, instructor, student.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" || *role == "" {
		cmd.Usage()
		return errHelp
	}
	if err := cli.checkRoleGrant(*role); err != nil {
		return cli.fail(err)
	}

	if err := cli.api.SetMemberRole(ctx, *id, *role); err != nil {
		return cli.fail(err)
	}
	return cli.renderMembers(ctx, member.QueryFilter{}, nil)
}

func (cli *commandLine) memberSetActive(ctx context.Context, args []string, active bool) error {
	name := "member-deactivate"
	if active {
		name = "member-activate"
	}
	cmd := flag.NewFlagSet(name, flag.ExitOnError)
	id := cmd.String("id", "", "The member's id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.api.SetMemberActive(ctx, *id, active); err != nil {
		return cli.fail(err)
	}
	return cli.renderMembers(ctx, member.QueryFilter{}, nil)
}

func (cli *commandLine) memberDelete(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("member-delete", flag.ExitOnError)
	id := cmd.String("id", "", "The member's id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	// the logged in member cannot delete themselves
	claims, err := cli.api.Claims()
	if err != nil {
		return err
	}
	if claims.Subject == *id {
		return cli.fail(core.NewValidationError(errors.New("you cannot delete your own account")))
	}

	if err := cli.api.DeleteMember(ctx, *id); err != nil {
		return cli.fail(err)
	}
	return cli.renderMembers(ctx, member.QueryFilter{}, nil)
}

// checkRoleGrant refuses to hand out a role above the session's own.
func (cli *commandLine) checkRoleGrant(role string) error {
	claims, err := cli.api.Claims()
	if err != nil {
		return err
	}
	if member.RolePriority(role) > member.MaxRolePriority(claims.Roles) {
		return core.NewValidationError(nil, core.FieldError{Field: "role", Error: "not enough rights to set this role"})
	}
	return nil
}
