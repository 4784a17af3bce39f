package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	api    *client.Client
	email  core.EmailService
	logger core.Logger
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  login -email EMAIL                           - log in (password prompted)")
	fmt.Fprintln(cli.out, "  logout | whoami | menu")
	fmt.Fprintln(cli.out, "  members [-search S] [-role R] [-active true|false] [-ordering F]")
	fmt.Fprintln(cli.out, "  member-show | member-add | member-set-role | member-activate | member-deactivate | member-delete")
	fmt.Fprintln(cli.out, "  assessments [-subject ID] | assessment-show | assessment-create | assessment-update | assessment-delete | assessment-publish")
	fmt.Fprintln(cli.out, "  questions -assessment ID | question-add | question-edit | question-delete")
	fmt.Fprintln(cli.out, "  courses | course-create | course-update | course-delete")
	fmt.Fprintln(cli.out, "  lectures -course ID | lecture-add | lecture-edit | lecture-delete | lectures-reorder")
	fmt.Fprintln(cli.out, "  notifications [-unread] | notification-read -id ID | notifications-read-all | announce")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	ctx := context.Background()

	switch args[1] {
	case "login":
		return cli.login(ctx, args[2:])
	case "logout":
		return cli.logout()
	case "whoami":
		return cli.whoami(ctx)
	case "menu":
		return cli.menu()

	case "members":
		return cli.members(ctx, args[2:])
	case "member-show":
		return cli.memberShow(ctx, args[2:])
	case "member-add":
		return cli.memberAdd(ctx, args[2:])
	case "member-set-role":
		return cli.memberSetRole(ctx, args[2:])
	case "member-activate":
		return cli.memberSetActive(ctx, args[2:], true)
	case "member-deactivate":
		return cli.memberSetActive(ctx, args[2:], false)
	case "member-delete":
		return cli.memberDelete(ctx, args[2:])

	case "assessments":
		return cli.assessments(ctx, args[2:])
	case "assessment-show":
		return cli.assessmentShow(ctx, args[2:])
	case "assessment-create":
		return cli.assessmentCreate(ctx, args[2:])
	case "assessment-update":
		return cli.assessmentUpdate(ctx, args[2:])
	case "assessment-delete":
		return cli.assessmentDelete(ctx, args[2:])
	case "assessment-publish":
		return cli.assessmentPublish(ctx, args[2:])

	case "questions":
		return cli.questions(ctx, args[2:])
	case "question-add":
		return cli.questionAdd(ctx, args[2:])
	case "question-edit":
		return cli.questionEdit(ctx, args[2:])
	case "question-delete":
		return cli.questionDelete(ctx, args[2:])

	case "courses":
		return cli.courses(ctx, args[2:])
	case "course-create":
		return cli.courseCreate(ctx, args[2:])
	case "course-update":
		return cli.courseUpdate(ctx, args[2:])
	case "course-delete":
		return cli.courseDelete(ctx, args[2:])
	case "lectures":
		return cli.lectures(ctx, args[2:])
	case "lecture-add":
		return cli.lectureAdd(ctx, args[2:])
	case "lecture-edit":
		return cli.lectureEdit(ctx, args[2:])
	case "lecture-delete":
		return cli.lectureDelete(ctx, args[2:])
	case "lectures-reorder":
		return cli.lecturesReorder(ctx, args[2:])

	case "notifications":
		return cli.notifications(ctx, args[2:])
	case "notification-read":
		return cli.notificationRead(ctx, args[2:])
	case "notifications-read-all":
		return cli.notificationsReadAll(ctx)
	case "announce":
		return cli.announce(ctx, args[2:])

	default:
		cli.printUsage()
		return errHelp
	}
}

// table starts a tabwriter the render helpers share.
func (cli *commandLine) table() *tabwriter.Writer {
	return tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
}

// fail surfaces an operation failure to the user without retrying. Client
// validation errors render per-field; everything else renders its message.
func (cli *commandLine) fail(err error) error {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) {
		fmt.Fprintln(cli.out, "invalid input:")
		for _, fld := range vErr.Fields {
			fmt.Fprintf(cli.out, "  %s: %s\n", fld.Field, fld.Error)
		}
		if len(vErr.Fields) == 0 {
			fmt.Fprintf(cli.out, "  %s\n", vErr.Error())
		}
		return errHelp
	}
	return err
}
