package main

import (
	"context"
	"flag"
	"fmt"
	"net/mail"

	"github.com/pkg/errors"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core"
	"github.com/shuleapp/console/core/notification"
)

func (cli *commandLine) notifications(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("notifications", flag.ExitOnError)
	unread := cmd.Bool("unread", false, "Only unread notifications.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	return cli.renderNotifications(ctx, *unread)
}

func (cli *commandLine) renderNotifications(ctx context.Context, unreadOnly bool) error {
	list, err := cli.api.ListNotifications(ctx, unreadOnly)
	if err != nil {
		if errors.Cause(err) == client.ErrStale {
			return nil
		}
		return cli.fail(err)
	}

	w := cli.table()
	fmt.Fprintln(w, "ID\tKIND\tREAD\tTITLE")
	for _, n := range list {
		fmt.Fprintf(w, "%s\t%s\t%t\t%s\n", n.ID, n.Kind, n.IsRead, n.Title)
	}
	return w.Flush()
}

func (cli *commandLine) notificationRead(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("notification-read", flag.ExitOnError)
	id := cmd.String("id", "", "The notification id.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.api.MarkNotificationRead(ctx, *id); err != nil {
		return cli.fail(err)
	}
	return cli.renderNotifications(ctx, false)
}

func (cli *commandLine) notificationsReadAll(ctx context.Context) error {
	if err := cli.api.MarkAllNotificationsRead(ctx); err != nil {
		return cli.fail(err)
	}
	return cli.renderNotifications(ctx, false)
}

// announce publishes a platform announcement and optionally emails a copy to
// the audience mailing list.
func (cli *commandLine) announce(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("announce", flag.ExitOnError)
	title := cmd.String("title", "", "The announcement title.")
	body := cmd.String("body", "", "The announcement body.")
	audience := cmd.String("audience", notification.AudienceAll, "One of: all, instructors, students.")
	emailCopy := cmd.Bool("email", false, "Also deliver a copy by email.")
	emailTo := cmd.String("email-to", "", "Mailing list address for the email copy.")
	if err := cmd.Parse(args); err != nil {
		return err
	}

	a := &notification.Announcement{
		Title:     *title,
		Body:      *body,
		Audience:  *audience,
		EmailCopy: *emailCopy,
	}
	if _, err := cli.api.Announce(ctx, a); err != nil {
		return cli.fail(err)
	}

	if a.EmailCopy && *emailTo != "" {
		cli.email.SendMessages(&core.EmailMessage{
			To:      []mail.Address{{Address: *emailTo}},
			Subject: a.Title,
			Body:    a.Body,
		})
	}
	return cli.renderNotifications(ctx, false)
}
