package main

import (
	"context"
	"flag"
	"fmt"
	"syscall"

	"github.com/shuleapp/console/core/session"
)

func (cli *commandLine) login(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	email := cmd.String("email", "", "The member's email address. The password will be prompted next.")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		cmd.Usage()
		return errHelp
	}

	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	if len(pwd) == 0 {
		cmd.Usage()
		return errHelp
	}

	if _, err := cli.api.Login(ctx, *email, string(pwd)); err != nil {
		return cli.fail(err)
	}

	claims, err := cli.api.Claims()
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Logged in as %s\n", claims.Email)
	return nil
}

func (cli *commandLine) logout() error {
	if err := cli.api.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cli.out, "Logged out")
	return nil
}

func (cli *commandLine) whoami(ctx context.Context) error {
	memb, err := cli.api.Me(ctx)
	if err != nil {
		return cli.fail(err)
	}
	w := cli.table()
	fmt.Fprintf(w, "ID\t%s\n", memb.ID)
	fmt.Fprintf(w, "Name\t%s\n", memb.Name)
	fmt.Fprintf(w, "Email\t%s\n", memb.Email)
	fmt.Fprintf(w, "Role\t%s\n", memb.Role)
	fmt.Fprintf(w, "Active\t%t\n", memb.IsActive)
	return w.Flush()
}

// menu renders the role-gated navigation, derived fresh from the session.
func (cli *commandLine) menu() error {
	claims, err := cli.api.Claims()
	if err != nil {
		if err == session.ErrNoSession {
			fmt.Fprintln(cli.out, "not logged in")
			return errHelp
		}
		return err
	}
	for _, item := range session.Menu(claims) {
		fmt.Fprintf(cli.out, "%s\t(%s)\n", item.Title, item.Route)
	}
	return nil
}
