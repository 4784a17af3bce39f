package main

import (
	"log"
	"os"

	"github.com/shuleapp/console/client"
	"github.com/shuleapp/console/core"
	emailsvc "github.com/shuleapp/console/services/email"
	logsvc "github.com/shuleapp/console/services/logger"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "CONSOLE : ", log.LstdFlags|log.Lmicroseconds)

	var logger core.Logger
	if core.Conf.Debug {
		logger = core.NewStdLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
	}

	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	store, err := newFileStore(core.Conf.SessionFile)
	if err != nil {
		logger.Fatal("opening session store", err)
	}

	cli := commandLine{
		api:    client.New(core.Conf, store, logger),
		email:  mailSvc,
		logger: logger,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", err)
			os.Exit(1)
		}
	}
}
