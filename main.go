// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/driftbox/go-driftbox/config"
	"github.com/driftbox/go-driftbox/countdown"
	"github.com/driftbox/go-driftbox/domain"
	"github.com/driftbox/go-driftbox/favorites"
	"github.com/driftbox/go-driftbox/log"
	"github.com/driftbox/go-driftbox/mail"
	"github.com/driftbox/go-driftbox/provider/mailgw"
	"github.com/driftbox/go-driftbox/provider/onesec"
	"github.com/driftbox/go-driftbox/session"

	"github.com/sirupsen/logrus"
)

func main() {
	log.InitLogging("debug")
	logger := log.Logger(log.LOG_MAIN)

	conf, err := config.ReadConfig("driftbox.toml")
	if err != nil {
		logger.WithField("error", err).Fatal("Could not load config")
	}

	if conf.Loglevel != nil {
		log.SetLogLevel(*conf.Loglevel)
	}

	store, err := favorites.NewStore(conf.Database)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not connect to database")
	}
	defer store.Close()

	var provider domain.MailProvider
	if len(conf.MailgwURL) > 0 {
		provider, err = mailgw.NewClient(conf.MailgwURL)
	} else {
		provider, err = onesec.NewClient(conf.OnesecURL)
	}
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start provider client")
	}

	timer := countdown.NewTimer()

	controller, err := session.NewController(
		provider,
		store,
		&logNotifier{l: logger},
		timer,
		session.PollInterval(time.Duration(conf.PollSeconds)*time.Second),
		session.SessionTTL(conf.SessionMinutes),
	)
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start session controller")
	}
	defer controller.Close()

	err = controller.StartNewSession()
	if err != nil {
		logger.WithField("error", err).Fatal("Could not start mailbox session")
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Info("Shutting down")
}

// logNotifier is the headless presentation layer: session events end up in
// the main log.
type logNotifier struct {
	l *logrus.Logger
}

func (n *logNotifier) MailboxReady(account domain.Account) {
	n.l.WithFields(logrus.Fields{"address": account.Address}).Info("New mailbox ready")
}

func (n *logNotifier) MailboxSwitched(account domain.Account) {
	n.l.WithFields(logrus.Fields{"address": account.Address}).Info("Switched mailbox")
}

func (n *logNotifier) NewMail(message domain.Message) {
	n.l.WithFields(logrus.Fields{"from": mail.FormatAddress(message.From), "subject": mail.ShortSubject(message.Subject)}).Info("New mail")
}

func (n *logNotifier) MailboxExpired(address string) {
	n.l.WithFields(logrus.Fields{"address": address}).Warn("Mailbox expired")
}

func (n *logNotifier) SessionError(err error) {
	n.l.WithField("error", err).Error("Session error")
}
