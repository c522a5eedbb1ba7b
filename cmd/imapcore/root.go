package main

import (
	"crypto/tls"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/emersion/go-sasl"
	"github.com/spf13/cobra"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/client"
	"github.com/mailcore/go-imapcore/selected"
)

var global struct {
	configFile string
	account    string
	debug      bool
}

var rootCmd = &cobra.Command{
	Use:           "imapcore",
	Short:         "Run selected-state IMAP commands and compose MIME bodies",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flag := rootCmd.PersistentFlags()
	flag.StringVarP(&global.configFile, "config", "c", "imap.yaml", "configuration file")
	flag.StringVarP(&global.account, "account", "a", "", "account name in the configuration file")
	flag.BoolVar(&global.debug, "debug", false, "print all commands and responses")
}

func connect(account Account) (*client.Client, error) {
	var debugWriter io.Writer
	if global.debug {
		debugWriter = os.Stderr
	}
	options := &client.Options{DebugWriter: debugWriter}

	log.Printf("Connecting to server %s...", account.ServerURL)
	var (
		c   *client.Client
		err error
	)
	if account.TLS {
		c, err = client.DialTLS(account.ServerURL, &tls.Config{InsecureSkipVerify: account.InsecureSkipVerify}, options)
	} else {
		c, err = client.Dial(account.ServerURL, options)
	}
	if err != nil {
		return nil, err
	}

	if c.State() == imap.NotAuthenticatedState {
		switch account.Auth {
		case AuthPlain:
			err = c.Authenticate(sasl.NewPlainClient("", account.Username, account.Password))
		default:
			err = c.Login(account.Username, account.Password)
		}
		if err != nil {
			c.Close()
			return nil, fmt.Errorf("cannot log in as %s: %w", account.Username, err)
		}
		log.Printf("Logged in as %s", account.Username)
	}
	return c, nil
}

// withSession selects mailbox on the configured account and runs f.
func withSession(mailbox string, f func(s *selected.Session) error) error {
	config, err := LoadFileConfig(global.configFile)
	if err != nil {
		return fmt.Errorf("cannot open or read configuration file: %w", err)
	}
	account, err := config.Account(global.account)
	if err != nil {
		return err
	}

	c, err := connect(account)
	if err != nil {
		return err
	}
	defer c.Logout()

	mbox, err := c.Select(mailbox)
	if err != nil {
		return fmt.Errorf("cannot select %s: %w", mailbox, err)
	}
	log.Printf("%s contains %d messages", mbox.Name, mbox.Messages)

	s, err := c.Selected()
	if err != nil {
		return err
	}
	return f(s)
}

// parseUIDs reads the --uids and --all flags.
func parseUIDs(uids string, all bool) (imap.UIDSet, error) {
	switch {
	case all && uids != "":
		return nil, fmt.Errorf("--uids and --all are mutually exclusive")
	case all:
		return nil, nil
	case uids == "":
		return nil, fmt.Errorf("one of --uids or --all is required")
	}
	return imap.ParseUIDSet(uids)
}
