package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/selected"
)

var storeFlags struct {
	mailbox string
	uids    string
	all     bool
	flags   []string
	remove  bool
}

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Add or remove flags on messages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uids, err := parseUIDs(storeFlags.uids, storeFlags.all)
		if err != nil {
			return err
		}
		flags, err := parseFlags(storeFlags.flags)
		if err != nil {
			return err
		}

		return withSession(storeFlags.mailbox, func(s *selected.Session) error {
			add := !storeFlags.remove
			if storeFlags.all {
				err = s.StoreAll(add, flags...)
			} else {
				err = s.Store(uids, add, flags...)
			}
			if err != nil {
				return err
			}
			log.Printf("Flags updated")
			return nil
		})
	},
}

func init() {
	flag := storeCmd.Flags()
	flag.StringVarP(&storeFlags.mailbox, "mailbox", "m", "INBOX", "mailbox to select")
	flag.StringVar(&storeFlags.uids, "uids", "", "UID set, e.g. 1,3:5")
	flag.BoolVar(&storeFlags.all, "all", false, "apply to all messages of the mailbox")
	flag.StringSliceVar(&storeFlags.flags, "flag", nil, "flags to change: seen, deleted, answered, flagged, draft, forwarded")
	flag.BoolVar(&storeFlags.remove, "remove", false, "remove the flags instead of adding them")
	rootCmd.AddCommand(storeCmd)
}

func parseFlags(names []string) ([]imap.Flag, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("at least one --flag is required")
	}
	flags := make([]imap.Flag, 0, len(names))
	for _, name := range names {
		f, ok := imap.ParseFlag(name)
		if !ok {
			return nil, fmt.Errorf("unknown flag %q", name)
		}
		flags = append(flags, f)
	}
	return flags, nil
}
