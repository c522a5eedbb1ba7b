package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mailcore/go-imapcore/selected"
)

var copyFlags struct {
	mailbox string
	uids    string
	all     bool
	to      string
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy messages to another mailbox and print the new UIDs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		uids, err := parseUIDs(copyFlags.uids, copyFlags.all)
		if err != nil {
			return err
		}

		return withSession(copyFlags.mailbox, func(s *selected.Session) error {
			var command *selected.CopyCommand
			if copyFlags.all {
				command, err = selected.NewCopyCommandAllUIDs(copyFlags.to)
			} else {
				command, err = selected.NewCopyCommand(uids, copyFlags.to)
			}
			if err != nil {
				return err
			}

			res, err := s.Execute(command)
			if err != nil {
				return err
			}
			copied := res.(*selected.Copied)
			if copied.Data == nil {
				log.Printf("Messages copied to %s, the server did not report their new UIDs", copied.Mailbox)
				return nil
			}
			printMapping(os.Stdout, copied)
			return nil
		})
	},
}

func init() {
	flag := copyCmd.Flags()
	flag.StringVarP(&copyFlags.mailbox, "mailbox", "m", "INBOX", "mailbox to select")
	flag.StringVar(&copyFlags.uids, "uids", "", "UID set, e.g. 1,3:5")
	flag.BoolVar(&copyFlags.all, "all", false, "copy all messages of the mailbox")
	flag.StringVar(&copyFlags.to, "to", "", "destination mailbox")
	copyCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(copyCmd)
}

// printMapping writes one "old -> new" line per copied message, in the order
// the server reported them.
func printMapping(w io.Writer, copied *selected.Copied) {
	fmt.Fprintf(w, "UIDVALIDITY %d\n", copied.Data.UIDValidity)
	for _, p := range copied.Data.Pairs {
		fmt.Fprintf(w, "%d -> %d\n", p.Old, p.New)
	}
}
