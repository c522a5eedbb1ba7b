package selected

import (
	"fmt"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
	"github.com/mailcore/go-imapcore/utf7"
)

// CopyCommand copies messages to another mailbox with UID COPY.
// See RFC 3501 section 6.4.7
type CopyCommand struct {
	uidCommand
	mailbox string
	encoded string
}

// NewCopyCommand creates a command copying the messages in uids to mailbox.
// The mailbox name is given in UTF-8.
func NewCopyCommand(uids imap.UIDSet, mailbox string) (*CopyCommand, error) {
	return newCopyCommand(uids, false, mailbox)
}

// NewCopyCommandAllUIDs is like NewCopyCommand but copies every message of
// the mailbox.
func NewCopyCommandAllUIDs(mailbox string) (*CopyCommand, error) {
	return newCopyCommand(nil, true, mailbox)
}

func newCopyCommand(uids imap.UIDSet, all bool, mailbox string) (*CopyCommand, error) {
	if mailbox == "" {
		return nil, ErrEmptyMailbox
	}
	base, err := newUIDCommand(uids, all)
	if err != nil {
		return nil, err
	}
	encoded, err := utf7.Encode(mailbox)
	if err != nil {
		return nil, fmt.Errorf("selected: cannot encode mailbox name %q: %w", mailbox, err)
	}
	return &CopyCommand{uidCommand: base, mailbox: mailbox, encoded: encoded}, nil
}

// Mailbox returns the destination mailbox name.
func (cmd *CopyCommand) Mailbox() string {
	return cmd.mailbox
}

// CommandString implements Command.
func (cmd *CopyCommand) CommandString() string {
	return formatLine(imap.UIDCopy, cmd.idSpec(), imap.FormatAstring(cmd.encoded))
}

// ParseResponses extracts the UID mapping from the COPYUID response code.
// Copied.Data is nil if the server did not send a usable one.
func (cmd *CopyCommand) ParseResponses(r *responses.Response) *Copied {
	copied := &Copied{Mailbox: cmd.mailbox}
	if data, ok := responses.ParseCopyUID(r); ok {
		copied.Data = data
	}
	return copied
}
