package selected

import (
	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
)

// StoreCommand adds or removes flags with UID STORE. The FLAGS.SILENT form
// is used, so the server does not send the updated flags back.
// See RFC 3501 section 6.4.6
type StoreCommand struct {
	uidCommand
	add   bool
	flags string
}

// NewStoreCommand creates a command which adds (add set) or removes the flags
// of the messages in uids.
//
// FlagForwarded is only sent if canCreateForwarded is set, i.e. if the
// mailbox PERMANENTFLAGS allow new keywords.
func NewStoreCommand(uids imap.UIDSet, add bool, flags []imap.Flag, canCreateForwarded bool) (*StoreCommand, error) {
	return newStoreCommand(uids, false, add, flags, canCreateForwarded)
}

// NewStoreCommandAllUIDs is like NewStoreCommand but addresses every message
// of the mailbox.
func NewStoreCommandAllUIDs(add bool, flags []imap.Flag, canCreateForwarded bool) (*StoreCommand, error) {
	return newStoreCommand(nil, true, add, flags, canCreateForwarded)
}

func newStoreCommand(uids imap.UIDSet, all, add bool, flags []imap.Flag, canCreateForwarded bool) (*StoreCommand, error) {
	base, err := newUIDCommand(uids, all)
	if err != nil {
		return nil, err
	}
	names := imap.FormatFlags(flags, canCreateForwarded)
	if names == "" {
		return nil, ErrEmptyFlags
	}
	return &StoreCommand{uidCommand: base, add: add, flags: names}, nil
}

// CommandString implements Command.
func (cmd *StoreCommand) CommandString() string {
	item := "-FLAGS.SILENT"
	if cmd.add {
		item = "+FLAGS.SILENT"
	}
	return formatLine(imap.UIDStore, cmd.idSpec(), item, "("+cmd.flags+")")
}

// ParseResponses returns Silent: the server reports nothing about a silent
// store besides its completion.
func (cmd *StoreCommand) ParseResponses(r *responses.Response) Silent {
	return Silent{}
}
