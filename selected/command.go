// Package selected implements the UID-addressed commands an IMAP client sends
// once a mailbox is selected, and a Session which runs them.
//
// Commands are built by constructors which validate their arguments, are
// immutable afterwards and render to a single command line. A command either
// addresses an explicit UID set or every message of the mailbox ("1:*"); the
// two modes are chosen by the constructor, never inferred from an empty set.
package selected

import (
	"errors"
	"strings"

	"github.com/mailcore/go-imapcore"
)

var (
	// ErrEmptyMailbox is returned when a copy destination is empty.
	ErrEmptyMailbox = errors.New("selected: empty mailbox name")
	// ErrEmptyFlags is returned when a store command has no flag to send.
	ErrEmptyFlags = errors.New("selected: no flags to store")
	// ErrEmptyCommand is returned when a generic command has no name.
	ErrEmptyCommand = errors.New("selected: empty command name")
)

// allUIDsSpec addresses every message in the selected mailbox.
const allUIDsSpec = "1:*"

// Command is a selected-state command. The implementations are
// *StoreCommand, *CopyCommand and *GenericCommand.
type Command interface {
	// CommandString returns the command line, without tag and CRLF.
	CommandString() string
	// UIDs returns a copy of the addressed UID set and whether the command
	// addresses all messages instead. The set is empty in the latter case.
	UIDs() (uids imap.UIDSet, all bool)

	command()
}

type uidCommand struct {
	uids imap.UIDSet
	all  bool
}

func newUIDCommand(uids imap.UIDSet, all bool) (uidCommand, error) {
	if all {
		return uidCommand{all: true}, nil
	}
	if err := uids.Valid(); err != nil {
		return uidCommand{}, err
	}
	return uidCommand{uids: uids.Clone()}, nil
}

func (cmd *uidCommand) UIDs() (imap.UIDSet, bool) {
	return cmd.uids.Clone(), cmd.all
}

func (cmd *uidCommand) command() {}

func (cmd *uidCommand) idSpec() string {
	if cmd.all {
		return allUIDsSpec
	}
	return cmd.uids.String()
}

// noop reports whether the command addresses no message at all.
func (cmd *uidCommand) noop() bool {
	return !cmd.all && cmd.uids.IsEmpty()
}

// formatLine joins the non-empty tokens with a space.
func formatLine(tokens ...string) string {
	line := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok != "" {
			line = append(line, tok)
		}
	}
	return strings.Join(line, " ")
}
