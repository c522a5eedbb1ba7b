package selected

import (
	"strings"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
)

// GenericCommand is any other UID-addressed command, rendered as
// "<name> <id-spec> <args...>". For instance "UID EXPUNGE 4:7" or
// "UID FETCH 1:3 (FLAGS)".
type GenericCommand struct {
	uidCommand
	name string
	args []string
}

// NewCommand creates a generic command addressing uids. The arguments are
// written verbatim after the id-spec.
func NewCommand(name string, uids imap.UIDSet, args ...string) (*GenericCommand, error) {
	return newGenericCommand(name, uids, false, args)
}

// NewCommandAllUIDs is like NewCommand but addresses every message of the
// mailbox.
func NewCommandAllUIDs(name string, args ...string) (*GenericCommand, error) {
	return newGenericCommand(name, nil, true, args)
}

func newGenericCommand(name string, uids imap.UIDSet, all bool, args []string) (*GenericCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyCommand
	}
	base, err := newUIDCommand(uids, all)
	if err != nil {
		return nil, err
	}
	return &GenericCommand{
		uidCommand: base,
		name:       name,
		args:       append([]string(nil), args...),
	}, nil
}

// Name returns the command name.
func (cmd *GenericCommand) Name() string {
	return cmd.name
}

// CommandString implements Command.
func (cmd *GenericCommand) CommandString() string {
	tokens := append([]string{cmd.name, cmd.idSpec()}, cmd.args...)
	return formatLine(tokens...)
}

// ParseResponses returns the completion and the untagged records.
func (cmd *GenericCommand) ParseResponses(r *responses.Response) *Completed {
	completed := &Completed{Response: r}
	completed.Status, _ = r.Completion()
	completed.Data = r.Untagged()
	return completed
}
