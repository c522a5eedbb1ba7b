package selected

import (
	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
)

// Result is the outcome of a command: Silent, *Copied or *Completed.
type Result interface {
	result()
}

// Silent is the result of a command for which the server reports nothing but
// its completion.
type Silent struct{}

// Copied is the result of a CopyCommand.
type Copied struct {
	// Mailbox is the destination mailbox.
	Mailbox string
	// Data holds the UID mapping reported by the server. It is nil if the
	// server does not support UIDPLUS or sent a malformed COPYUID code.
	Data *responses.CopyUID
}

// Mapping returns the old UID to new UID mapping, or nil if the server did not
// report it.
func (c *Copied) Mapping() map[string]string {
	if c.Data == nil {
		return nil
	}
	return c.Data.Mapping()
}

// Completed is the result of a GenericCommand.
type Completed struct {
	// Status is the tagged completion, nil for a command which was not sent.
	Status *imap.StatusResp
	// Data holds the untagged records received before the completion.
	Data []imap.Resp
	// Response is the full response stream, nil for a command which was not
	// sent.
	Response *responses.Response
}

func (Silent) result()     {}
func (*Copied) result()    {}
func (*Completed) result() {}
