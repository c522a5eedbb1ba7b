package responses

import (
	"strings"

	"github.com/mailcore/go-imapcore"
)

// MailboxStatus is the state of a mailbox reported by SELECT or EXAMINE.
type MailboxStatus struct {
	Name string

	// Flags defined in the mailbox.
	Flags []string
	// Flags the client can change permanently. Contains "\*" if the client
	// can create keywords.
	PermanentFlags []string

	Messages uint32
	Recent   uint32
	// Sequence number of the first unseen message.
	Unseen      uint32
	UIDNext     uint32
	UIDValidity uint32

	ReadOnly bool
}

// CanCreateKeywords reports whether keywords like $Forwarded can be stored.
func (mbox *MailboxStatus) CanCreateKeywords() bool {
	return imap.CanCreateKeywords(mbox.PermanentFlags)
}

// ParseSelect builds the mailbox status from the response to a SELECT or
// EXAMINE command. Unknown or malformed records are skipped.
// See RFC 3501 section 6.3.1
func ParseSelect(r *Response, name string) *MailboxStatus {
	mbox := &MailboxStatus{Name: name}

	for _, resp := range r.Untagged() {
		switch resp := resp.(type) {
		case *imap.DataResp:
			n, fields, ok := imap.ParseNamedResp(resp)
			if !ok || len(fields) == 0 {
				break
			}
			switch n {
			case "FLAGS":
				mbox.Flags, _ = imap.ParseStringList(fields[0])
			case "EXISTS":
				mbox.Messages, _ = imap.ParseNumber(fields[0])
			case "RECENT":
				mbox.Recent, _ = imap.ParseNumber(fields[0])
			}
		case *imap.StatusResp:
			if len(resp.Arguments) == 0 {
				break
			}
			switch resp.Code {
			case imap.CodeUnseen:
				mbox.Unseen, _ = imap.ParseNumber(resp.Arguments[0])
			case imap.CodePermanentFlags:
				mbox.PermanentFlags, _ = imap.ParseStringList(resp.Arguments[0])
			case imap.CodeUIDNext:
				mbox.UIDNext, _ = imap.ParseNumber(resp.Arguments[0])
			case imap.CodeUIDValidity:
				mbox.UIDValidity, _ = imap.ParseNumber(resp.Arguments[0])
			}
		}
	}

	if status, ok := r.Completion(); ok {
		mbox.ReadOnly = strings.EqualFold(status.Code, imap.CodeReadOnly)
	}
	return mbox
}
