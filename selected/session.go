package selected

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
)

// Options contains options for Session.
type Options struct {
	// Logger receives protocol deviations the session recovered from. If
	// nil, log.Default() is used.
	Logger imap.Logger
	// Tag returns the tag of the next command. If nil, the session numbers
	// its commands "A1", "A2" and so on.
	Tag func() string
	// CanCreateKeywords must be set if the selected mailbox accepts new
	// keywords, in which case Store sends FlagForwarded.
	CanCreateKeywords bool
}

// Session runs selected-state commands over a transport, one at a time.
//
// A Session is not safe for concurrent use.
type Session struct {
	t       imap.Transport
	options Options
	nextTag uint64
}

// NewSession creates a session. The mailbox must already be selected on t.
//
// A nil options pointer is equivalent to a zero options value.
func NewSession(t imap.Transport, options *Options) *Session {
	s := &Session{t: t}
	if options != nil {
		s.options = *options
	}
	if s.options.Logger == nil {
		s.options.Logger = log.Default()
	}
	return s
}

func (s *Session) tag() string {
	if s.options.Tag != nil {
		return s.options.Tag()
	}
	s.nextTag++
	return "A" + strconv.FormatUint(s.nextTag, 10)
}

// Execute sends cmd and interprets its responses.
//
// A command addressing an empty explicit UID set is not sent and yields the
// empty result of its kind. A NO or BAD completion is returned as an
// *imap.Error; transport errors are returned unchanged.
func (s *Session) Execute(cmd Command) (Result, error) {
	switch cmd := cmd.(type) {
	case *StoreCommand:
		if cmd.noop() {
			return Silent{}, nil
		}
		resp, err := s.run(cmd)
		if err != nil {
			return nil, err
		}
		return cmd.ParseResponses(resp), nil
	case *CopyCommand:
		if cmd.noop() {
			return &Copied{Mailbox: cmd.mailbox}, nil
		}
		resp, err := s.run(cmd)
		if err != nil {
			return nil, err
		}
		copied := cmd.ParseResponses(resp)
		if copied.Data == nil {
			s.options.Logger.Printf("selected: no usable COPYUID in response to %q", cmd.CommandString())
		}
		return copied, nil
	case *GenericCommand:
		if cmd.noop() {
			return &Completed{}, nil
		}
		resp, err := s.run(cmd)
		if err != nil {
			return nil, err
		}
		return cmd.ParseResponses(resp), nil
	default:
		return nil, fmt.Errorf("selected: unsupported command %T", cmd)
	}
}

func (s *Session) run(cmd Command) (*responses.Response, error) {
	tag := s.tag()
	if err := s.t.WriteCommand(tag, cmd.CommandString()); err != nil {
		return nil, err
	}

	resps, err := s.t.ReadResponses(tag)
	if errors.Is(err, imap.ErrUnexpectedContinuation) {
		s.options.Logger.Printf("selected: server sent a continuation request to %q", cmd.CommandString())
	}
	if err != nil {
		return nil, err
	}

	resp := responses.New(tag, resps)
	if err := resp.Err(); err != nil {
		return nil, err
	}
	return resp, nil
}

// Store adds or removes flags on the messages in uids.
func (s *Session) Store(uids imap.UIDSet, add bool, flags ...imap.Flag) error {
	cmd, err := NewStoreCommand(uids, add, flags, s.options.CanCreateKeywords)
	if err != nil {
		return err
	}
	_, err = s.Execute(cmd)
	return err
}

// StoreAll adds or removes flags on every message of the mailbox.
func (s *Session) StoreAll(add bool, flags ...imap.Flag) error {
	cmd, err := NewStoreCommandAllUIDs(add, flags, s.options.CanCreateKeywords)
	if err != nil {
		return err
	}
	_, err = s.Execute(cmd)
	return err
}

// Copy copies the messages in uids to mailbox.
func (s *Session) Copy(uids imap.UIDSet, mailbox string) (*Copied, error) {
	cmd, err := NewCopyCommand(uids, mailbox)
	if err != nil {
		return nil, err
	}
	res, err := s.Execute(cmd)
	if err != nil {
		return nil, err
	}
	return res.(*Copied), nil
}

// Expunge permanently removes the messages in uids which have the \Deleted
// flag, and returns the sequence numbers the server reported as expunged.
// See RFC 4315 section 2.1
func (s *Session) Expunge(uids imap.UIDSet) ([]uint32, error) {
	cmd, err := NewCommand(imap.UIDExpunge, uids)
	if err != nil {
		return nil, err
	}
	res, err := s.Execute(cmd)
	if err != nil {
		return nil, err
	}
	completed := res.(*Completed)
	if completed.Response == nil {
		return nil, nil
	}
	return responses.ParseExpunge(completed.Response), nil
}

// Search returns the UIDs among uids which match the search criteria, e.g.
// "UNSEEN" or "FLAGGED".
func (s *Session) Search(uids imap.UIDSet, criteria ...string) ([]uint64, error) {
	cmd, err := NewCommand(imap.UIDSearch+" UID", uids, criteria...)
	if err != nil {
		return nil, err
	}
	res, err := s.Execute(cmd)
	if err != nil {
		return nil, err
	}
	completed := res.(*Completed)
	if completed.Response == nil {
		return nil, nil
	}
	return responses.ParseSearch(completed.Response), nil
}
