package client

import (
	"fmt"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
	"github.com/mailcore/go-imapcore/utf7"
)

// Select selects a mailbox so that messages in it can be accessed. The name
// is given in UTF-8.
// See RFC 3501 section 6.3.1
func (c *Client) Select(name string) (*MailboxStatus, error) {
	return c.selectMailbox(imap.Select, name)
}

// Examine is like Select but the mailbox is opened read-only.
// See RFC 3501 section 6.3.2
func (c *Client) Examine(name string) (*MailboxStatus, error) {
	return c.selectMailbox(imap.Examine, name)
}

func (c *Client) selectMailbox(command, name string) (*MailboxStatus, error) {
	switch c.state {
	case imap.LogoutState:
		return nil, ErrAlreadyLoggedOut
	case imap.NotAuthenticatedState:
		return nil, ErrNotLoggedIn
	}

	encoded, err := utf7.Encode(name)
	if err != nil {
		return nil, fmt.Errorf("client: cannot encode mailbox name %q: %w", name, err)
	}

	resp, err := c.execute(command + " " + imap.FormatAstring(encoded))
	if c.state != imap.LogoutState {
		// a failed SELECT closes the previously selected mailbox
		c.state = imap.AuthenticatedState
		c.mailbox = nil
	}
	if err != nil {
		return nil, err
	}
	if c.state == imap.LogoutState {
		return nil, ErrAlreadyLoggedOut
	}

	mbox := responses.ParseSelect(resp, name)
	if command == imap.Examine {
		mbox.ReadOnly = true
	}
	c.state = imap.SelectedState
	c.mailbox = mbox
	return mbox, nil
}
