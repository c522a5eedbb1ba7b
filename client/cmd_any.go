package client

import (
	"strings"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
)

// Capability returns the server capabilities, upper-cased. They are fetched
// with CAPABILITY unless the server already advertised them.
func (c *Client) Capability() (map[string]bool, error) {
	if c.caps != nil {
		return copyCaps(c.caps), nil
	}

	resp, err := c.execute(imap.Capability)
	if err != nil {
		return nil, err
	}
	caps, ok := responses.ParseCapabilities(resp)
	if !ok {
		c.options.Logger.Printf("client: server sent no CAPABILITY data")
		caps = map[string]bool{}
	}
	c.caps = caps
	return copyCaps(caps), nil
}

// Support checks if cap is a server capability.
func (c *Client) Support(cap string) (bool, error) {
	caps, err := c.Capability()
	if err != nil {
		return false, err
	}
	return caps[strings.ToUpper(cap)], nil
}

// Noop does nothing but lets the server send pending untagged responses.
func (c *Client) Noop() error {
	_, err := c.execute(imap.Noop)
	return err
}

// Logout ends the session and closes the connection.
func (c *Client) Logout() error {
	if c.state == imap.LogoutState {
		return ErrAlreadyLoggedOut
	}

	_, err := c.execute(imap.Logout)
	if closeErr := c.Close(); err == nil {
		err = closeErr
	}
	return err
}

func copyCaps(caps map[string]bool) map[string]bool {
	m := make(map[string]bool, len(caps))
	for k, v := range caps {
		m[k] = v
	}
	return m
}
