package client

import (
	"fmt"

	"github.com/emersion/go-sasl"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
)

// Login identifies the client to the server and carries the plaintext
// password authenticating this user.
func (c *Client) Login(username, password string) error {
	if err := c.checkNotAuthenticated(); err != nil {
		return err
	}
	if c.caps["LOGINDISABLED"] {
		return ErrLoginDisabled
	}

	resp, err := c.executeStrings(imap.Login, username, password)
	if err != nil {
		return err
	}

	c.state = imap.AuthenticatedState
	c.updateCaps(resp)
	return nil
}

// Authenticate performs a SASL exchange with the mechanism of auth. The
// initial response is sent along with the command if the server supports
// SASL-IR.
// See RFC 3501 section 6.2.2 and RFC 4959
func (c *Client) Authenticate(auth sasl.Client) error {
	if err := c.checkNotAuthenticated(); err != nil {
		return err
	}

	mech, ir, err := auth.Start()
	if err != nil {
		return err
	}

	command := imap.Authenticate + " " + mech
	if ir != nil && c.caps["SASL-IR"] {
		command += " " + encodeSASL(ir)
		ir = nil
	}

	tag := c.tag()
	if err := c.WriteCommand(tag, command); err != nil {
		return err
	}

	var (
		resps   []imap.Resp
		authErr error
	)
	for {
		resp, err := c.conn.ReadResp()
		if err != nil {
			return err
		}

		req, ok := resp.(*imap.ContinuationReq)
		if !ok {
			resps = append(resps, resp)
			if status, ok := resp.(*imap.StatusResp); ok && status.Tag == tag {
				break
			}
			continue
		}

		var out []byte
		if ir != nil {
			out, ir = ir, nil
		} else if challenge, err := decodeSASL(req.Info); err != nil {
			authErr = fmt.Errorf("client: invalid SASL challenge: %w", err)
		} else if out, err = auth.Next(challenge); err != nil {
			authErr = err
		}

		if authErr != nil {
			// cancel the exchange, the server answers with BAD
			if err := c.conn.WriteLine("*"); err != nil {
				return err
			}
			continue
		}
		if err := c.conn.WriteLine(encodeSASL(out)); err != nil {
			return err
		}
	}

	resp := responses.New(tag, resps)
	if authErr != nil {
		return authErr
	}
	if err := resp.Err(); err != nil {
		return err
	}

	c.state = imap.AuthenticatedState
	c.updateCaps(resp)
	return nil
}

func (c *Client) checkNotAuthenticated() error {
	switch c.state {
	case imap.LogoutState:
		return ErrAlreadyLoggedOut
	case imap.NotAuthenticatedState:
		return nil
	default:
		return ErrAlreadyLoggedIn
	}
}
