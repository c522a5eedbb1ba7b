// Package client implements the connection level of an IMAP client: it reads
// the greeting, authenticates, selects a mailbox and then hands out a
// selected.Session running the commands of the selected state.
//
// A Client is not safe for concurrent use. Use one connection per goroutine.
package client

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"strconv"
	"strings"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/responses"
	"github.com/mailcore/go-imapcore/selected"
)

var (
	// ErrNotSelected is returned when a command needs a selected mailbox.
	ErrNotSelected = errors.New("client: no mailbox selected")
	// ErrAlreadyLoggedOut is returned when the connection is closed or the
	// server said BYE.
	ErrAlreadyLoggedOut = errors.New("client: already logged out")
	// ErrAlreadyLoggedIn is returned by Login and Authenticate after a
	// successful authentication.
	ErrAlreadyLoggedIn = errors.New("client: already logged in")
	// ErrNotLoggedIn is returned when a command needs authentication.
	ErrNotLoggedIn = errors.New("client: not logged in")
	// ErrLoginDisabled is returned by Login if the server advertises
	// LOGINDISABLED.
	ErrLoginDisabled = errors.New("client: login is disabled in current state")
)

// MailboxStatus is the state of the selected mailbox.
type MailboxStatus = responses.MailboxStatus

// Options contains options for Client.
type Options struct {
	// Raw ingress and egress data will be written to this writer, if any.
	DebugWriter io.Writer
	// Logger receives protocol deviations the client recovered from. If nil,
	// log.Default() is used.
	Logger imap.Logger
}

// Client is an IMAP client connection.
type Client struct {
	conn    *imap.Conn
	options Options

	state   imap.ConnState
	caps    map[string]bool
	mailbox *MailboxStatus
	nextTag uint64
}

var _ imap.Transport = (*Client)(nil)

// New creates a client on top of an established connection and reads the
// server greeting.
//
// A nil options pointer is equivalent to a zero options value.
func New(conn net.Conn, options *Options) (*Client, error) {
	c := &Client{}
	if options != nil {
		c.options = *options
	}
	if c.options.Logger == nil {
		c.options.Logger = log.Default()
	}
	c.conn = imap.NewConn(conn, &imap.ConnOptions{DebugWriter: c.options.DebugWriter})

	if err := c.readGreeting(); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// Dial connects to an IMAP server without TLS.
func Dial(addr string, options *Options) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, err
	}
	return New(conn, options)
}

// DialTLS connects to an IMAP server with implicit TLS.
func DialTLS(addr string, tlsConfig *tls.Config, options *Options) (*Client, error) {
	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return nil, err
	}
	return New(conn, options)
}

func (c *Client) readGreeting() error {
	resp, err := c.conn.ReadResp()
	if err != nil {
		return fmt.Errorf("client: failed to read greeting: %w", err)
	}

	status, ok := resp.(*imap.StatusResp)
	if !ok || status.Tagged() {
		return fmt.Errorf("client: invalid greeting")
	}

	switch status.Type {
	case imap.StatusRespOk:
		c.state = imap.NotAuthenticatedState
	case imap.StatusRespPreauth:
		c.state = imap.AuthenticatedState
	case imap.StatusRespBye:
		return fmt.Errorf("client: server refused connection: %w", (*imap.Error)(status))
	default:
		return fmt.Errorf("client: invalid greeting type %v", status.Type)
	}

	if caps, ok := responses.CapabilitiesFromStatus(status); ok {
		c.caps = caps
	}
	return nil
}

// State returns the connection state.
func (c *Client) State() imap.ConnState {
	return c.state
}

// Mailbox returns the status of the selected mailbox, or nil.
func (c *Client) Mailbox() *MailboxStatus {
	return c.mailbox
}

// Selected returns a session running selected-state commands on the selected
// mailbox. The session shares the tag sequence of the client.
func (c *Client) Selected() (*selected.Session, error) {
	if c.state != imap.SelectedState || c.mailbox == nil {
		return nil, ErrNotSelected
	}
	return selected.NewSession(c, &selected.Options{
		Logger:            c.options.Logger,
		Tag:               c.tag,
		CanCreateKeywords: c.mailbox.CanCreateKeywords(),
	}), nil
}

// Close closes the connection without logging out.
func (c *Client) Close() error {
	c.state = imap.LogoutState
	c.mailbox = nil
	return c.conn.Close()
}

func (c *Client) tag() string {
	c.nextTag++
	return "T" + strconv.FormatUint(c.nextTag, 10)
}

// WriteCommand implements imap.Transport.
func (c *Client) WriteCommand(tag, command string) error {
	if c.state == imap.LogoutState {
		return ErrAlreadyLoggedOut
	}
	return c.conn.WriteCommand(tag, command)
}

// ReadResponses implements imap.Transport. An untagged BYE moves the client
// to the logout state.
func (c *Client) ReadResponses(tag string) ([]imap.Resp, error) {
	resps, err := c.conn.ReadResponses(tag)
	for _, resp := range resps {
		if status, ok := resp.(*imap.StatusResp); ok && !status.Tagged() && status.Type == imap.StatusRespBye {
			c.state = imap.LogoutState
			c.mailbox = nil
		}
	}
	return resps, err
}

// execute sends a command and waits for its completion. NO and BAD
// completions are returned as *imap.Error along with the response.
func (c *Client) execute(command string) (*responses.Response, error) {
	tag := c.tag()
	if err := c.WriteCommand(tag, command); err != nil {
		return nil, err
	}
	resps, err := c.ReadResponses(tag)
	if err != nil {
		return nil, err
	}
	resp := responses.New(tag, resps)
	return resp, resp.Err()
}

// executeStrings sends a command taking string arguments. Arguments which
// can't be quoted are sent as literals, waiting for the server's continuation
// request before each one.
func (c *Client) executeStrings(name string, args ...string) (*responses.Response, error) {
	for _, arg := range args {
		if strings.IndexByte(arg, 0) >= 0 {
			return nil, imap.ErrNulString
		}
	}

	tag := c.tag()
	sent := false
	send := func(line string) error {
		if !sent {
			sent = true
			return c.WriteCommand(tag, line)
		}
		return c.conn.WriteLine(line)
	}

	var resps []imap.Resp
	line := name
	for _, arg := range args {
		if imap.IsQuotable(arg) {
			line += " " + imap.FormatAstring(arg)
			continue
		}

		if err := send(line + " " + imap.LiteralPrefix(arg)); err != nil {
			return nil, err
		}
		more, done, err := c.waitContinuation(tag)
		resps = append(resps, more...)
		if err != nil {
			return nil, err
		}
		if done {
			resp := responses.New(tag, resps)
			if err := resp.Err(); err != nil {
				return resp, err
			}
			return resp, fmt.Errorf("client: %v completed before all literals were sent", name)
		}
		line = arg
	}

	if err := send(line); err != nil {
		return nil, err
	}
	more, err := c.ReadResponses(tag)
	resps = append(resps, more...)
	if err != nil {
		return nil, err
	}
	resp := responses.New(tag, resps)
	return resp, resp.Err()
}

// waitContinuation reads responses until a continuation request or the
// completion of the command tagged with tag, in which case done is true.
func (c *Client) waitContinuation(tag string) (resps []imap.Resp, done bool, err error) {
	for {
		resp, err := c.conn.ReadResp()
		if err != nil {
			return resps, false, err
		}
		if _, ok := resp.(*imap.ContinuationReq); ok {
			return resps, false, nil
		}
		resps = append(resps, resp)
		if status, ok := resp.(*imap.StatusResp); ok && status.Tag == tag {
			return resps, true, nil
		}
	}
}

// updateCaps replaces the cached capabilities with those advertised by a
// completion, or clears the cache if there are none.
func (c *Client) updateCaps(resp *responses.Response) {
	c.caps = nil
	if status, ok := resp.Completion(); ok {
		if caps, ok := responses.CapabilitiesFromStatus(status); ok {
			c.caps = caps
		}
	}
}
