package imap

import (
	"bufio"
	"io"
	"net"
)

// Transport sends command lines and collects the responses of one command.
//
// Implementations only deal with framing; interpreting the responses is left
// to the caller.
type Transport interface {
	// WriteCommand sends "<tag> <command>".
	WriteCommand(tag, command string) error
	// ReadResponses reads response records until the status response tagged
	// with tag, which is the last element of the returned slice.
	ReadResponses(tag string) ([]Resp, error)
}

var _ Transport = (*Conn)(nil)

// ConnOptions contains options for Conn.
type ConnOptions struct {
	// Raw ingress and egress data will be written to this writer, if any.
	DebugWriter io.Writer
}

func (options *ConnOptions) wrapReadWriter(rw io.ReadWriter) io.ReadWriter {
	if options.DebugWriter == nil {
		return rw
	}
	return struct {
		io.Reader
		io.Writer
	}{
		Reader: io.TeeReader(rw, options.DebugWriter),
		Writer: io.MultiWriter(rw, options.DebugWriter),
	}
}

// Conn is an IMAP connection. It is not safe for concurrent use: IMAP
// selected-state commands are issued one at a time.
type Conn struct {
	net.Conn
	*Reader
	*Writer
}

// NewConn creates a new IMAP connection.
//
// A nil options pointer is equivalent to a zero options value.
func NewConn(conn net.Conn, options *ConnOptions) *Conn {
	if options == nil {
		options = &ConnOptions{}
	}

	rw := options.wrapReadWriter(conn)
	return &Conn{
		Conn:   conn,
		Reader: NewReader(bufio.NewReader(rw)),
		Writer: NewWriter(bufio.NewWriter(rw)),
	}
}

// Read implements io.Reader through the response reader buffer.
func (c *Conn) Read(b []byte) (int, error) {
	return c.Reader.r.Read(b)
}

// ReadResp reads the next response record.
func (c *Conn) ReadResp() (Resp, error) {
	resp, err := ReadResp(c.Reader)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return resp, err
}

// ReadResponses implements Transport.
func (c *Conn) ReadResponses(tag string) ([]Resp, error) {
	var resps []Resp
	for {
		resp, err := c.ReadResp()
		if err != nil {
			return resps, err
		}
		resps = append(resps, resp)

		switch resp := resp.(type) {
		case *StatusResp:
			if resp.Tag == tag {
				return resps, nil
			}
		case *ContinuationReq:
			return resps, ErrUnexpectedContinuation
		}
	}
}
