package imap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidUID is returned when a UID set contains zero, which is not a
	// valid UID.
	ErrInvalidUID = errors.New("imap: UID 0 is not valid")

	// ErrUnexpectedContinuation is returned by Conn.ReadResponses when the
	// server sends a continuation request to a command which has no literal
	// to send.
	ErrUnexpectedContinuation = errors.New("imap: unexpected continuation request")

	// ErrNulString is returned when a string argument contains a NUL
	// character, which can't be sent even as a literal.
	ErrNulString = errors.New("imap: string contains a NUL character")
)

type parseError struct {
	error
}

func newParseError(text string) error {
	return &parseError{errors.New(text)}
}

// IsParseError returns true if the provided error is a parse error produced by
// Reader.
func IsParseError(err error) bool {
	var pe *parseError
	return errors.As(err, &pe)
}

// Error is an IMAP error caused by a tagged NO or BAD status response.
type Error StatusResp

var _ error = (*Error)(nil)

// Error implements the error interface.
func (err *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "imap: %v", err.Type)
	if err.Code != "" {
		fmt.Fprintf(&sb, " [%v]", err.Code)
	}
	text := err.Info
	if text == "" {
		text = "<unknown>"
	}
	fmt.Fprintf(&sb, " %v", text)
	return sb.String()
}
