package imap

import (
	"bytes"
	"io"
)

// Literal is a string transmitted as a length-prefixed sequence of octets.
type Literal struct {
	contents []byte
}

// NewLiteral creates a new literal.
func NewLiteral(b []byte) *Literal {
	return &Literal{contents: b}
}

// Len returns the number of octets of the literal.
func (l *Literal) Len() int {
	return len(l.contents)
}

func (l *Literal) Bytes() []byte {
	return l.contents
}

func (l *Literal) String() string {
	return string(l.contents)
}

// Reader returns a reader over the literal contents.
func (l *Literal) Reader() io.Reader {
	return bytes.NewReader(l.contents)
}
