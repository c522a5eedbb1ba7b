// Package utf7 implements the modified UTF-7 encoding of mailbox names
// defined in RFC 3501 section 5.1.3.
package utf7

import (
	"encoding/base64"
	"errors"

	"golang.org/x/text/encoding"
)

const (
	min = 0x20 // Minimum self-representing UTF-7 value
	max = 0x7E // Maximum self-representing UTF-7 value

	repl = '\uFFFD' // Unicode replacement code point
)

var b64Enc = base64.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+,").WithPadding(base64.NoPadding)

// ErrInvalidUTF7 means that a transformer encountered invalid UTF-7.
var ErrInvalidUTF7 = errors.New("utf7: invalid UTF-7")

type enc struct{}

func (e enc) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decoder{ascii: true}}
}

func (e enc) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encoder{}}
}

// Encoding is the modified UTF-7 encoding.
var Encoding encoding.Encoding = enc{}

// Encode encodes a UTF-8 mailbox name.
func Encode(name string) (string, error) {
	return Encoding.NewEncoder().String(name)
}

// Decode decodes a modified UTF-7 mailbox name.
func Decode(name string) (string, error) {
	return Encoding.NewDecoder().String(name)
}
