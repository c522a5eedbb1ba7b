// Package mimepart implements a MIME multipart body: an ordered list of body
// parts separated by a boundary.
// See RFC 2046 section 5.1
package mimepart

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/textproto"
)

const (
	boundaryPrefix = "----"
	boundaryLen    = 30
	boundaryChars  = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// GenerateBoundary returns a new random boundary: "----" followed by 30
// upper-case base-36 characters.
//
// Uniqueness is probabilistic, part contents are not checked for the
// boundary.
func GenerateBoundary() string {
	var sb strings.Builder
	sb.Grow(len(boundaryPrefix) + boundaryLen)
	sb.WriteString(boundaryPrefix)
	for i := 0; i < boundaryLen; i++ {
		sb.WriteByte(boundaryChars[rand.Intn(len(boundaryChars))])
	}
	return sb.String()
}

// Multipart is a multipart body. The zero value is not usable, use
// NewMultipart or ParseMultipart.
type Multipart struct {
	// Preamble is written before the first boundary if not empty.
	Preamble string

	parts       []*Part
	boundary    string
	subType     string
	contentType string
}

// NewMultipart creates an empty multipart/mixed body with a random boundary.
func NewMultipart() *Multipart {
	mp := &Multipart{boundary: GenerateBoundary()}
	mp.SetSubType("mixed")
	return mp
}

// ParseMultipart creates an empty multipart body from a Content-Type header
// value such as `multipart/alternative; boundary="abc"`. The Content-Type is
// kept as is until SetSubType is called.
//
// A *FormatError is returned if the value has no multipart subtype or no
// boundary.
func ParseMultipart(contentType string) (*Multipart, error) {
	var h message.Header
	h.Set("Content-Type", contentType)
	t, params, err := h.ContentType()
	if err != nil {
		return nil, &FormatError{ContentType: contentType, Reason: "cannot parse media type", Err: err}
	}

	typ, subType, _ := strings.Cut(t, "/")
	if typ != "multipart" || subType == "" {
		return nil, &FormatError{ContentType: contentType, Reason: "missing multipart subtype"}
	}
	boundary := params["boundary"]
	if boundary == "" {
		return nil, &FormatError{ContentType: contentType, Reason: "missing boundary"}
	}

	return &Multipart{
		boundary:    boundary,
		subType:     subType,
		contentType: contentType,
	}, nil
}

// ReadMultipart parses a multipart body. Nested multiparts are parsed
// recursively, other parts keep their encoded content. The preamble and the
// epilogue are discarded.
func ReadMultipart(contentType string, r io.Reader) (*Multipart, error) {
	mp, err := ParseMultipart(contentType)
	if err != nil {
		return nil, err
	}

	mr := textproto.NewMultipartReader(r, mp.boundary)
	for {
		p, err := mr.NextPart()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("mimepart: failed to read part: %w", err)
		}

		raw, err := io.ReadAll(p)
		if err != nil {
			return nil, fmt.Errorf("mimepart: failed to read part: %w", err)
		}

		part := &Part{Header: message.Header{Header: p.Header}}
		if t, _, _ := part.Header.ContentType(); strings.HasPrefix(t, "multipart/") {
			nested, err := ReadMultipart(part.Header.Get("Content-Type"), bytes.NewReader(raw))
			if err != nil {
				return nil, err
			}
			part.multipart = nested
		} else {
			part.raw = raw
		}
		mp.parts = append(mp.parts, part)
	}
	return mp, nil
}

// Boundary returns the boundary.
func (mp *Multipart) Boundary() string {
	return mp.boundary
}

// SubType returns the subtype, e.g. "mixed" or "alternative".
func (mp *Multipart) SubType() string {
	return mp.subType
}

// ContentType returns the Content-Type header value of the body.
func (mp *Multipart) ContentType() string {
	return mp.contentType
}

// SetSubType changes the subtype and regenerates the Content-Type.
func (mp *Multipart) SetSubType(subType string) {
	mp.subType = subType
	mp.contentType = fmt.Sprintf("multipart/%s; boundary=\"%s\"", subType, mp.boundary)
}

// AddPart appends parts.
func (mp *Multipart) AddPart(parts ...*Part) {
	mp.parts = append(mp.parts, parts...)
}

// Parts returns the parts in order. The slice is a copy.
func (mp *Multipart) Parts() []*Part {
	return append([]*Part(nil), mp.parts...)
}

// Count returns the number of parts.
func (mp *Multipart) Count() int {
	return len(mp.parts)
}

// Part returns the i-th part. It panics if i is out of range.
func (mp *Multipart) Part(i int) *Part {
	return mp.parts[i]
}

// RemovePart removes p and reports whether it was found.
func (mp *Multipart) RemovePart(p *Part) bool {
	for i, part := range mp.parts {
		if part == p {
			mp.parts = append(mp.parts[:i], mp.parts[i+1:]...)
			return true
		}
	}
	return false
}

// SetUsing7bitTransport re-encodes every part which is not 7-bit clean.
func (mp *Multipart) SetUsing7bitTransport() {
	for _, p := range mp.parts {
		p.SetUsing7bitTransport()
	}
}

// WriteTo writes the body: the preamble, a delimiter line before each part,
// and the closing delimiter. A body without parts is written as a single
// delimiter followed by the closing one.
func (mp *Multipart) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	bw := bufio.NewWriter(cw)
	delimiter := "--" + mp.boundary

	if mp.Preamble != "" {
		bw.WriteString(mp.Preamble)
		bw.WriteString("\r\n")
	}

	if len(mp.parts) == 0 {
		bw.WriteString(delimiter)
		bw.WriteString("\r\n")
	}

	for _, p := range mp.parts {
		bw.WriteString(delimiter)
		bw.WriteString("\r\n")
		if _, err := p.WriteTo(bw); err != nil {
			return cw.n, err
		}
		bw.WriteString("\r\n")
	}

	bw.WriteString(delimiter)
	bw.WriteString("--\r\n")
	err := bw.Flush()
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (cw *countWriter) Write(b []byte) (int, error) {
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	return n, err
}
