package mimepart

import (
	"bytes"
	"io"
	"strings"

	"github.com/emersion/go-message"
	"github.com/emersion/go-message/textproto"
)

// Part is a body part of a multipart.
//
// Its content is one of: decoded data, encoded on write according to the
// Content-Transfer-Encoding header; encoded data read from a message, written
// back verbatim; or a nested multipart.
type Part struct {
	Header message.Header

	body      []byte
	raw       []byte
	multipart *Multipart
}

// NewTextPart creates a text/<subType> part encoded as UTF-8.
func NewTextPart(subType, text string) *Part {
	p := &Part{body: []byte(text)}
	p.Header.SetContentType("text/"+subType, map[string]string{"charset": "utf-8"})
	if is7bit(p.body) {
		p.Header.Set("Content-Transfer-Encoding", "7bit")
	} else {
		p.Header.Set("Content-Transfer-Encoding", "8bit")
	}
	return p
}

// NewAttachmentPart creates a base64-encoded attachment.
func NewAttachmentPart(contentType, filename string, data []byte) *Part {
	p := &Part{body: data}
	p.Header.SetContentType(contentType, map[string]string{"name": filename})
	p.Header.SetContentDisposition("attachment", map[string]string{"filename": filename})
	p.Header.Set("Content-Transfer-Encoding", "base64")
	return p
}

// NewMultipartPart creates a part wrapping a nested multipart, e.g. a
// multipart/alternative inside a multipart/mixed body.
func NewMultipartPart(mp *Multipart) *Part {
	p := &Part{multipart: mp}
	p.Header.Set("Content-Type", mp.ContentType())
	return p
}

// Multipart returns the nested multipart, if any.
func (p *Part) Multipart() (*Multipart, bool) {
	return p.multipart, p.multipart != nil
}

// SetUsing7bitTransport switches 8bit and binary parts to quoted-printable
// for text and base64 otherwise. Nested multiparts are handled recursively.
func (p *Part) SetUsing7bitTransport() {
	if p.multipart != nil {
		p.multipart.SetUsing7bitTransport()
		return
	}

	switch strings.ToLower(p.Header.Get("Content-Transfer-Encoding")) {
	case "8bit", "binary":
	default:
		return
	}

	if p.raw != nil {
		// 8bit and binary content is not transformed
		p.body, p.raw = p.raw, nil
	}

	t, _, _ := p.Header.ContentType()
	if strings.HasPrefix(t, "text/") {
		p.Header.Set("Content-Transfer-Encoding", "quoted-printable")
	} else {
		p.Header.Set("Content-Transfer-Encoding", "base64")
	}
}

// WriteTo writes the header and the encoded content of the part.
func (p *Part) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}

	switch {
	case p.multipart != nil:
		h := p.Header.Header.Copy()
		h.Set("Content-Type", p.multipart.ContentType())
		if err := textproto.WriteHeader(cw, h); err != nil {
			return cw.n, err
		}
		_, err := p.multipart.WriteTo(cw)
		return cw.n, err
	case p.raw != nil:
		if err := textproto.WriteHeader(cw, p.Header.Header); err != nil {
			return cw.n, err
		}
		_, err := cw.Write(p.raw)
		return cw.n, err
	default:
		mw, err := message.CreateWriter(cw, p.Header)
		if err != nil {
			return cw.n, err
		}
		if _, err := mw.Write(p.body); err != nil {
			return cw.n, err
		}
		err = mw.Close()
		return cw.n, err
	}
}

// Entity returns the part as a go-message entity, with its body decoded.
// Unknown transfer encodings and charsets are not fatal: the entity body is
// then left as is.
func (p *Part) Entity() (*message.Entity, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return nil, err
	}
	e, err := message.Read(&buf)
	if message.IsUnknownEncoding(err) || message.IsUnknownCharset(err) {
		return e, nil
	}
	return e, err
}

// Bytes returns the decoded content of the part. It is empty for a nested
// multipart.
func (p *Part) Bytes() ([]byte, error) {
	if p.multipart != nil {
		return nil, nil
	}
	if p.raw == nil {
		return append([]byte(nil), p.body...), nil
	}
	e, err := p.Entity()
	if err != nil {
		return nil, err
	}
	return io.ReadAll(e.Body)
}

func is7bit(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 || c == 0 {
			return false
		}
	}
	return true
}
