package imap

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
	"strings"
)

const (
	sp            = ' '
	cr            = '\r'
	lf            = '\n'
	dquote        = '"'
	literalStart  = '{'
	literalEnd    = '}'
	listStart     = '('
	listEnd       = ')'
	respCodeStart = '['
	respCodeEnd   = ']'
)

const (
	crlf    = "\r\n"
	nilAtom = "NIL"
)

// ParseNumber converts a field to a number.
func ParseNumber(f interface{}) (uint32, error) {
	s, ok := f.(string)
	if !ok {
		return 0, newParseError("imap: number is not a string")
	}

	nbr, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}

	return uint32(nbr), nil
}

// ParseStringList converts a field list to a string list.
func ParseStringList(f interface{}) ([]string, error) {
	fields, ok := f.([]interface{})
	if !ok {
		return nil, newParseError("imap: string list is not a list")
	}

	list := make([]string, len(fields))
	for i, f := range fields {
		if list[i], ok = f.(string); !ok {
			return nil, newParseError("imap: string list contains a non-string")
		}
	}
	return list, nil
}

// Reader decodes IMAP response syntax. Fields are returned as string (atoms
// and quoted strings), nil (NIL), *Literal or []interface{} (lists).
type Reader struct {
	r *bufio.Reader

	inRespCode bool
}

// NewReader creates a Reader. If r is not already a *bufio.Reader it is
// wrapped in one.
func NewReader(r io.Reader) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{r: br}
}

func (r *Reader) peek() (byte, error) {
	b, err := r.r.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) expect(want byte, msg string) error {
	b, err := r.r.ReadByte()
	if err != nil {
		return err
	}
	if b != want {
		return newParseError(msg)
	}
	return nil
}

func (r *Reader) ReadSp() error {
	return r.expect(sp, "Not a space")
}

// ReadCrlf reads a line ending. A bare LF is tolerated.
func (r *Reader) ReadCrlf() error {
	b, err := r.r.ReadByte()
	if err != nil {
		return err
	}
	if b == lf {
		return nil
	}
	if b != cr {
		return newParseError("Line doesn't end with a CR")
	}
	return r.expect(lf, "Line doesn't end with a LF")
}

func (r *Reader) ReadAtom() (interface{}, error) {
	var sb strings.Builder
	brackets := 0
	for {
		b, err := r.peek()
		if err != nil {
			return nil, err
		}

		if b == cr || b == lf {
			break
		}
		if brackets == 0 {
			if b == sp || b == listEnd {
				break
			}
			if b == listStart || b == literalStart || b == dquote {
				return nil, newParseError("Atom contains forbidden char: " + string(b))
			}
		}
		if b == respCodeEnd {
			if brackets == 0 {
				if r.inRespCode {
					break
				}
				return nil, newParseError("Atom contains bad brackets nesting")
			}
			brackets--
		} else if b == respCodeStart {
			brackets++
		}

		r.r.ReadByte()
		sb.WriteByte(b)
	}

	if sb.Len() == 0 {
		return nil, newParseError("Atom is empty")
	}
	atom := sb.String()
	if atom == nilAtom {
		return nil, nil
	}
	return atom, nil
}

func (r *Reader) ReadLiteral() (*Literal, error) {
	if err := r.expect(literalStart, "Literal string doesn't start with an open brace"); err != nil {
		return nil, err
	}

	lstr, err := r.r.ReadString(literalEnd)
	if err != nil {
		return nil, err
	}
	lstr = strings.TrimSuffix(lstr, string(literalEnd))

	l, err := strconv.Atoi(lstr)
	if err != nil || l < 0 {
		return nil, newParseError("Cannot parse literal length: " + lstr)
	}

	if err := r.ReadCrlf(); err != nil {
		return nil, err
	}

	// the buffer grows with the data actually received, not with the
	// announced length
	var b bytes.Buffer
	if n, err := io.CopyN(&b, r.r, int64(l)); err != nil {
		if err == io.EOF && n < int64(l) {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return NewLiteral(b.Bytes()), nil
}

func (r *Reader) ReadQuotedString() (string, error) {
	if err := r.expect(dquote, "Quoted string doesn't start with a double quote"); err != nil {
		return "", err
	}

	var sb strings.Builder
	escaped := false
	for {
		b, err := r.r.ReadByte()
		if err != nil {
			return "", err
		}
		if escaped {
			if b != '\\' && b != dquote {
				return "", newParseError("Quoted string contains an invalid escape sequence")
			}
			sb.WriteByte(b)
			escaped = false
			continue
		}

		switch b {
		case '\\':
			escaped = true
		case dquote:
			return sb.String(), nil
		case cr, lf:
			return "", newParseError("Quoted string contains a line break")
		default:
			sb.WriteByte(b)
		}
	}
}

// ReadFields reads space-separated fields up to, but not including, the end
// of the line, the end of the enclosing list or the end of the enclosing
// response code.
func (r *Reader) ReadFields() ([]interface{}, error) {
	var fields []interface{}
	for {
		b, err := r.peek()
		if err != nil {
			return nil, err
		}
		if r.atFieldsEnd(b) {
			return fields, nil
		}

		var field interface{}
		switch b {
		case literalStart:
			field, err = r.ReadLiteral()
		case dquote:
			field, err = r.ReadQuotedString()
		case listStart:
			field, err = r.ReadList()
		default:
			field, err = r.ReadAtom()
		}
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		if b, err = r.peek(); err != nil {
			return nil, err
		}
		switch {
		case b == sp:
			r.r.ReadByte()
		case r.atFieldsEnd(b):
			return fields, nil
		case b == listStart:
			// "(a)(b)" is tolerated
		default:
			return nil, newParseError("Fields are not separated by a space")
		}
	}
}

func (r *Reader) atFieldsEnd(b byte) bool {
	switch b {
	case cr, lf, listEnd:
		return true
	case respCodeEnd:
		return r.inRespCode
	}
	return false
}

func (r *Reader) ReadList() ([]interface{}, error) {
	if err := r.expect(listStart, "List doesn't start with an open parenthesis"); err != nil {
		return nil, err
	}

	fields, err := r.ReadFields()
	if err != nil {
		return nil, err
	}
	if fields == nil {
		fields = []interface{}{}
	}

	if err := r.expect(listEnd, "List doesn't end with a close parenthesis"); err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *Reader) ReadLine() ([]interface{}, error) {
	fields, err := r.ReadFields()
	if err != nil {
		return nil, err
	}
	return fields, r.ReadCrlf()
}

// ReadRespCode reads a bracketed response code. The first field is returned
// as code, the remaining ones as fields.
func (r *Reader) ReadRespCode() (code string, fields []interface{}, err error) {
	if err = r.expect(respCodeStart, "Response code doesn't start with an open bracket"); err != nil {
		return
	}

	r.inRespCode = true
	fields, err = r.ReadFields()
	r.inRespCode = false
	if err != nil {
		return
	}

	if len(fields) == 0 {
		err = newParseError("Response code doesn't contain any field")
		return
	}

	code, ok := fields[0].(string)
	if !ok || code == "" {
		err = newParseError("Response code doesn't start with a string atom")
		return
	}
	fields = fields[1:]

	err = r.expect(respCodeEnd, "Response code doesn't end with a close bracket")
	return
}

// ReadInfo reads the human-readable text up to the end of the line.
func (r *Reader) ReadInfo() (string, error) {
	info, err := r.r.ReadString(lf)
	if err != nil {
		return "", err
	}
	info = strings.TrimSuffix(info, string(lf))
	info = strings.TrimSuffix(info, string(cr))
	return strings.TrimLeft(info, " "), nil
}
