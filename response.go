package imap

import (
	"bufio"
	"strings"
)

// StatusRespType is a generic status response type.
type StatusRespType string

const (
	// The OK response indicates an information message from the server. When
	// tagged, it indicates successful completion of the associated command.
	StatusRespOk StatusRespType = "OK"

	// The NO response indicates an operational error message from the
	// server. When tagged, it indicates unsuccessful completion of the
	// associated command.
	StatusRespNo StatusRespType = "NO"

	// The BAD response indicates an error message from the server. When
	// tagged, it reports a protocol-level error in the client's command.
	StatusRespBad StatusRespType = "BAD"

	// The PREAUTH response is always untagged, and is one of three
	// possible greetings at connection startup.
	StatusRespPreauth StatusRespType = "PREAUTH"

	// The BYE response indicates that the server is about to close the
	// connection.
	StatusRespBye StatusRespType = "BYE"
)

func isStatusRespType(s string) bool {
	switch StatusRespType(strings.ToUpper(s)) {
	case StatusRespOk, StatusRespNo, StatusRespBad, StatusRespPreauth, StatusRespBye:
		return true
	}
	return false
}

// Response codes.
// See https://www.iana.org/assignments/imap-response-codes/imap-response-codes.xhtml
const (
	CodeAlert          = "ALERT"
	CodeCapability     = "CAPABILITY"
	CodeParse          = "PARSE"
	CodePermanentFlags = "PERMANENTFLAGS"
	CodeReadOnly       = "READ-ONLY"
	CodeReadWrite      = "READ-WRITE"
	CodeTryCreate      = "TRYCREATE"
	CodeUIDNext        = "UIDNEXT"
	CodeUIDValidity    = "UIDVALIDITY"
	CodeUnseen         = "UNSEEN"

	// UIDPLUS, RFC 4315
	CodeAppendUID = "APPENDUID"
	CodeCopyUID   = "COPYUID"
)

// Resp is a response record: *StatusResp, *DataResp or *ContinuationReq.
type Resp interface {
	resp()
}

// StatusResp is a status response.
// See RFC 3501 section 7.1
type StatusResp struct {
	// The response tag. "*" for untagged responses.
	Tag string

	// The status type.
	Type StatusRespType

	// The response code, if any.
	Code string

	// Arguments provided with the response code.
	Arguments []interface{}

	// The human-readable text.
	Info string
}

func (*StatusResp) resp() {}

// Tagged reports whether the response completes a command.
func (r *StatusResp) Tagged() bool {
	return r.Tag != "*"
}

// Err returns an *Error if this status is NO or BAD, nil otherwise.
func (r *StatusResp) Err() error {
	if r.Type == StatusRespNo || r.Type == StatusRespBad {
		return (*Error)(r)
	}
	return nil
}

// DataResp is a response carrying data, e.g. "* 23 EXISTS".
type DataResp struct {
	// The response tag, usually "*".
	Tag string

	// The parsed fields.
	Fields []interface{}
}

func (*DataResp) resp() {}

// ParseNamedResp tries to parse a named data response, e.g. "* FLAGS (...)"
// or "* 42 EXISTS". For the numbered form, the number is returned as the first
// field.
func ParseNamedResp(resp *DataResp) (name string, fields []interface{}, ok bool) {
	if len(resp.Fields) == 0 {
		return
	}

	// Some responses (e.g. EXISTS) have their number before their name
	if len(resp.Fields) > 1 {
		if _, err := ParseNumber(resp.Fields[0]); err == nil {
			if name, ok = resp.Fields[1].(string); ok {
				fields = append([]interface{}{resp.Fields[0]}, resp.Fields[2:]...)
				name = strings.ToUpper(name)
				return
			}
		}
	}

	if name, ok = resp.Fields[0].(string); ok {
		name = strings.ToUpper(name)
		fields = resp.Fields[1:]
	}
	return
}

// ContinuationReq is a continuation request, e.g. "+ send literal".
type ContinuationReq struct {
	Info string
}

func (*ContinuationReq) resp() {}

// ReadResp reads a single response record.
func ReadResp(r *Reader) (Resp, error) {
	b, err := r.peek()
	if err != nil {
		return nil, err
	}
	if b == '+' {
		r.r.ReadByte()
		info, err := r.ReadInfo()
		if err != nil {
			return nil, err
		}
		return &ContinuationReq{Info: info}, nil
	}

	atom, err := r.ReadAtom()
	if err != nil {
		return nil, err
	}
	tag, ok := atom.(string)
	if !ok {
		return nil, newParseError("Response tag is not an atom")
	}

	if err := r.ReadSp(); err != nil {
		return nil, err
	}

	// A status response is a status word followed by a space. "x OK" alone
	// is read as data.
	var fields []interface{}
	if b, err := r.peek(); err == nil && b != listStart && b != literalStart && b != dquote {
		atom, err := r.ReadAtom()
		if err != nil {
			return nil, err
		}
		fields = append(fields, atom)

		name, _ := atom.(string)
		if b, err := r.peek(); err == nil && b == sp && isStatusRespType(name) {
			r.r.ReadByte()
			return readStatusResp(r, tag, StatusRespType(strings.ToUpper(name)))
		}
		if b, err := r.peek(); err == nil && b == sp {
			r.r.ReadByte()
		}
	}

	remaining, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	return &DataResp{Tag: tag, Fields: append(fields, remaining...)}, nil
}

func readStatusResp(r *Reader, tag string, typ StatusRespType) (*StatusResp, error) {
	info, err := r.ReadInfo()
	if err != nil {
		return nil, err
	}

	resp := &StatusResp{Tag: tag, Type: typ, Info: info}
	if !strings.HasPrefix(info, string(respCodeStart)) {
		return resp, nil
	}

	// A malformed code is dropped, the line is already consumed.
	codeReader := NewReader(strings.NewReader(info + crlf))
	code, args, err := codeReader.ReadRespCode()
	if err != nil {
		if end := strings.IndexByte(info, respCodeEnd); end >= 0 {
			resp.Info = strings.TrimLeft(info[end+1:], " ")
		}
		return resp, nil
	}
	if resp.Info, err = codeReader.ReadInfo(); err != nil {
		return nil, err
	}
	resp.Code = strings.ToUpper(code)
	resp.Arguments = args
	return resp, nil
}

// ParseResp parses a single response line. The trailing CRLF is optional.
func ParseResp(line string) (Resp, error) {
	if !strings.HasSuffix(line, "\n") {
		line += crlf
	}
	return ReadResp(NewReader(bufio.NewReader(strings.NewReader(line))))
}
