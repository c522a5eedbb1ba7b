// Package responses interprets the response stream of a single IMAP command.
//
// Extractors in this package never fail: a missing, truncated or malformed
// response yields "no result" (a false ok value), since deviations from
// third-party servers are common and must not abort the caller.
package responses

import (
	"strings"

	"github.com/mailcore/go-imapcore"
)

// Response holds the response records received for one command invocation,
// in the order the server sent them.
type Response struct {
	// Tag is the tag of the command which triggered the responses.
	Tag string
	// Resps holds the records. Records tagged with neither Tag nor "*" do not
	// belong to this invocation and are ignored by all accessors.
	Resps []imap.Resp
}

// New creates a Response.
func New(tag string, resps []imap.Resp) *Response {
	return &Response{Tag: tag, Resps: resps}
}

// Parse builds a Response from raw response lines.
func Parse(tag string, lines ...string) (*Response, error) {
	resps := make([]imap.Resp, 0, len(lines))
	for _, line := range lines {
		resp, err := imap.ParseResp(line)
		if err != nil {
			return nil, err
		}
		resps = append(resps, resp)
	}
	return New(tag, resps), nil
}

// Completion returns the status response which completed the command.
func (r *Response) Completion() (*imap.StatusResp, bool) {
	for i := len(r.Resps) - 1; i >= 0; i-- {
		if status, ok := r.Resps[i].(*imap.StatusResp); ok && status.Tag == r.Tag && r.Tag != "*" {
			return status, true
		}
	}
	return nil, false
}

// Err returns the error carried by the completion: an *imap.Error for NO and
// BAD, ErrNoCompletion if there is none.
func (r *Response) Err() error {
	status, ok := r.Completion()
	if !ok {
		return ErrNoCompletion
	}
	return status.Err()
}

// Untagged returns the untagged records.
func (r *Response) Untagged() []imap.Resp {
	var untagged []imap.Resp
	for _, resp := range r.Resps {
		switch resp := resp.(type) {
		case *imap.StatusResp:
			if resp.Tag == "*" {
				untagged = append(untagged, resp)
			}
		case *imap.DataResp:
			if resp.Tag == "*" {
				untagged = append(untagged, resp)
			}
		}
	}
	return untagged
}

// Data returns the fields of every untagged data response named name, e.g.
// "FLAGS" or "EXISTS". For numbered responses the number is the first field.
func (r *Response) Data(name string) [][]interface{} {
	var data [][]interface{}
	for _, resp := range r.Untagged() {
		dataResp, ok := resp.(*imap.DataResp)
		if !ok {
			continue
		}
		if n, fields, ok := imap.ParseNamedResp(dataResp); ok && strings.EqualFold(n, name) {
			data = append(data, fields)
		}
	}
	return data
}

// Code returns the response code arguments of the completion, provided it is
// an OK response whose code is keyword.
func (r *Response) Code(keyword string) ([]interface{}, bool) {
	status, ok := r.Completion()
	if !ok || status.Type != imap.StatusRespOk {
		return nil, false
	}
	if status.Code == "" || !strings.EqualFold(status.Code, keyword) {
		return nil, false
	}
	return status.Arguments, true
}

// UntaggedCodes returns the arguments of every untagged status response
// carrying the code keyword, e.g. "* OK [UIDNEXT 4392]".
func (r *Response) UntaggedCodes(keyword string) [][]interface{} {
	var codes [][]interface{}
	for _, resp := range r.Untagged() {
		if status, ok := resp.(*imap.StatusResp); ok && strings.EqualFold(status.Code, keyword) {
			codes = append(codes, status.Arguments)
		}
	}
	return codes
}

// CodeStrings is the generic "keyword + n string arguments" extractor. It
// returns the first n arguments of the completion's response code, or false
// if the completion is not OK, carries another code, has fewer than n
// arguments or if one of them is not a string.
func CodeStrings(r *Response, keyword string, n int) ([]string, bool) {
	args, ok := r.Code(keyword)
	if !ok || len(args) < n {
		return nil, false
	}

	strs := make([]string, n)
	for i := range strs {
		if strs[i], ok = args[i].(string); !ok {
			return nil, false
		}
	}
	return strs, true
}
