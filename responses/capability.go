package responses

import (
	"strings"

	"github.com/mailcore/go-imapcore"
)

// ParseCapabilities returns the capabilities advertised by an untagged
// CAPABILITY response or by a CAPABILITY response code, upper-cased. The
// boolean is false if the server sent neither.
// See RFC 3501 section 7.2.1
func ParseCapabilities(r *Response) (map[string]bool, bool) {
	var fields []interface{}
	found := false
	for _, data := range r.Data(imap.Capability) {
		fields = append(fields, data...)
		found = true
	}
	for _, args := range r.UntaggedCodes(imap.CodeCapability) {
		fields = append(fields, args...)
		found = true
	}
	if args, ok := r.Code(imap.CodeCapability); ok {
		fields = append(fields, args...)
		found = true
	}
	if !found {
		return nil, false
	}
	return capSet(fields), true
}

// CapabilitiesFromStatus returns the capabilities of a status response
// carrying a CAPABILITY response code, such as the server greeting.
func CapabilitiesFromStatus(status *imap.StatusResp) (map[string]bool, bool) {
	if !strings.EqualFold(status.Code, imap.CodeCapability) {
		return nil, false
	}
	return capSet(status.Arguments), true
}

func capSet(fields []interface{}) map[string]bool {
	caps := make(map[string]bool, len(fields))
	for _, f := range fields {
		if c, ok := f.(string); ok {
			caps[strings.ToUpper(c)] = true
		}
	}
	return caps
}
