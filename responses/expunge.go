package responses

import (
	"github.com/mailcore/go-imapcore"
)

// ParseExpunge returns the sequence numbers of the untagged EXPUNGE
// responses, in order.
// See RFC 3501 section 7.4.1
func ParseExpunge(r *Response) []uint32 {
	var seqNums []uint32
	for _, fields := range r.Data("EXPUNGE") {
		if len(fields) == 0 {
			continue
		}
		if seqNum, err := imap.ParseNumber(fields[0]); err == nil {
			seqNums = append(seqNums, seqNum)
		}
	}
	return seqNums
}
