package responses

import (
	"strconv"

	"github.com/mailcore/go-imapcore"
)

// UIDPair associates the UID of a copied message in the source mailbox with
// its UID in the destination mailbox.
type UIDPair struct {
	Old, New uint64
}

// CopyUID is the data of a COPYUID response code.
// See RFC 4315 section 3.
type CopyUID struct {
	// UIDValidity of the destination mailbox, 0 if the server sent a value
	// which is not a number.
	UIDValidity uint32
	// Pairs holds the source/destination UIDs in the order the server listed
	// them.
	Pairs []UIDPair
}

// Mapping returns the old UID to new UID mapping, both as decimal strings.
func (c *CopyUID) Mapping() map[string]string {
	m := make(map[string]string, len(c.Pairs))
	for _, p := range c.Pairs {
		m[strconv.FormatUint(p.Old, 10)] = strconv.FormatUint(p.New, 10)
	}
	return m
}

// ParseCopyUID extracts the UID mapping from the completion of a UID COPY
// command, e.g. "x OK [COPYUID 1 1,3:5 7:10] Done". The source and
// destination sets are expanded and paired positionally; if they don't
// hold the same number of UIDs, or more than imap.MaxExpandedUIDs, false is
// returned.
func ParseCopyUID(r *Response) (*CopyUID, bool) {
	args, ok := CodeStrings(r, imap.CodeCopyUID, 3)
	if !ok {
		return nil, false
	}

	oldUIDs, newUIDs, err := imap.ExpandUIDPairs(args[1], args[2])
	if err != nil {
		return nil, false
	}

	data := &CopyUID{Pairs: make([]UIDPair, len(oldUIDs))}
	if v, err := imap.ParseNumber(args[0]); err == nil {
		data.UIDValidity = v
	}
	for i := range oldUIDs {
		data.Pairs[i] = UIDPair{Old: oldUIDs[i], New: newUIDs[i]}
	}
	return data, true
}
