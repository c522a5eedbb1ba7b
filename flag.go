package imap

import (
	"sort"
	"strings"
)

// Flag is a message state bit known to the mail store.
type Flag int

const (
	FlagSeen Flag = iota
	FlagDeleted
	FlagAnswered
	FlagFlagged
	FlagDraft
	// FlagForwarded is the "$Forwarded" keyword. Servers only accept it if
	// they allow clients to create keywords.
	FlagForwarded
)

// System flags and keywords as they appear on the wire.
const (
	SeenFlag      = "\\Seen"
	DeletedFlag   = "\\Deleted"
	AnsweredFlag  = "\\Answered"
	FlaggedFlag   = "\\Flagged"
	DraftFlag     = "\\Draft"
	ForwardedFlag = "$Forwarded"

	// TryCreateFlag in PERMANENTFLAGS means clients can create keywords.
	TryCreateFlag = "\\*"
)

var flagNames = map[Flag]string{
	FlagSeen:      SeenFlag,
	FlagDeleted:   DeletedFlag,
	FlagAnswered:  AnsweredFlag,
	FlagFlagged:   FlaggedFlag,
	FlagDraft:     DraftFlag,
	FlagForwarded: ForwardedFlag,
}

// String returns the IMAP name of the flag.
func (f Flag) String() string {
	return flagNames[f]
}

// ParseFlag maps a flag name to a Flag. Matching is case-insensitive and the
// leading backslash of system flags is optional, so both "\Seen" and "seen"
// are accepted.
func ParseFlag(name string) (Flag, bool) {
	for f, n := range flagNames {
		if strings.EqualFold(n, name) || strings.EqualFold(strings.TrimLeft(n, "\\$"), name) {
			return f, true
		}
	}
	return 0, false
}

// FormatFlags renders flags as a space-separated list of IMAP flag names, in
// a fixed order and without duplicates. FlagForwarded is left out unless
// canCreateForwarded is set.
func FormatFlags(flags []Flag, canCreateForwarded bool) string {
	sorted := append([]Flag(nil), flags...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	names := make([]string, 0, len(sorted))
	for i, f := range sorted {
		if i > 0 && sorted[i-1] == f {
			continue
		}
		if f == FlagForwarded && !canCreateForwarded {
			continue
		}
		if name, ok := flagNames[f]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, " ")
}

// CanCreateKeywords reports whether a PERMANENTFLAGS list allows clients to
// create new keywords such as $Forwarded.
func CanCreateKeywords(permanentFlags []string) bool {
	for _, f := range permanentFlags {
		if f == TryCreateFlag {
			return true
		}
	}
	return false
}
