package imap_test

import (
	"testing"

	"github.com/mailcore/go-imapcore"
)

func TestFormatFlags(t *testing.T) {
	tests := []struct {
		flags              []imap.Flag
		canCreateForwarded bool
		want               string
	}{
		{nil, false, ""},
		{[]imap.Flag{imap.FlagSeen}, false, `\Seen`},
		{[]imap.Flag{imap.FlagFlagged, imap.FlagSeen, imap.FlagDeleted}, false, `\Seen \Deleted \Flagged`},
		{[]imap.Flag{imap.FlagAnswered, imap.FlagAnswered}, false, `\Answered`},
		{[]imap.Flag{imap.FlagDraft}, false, `\Draft`},
		{[]imap.Flag{imap.FlagForwarded, imap.FlagSeen}, false, `\Seen`},
		{[]imap.Flag{imap.FlagForwarded, imap.FlagSeen}, true, `\Seen $Forwarded`},
		{[]imap.Flag{imap.Flag(42)}, true, ""},
	}

	for _, test := range tests {
		if got := imap.FormatFlags(test.flags, test.canCreateForwarded); got != test.want {
			t.Errorf("FormatFlags(%v, %v) = %q, want %q", test.flags, test.canCreateForwarded, got, test.want)
		}
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name string
		flag imap.Flag
		ok   bool
	}{
		{`\Seen`, imap.FlagSeen, true},
		{"seen", imap.FlagSeen, true},
		{`\DELETED`, imap.FlagDeleted, true},
		{"$Forwarded", imap.FlagForwarded, true},
		{"forwarded", imap.FlagForwarded, true},
		{"Flagged", imap.FlagFlagged, true},
		{`\Recent`, 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		f, ok := imap.ParseFlag(test.name)
		if ok != test.ok || (ok && f != test.flag) {
			t.Errorf("ParseFlag(%q) = %v, %v, want %v, %v", test.name, f, ok, test.flag, test.ok)
		}
	}
}

func TestFlag_String(t *testing.T) {
	if s := imap.FlagSeen.String(); s != imap.SeenFlag {
		t.Errorf("FlagSeen.String() = %q", s)
	}
	if s := imap.FlagForwarded.String(); s != imap.ForwardedFlag {
		t.Errorf("FlagForwarded.String() = %q", s)
	}
}

func TestCanCreateKeywords(t *testing.T) {
	if imap.CanCreateKeywords([]string{`\Seen`, `\Deleted`}) {
		t.Error("CanCreateKeywords() = true without \\*")
	}
	if !imap.CanCreateKeywords([]string{`\Seen`, `\*`}) {
		t.Error("CanCreateKeywords() = false with \\*")
	}
}
