package imap_test

import (
	"bytes"
	"testing"

	"github.com/mailcore/go-imapcore"
)

func TestQuote(t *testing.T) {
	tests := map[string]string{
		"":           `""`,
		"hello":      `"hello"`,
		`say "hi"`:   `"say \"hi\""`,
		`back\slash`: `"back\\slash"`,
		"with space": `"with space"`,
	}
	for s, want := range tests {
		if got := imap.Quote(s); got != want {
			t.Errorf("Quote(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestFormatAstring(t *testing.T) {
	tests := map[string]string{
		"INBOX":        "INBOX",
		"Archive/2024": "Archive/2024",
		"Entw&APw-rfe": "Entw&APw-rfe",
		"":             `""`,
		"NIL":          `"NIL"`,
		"nil":          `"nil"`,
		"My Folder":    `"My Folder"`,
		"a(b":          `"a(b"`,
		"a%":           `"a%"`,
		"a*":           `"a*"`,
		"a]":           `"a]"`,
		"a{3}":         `"a{3}"`,
		`a"b`:          `"a\"b"`,
	}
	for s, want := range tests {
		if got := imap.FormatAstring(s); got != want {
			t.Errorf("FormatAstring(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestIsQuotable(t *testing.T) {
	tests := map[string]bool{
		"":                      true,
		"pass word":             true,
		"tab\there":             true,
		`say "hi"`:              true,
		"Entw&APw-rfe":          true,
		"pw\r\nT9 DELETE INBOX": false,
		"line\nbreak":           false,
		"carriage\rreturn":      false,
		"nul\x00":               false,
		"pässword":              false,
		"\x80":                  false,
	}
	for s, want := range tests {
		if got := imap.IsQuotable(s); got != want {
			t.Errorf("IsQuotable(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestLiteralPrefix(t *testing.T) {
	tests := map[string]string{
		"":                      "{0}",
		"pässword":              "{9}",
		"pw\r\nT9 DELETE INBOX": "{19}",
	}
	for s, want := range tests {
		if got := imap.LiteralPrefix(s); got != want {
			t.Errorf("LiteralPrefix(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestWriter_WriteCommand(t *testing.T) {
	var b bytes.Buffer
	w := imap.NewWriter(&b)

	if err := w.WriteCommand("T1", "CAPABILITY"); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteLine("dGVzdA=="); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "T1 CAPABILITY\r\ndGVzdA==\r\n"; got != want {
		t.Errorf("Written %q, want %q", got, want)
	}
}
