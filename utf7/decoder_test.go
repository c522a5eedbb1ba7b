package utf7_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/utf7"
)

func TestDecode_MailboxNames(t *testing.T) {
	tests := map[string]string{
		"INBOX":                              "INBOX",
		"Entw&APw-rfe":                       "Entwürfe",
		"Archiv/2024/M&AOQ-rz":               "Archiv/2024/März",
		"[Gmail]/Gesendet":                   "[Gmail]/Gesendet",
		"&BB4EQgQ,BEAEMAQyBDsENQQ9BD0ESwQ1-": "Отправленные",
		"Tom &- Jerry":                       "Tom & Jerry",
		"&ZeVnLIqe-/&U,BTFw-":                "日本語/台北",
		"&2D3eCg- Fun":                       "\U0001f60a Fun",
	}

	for in, want := range tests {
		out, err := utf7.Decode(in)
		require.NoError(t, err, "Decode(%+q)", in)
		assert.Equal(t, want, out, "Decode(%+q)", in)
	}
}

func TestDecode_Long(t *testing.T) {
	ascii := strings.Repeat("a", 120)
	out, err := utf7.Decode(ascii + " &2D3eCg- &2D3eCw-")
	require.NoError(t, err)
	assert.Equal(t, ascii+" \U0001f60a \U0001f60b", out)

	out, err = utf7.Decode("0000 &" + strings.Repeat("MEIwQjBC", 12) + "MEI- 0000")
	require.NoError(t, err)
	assert.Equal(t, "0000 "+strings.Repeat("あ", 37)+" 0000", out)
}

func TestDecode_Invalid(t *testing.T) {
	tests := map[string][]string{
		"raw non-printable":    {"\x00", "\x1F", "abc\n", "abc\x7Fxyz"},
		"raw 8-bit":            {"�", "М", "Entwürfe"},
		"bad alphabet":         {"&/+8-", "&*-", "&ZeVnLIqe -"},
		"line break in base64": {"&ZeVnLIqe\r\n-", "&ZeVn\r\n\r\nLIqe-"},
		"padding":              {"&AAAAHw=-", "&AAAAHwB,AIA==-"},
		"truncated":            {"&2A-", "&AAAAHwB,A-", "&AAAAHwB,AI==-"},
		"unterminated shift":   {"&", "&Jjo", "Jjo&", "&Jjo!", "abc&Jjo"},
		"adjacent shifts":      {"&AGE-&Jjo-", "&U,BTFw-&ZeVnLIqe-"},
		"encoded ASCII":        {"&AGE-", "&ACY-", "&AGgAZQBsAGwAbw-"},
		"lone surrogate":       {"&2AA-", "&3AA-", "&2AAAQQ-", "&3ADYAA-"},
	}

	for name, inputs := range tests {
		t.Run(name, func(t *testing.T) {
			for _, in := range inputs {
				out, err := utf7.Decode(in)
				assert.Error(t, err, "Decode(%+q)", in)
				assert.Empty(t, out, "Decode(%+q)", in)
			}
		})
	}
}

func TestEncode_Quotable(t *testing.T) {
	for _, name := range []string{"Entwürfe", "Tom & Jerry", "line\r\nbreak", "nul\x00", "Отправленные"} {
		encoded, err := utf7.Encode(name)
		require.NoError(t, err)
		assert.True(t, imap.IsQuotable(encoded), "Encode(%+q) = %+q", name, encoded)

		decoded, err := utf7.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, name, decoded)
	}
}
