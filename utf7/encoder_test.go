package utf7_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcore/go-imapcore/utf7"
)

var encode = []struct {
	in  string
	out string
}{
	{"", ""},
	{"INBOX", "INBOX"},
	{"Sent Items", "Sent Items"},
	{"&", "&-"},
	{"a&b", "a&-b"},
	{"\x19", "&ABk-"},
	{"ÿ", "&AP8-"},
	{"Entwürfe", "Entw&APw-rfe"},
	{"~peter/mail/台北/日本語", "~peter/mail/&U,BTFw-/&ZeVnLIqe-"},
	{"\U0001f60a", "&2D3eCg-"},
}

func TestEncode(t *testing.T) {
	for _, test := range encode {
		out, err := utf7.Encode(test.in)
		require.NoError(t, err, "Encode(%+q)", test.in)
		assert.Equal(t, test.out, out, "Encode(%+q)", test.in)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, test := range encode {
		in, err := utf7.Decode(test.out)
		require.NoError(t, err, "Decode(%+q)", test.out)
		assert.Equal(t, test.in, in)
	}
}
