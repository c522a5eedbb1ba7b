package responses_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcore/go-imapcore/responses"
)

func parseResponse(t *testing.T, lines ...string) *responses.Response {
	t.Helper()
	resp, err := responses.Parse("x", lines...)
	require.NoError(t, err)
	return resp
}

func TestParseCopyUID(t *testing.T) {
	resp := parseResponse(t, "x OK [COPYUID 1 1,3:5 7:10] Success")

	data, ok := responses.ParseCopyUID(resp)
	require.True(t, ok)
	assert.Equal(t, uint32(1), data.UIDValidity)
	assert.Equal(t, map[string]string{"1": "7", "3": "8", "4": "9", "5": "10"}, data.Mapping())
	assert.Equal(t, []responses.UIDPair{{1, 7}, {3, 8}, {4, 9}, {5, 10}}, data.Pairs)
}

func TestParseCopyUID_KeepsGroupOrder(t *testing.T) {
	resp := parseResponse(t, "x OK [COPYUID 38505 304,319:320,100 3956:3958,4000] Done")

	data, ok := responses.ParseCopyUID(resp)
	require.True(t, ok)
	assert.Equal(t, []responses.UIDPair{{304, 3956}, {319, 3957}, {320, 3958}, {100, 4000}}, data.Pairs)
}

func TestParseCopyUID_AfterUntaggedData(t *testing.T) {
	resp := parseResponse(t,
		"* 3 EXISTS",
		"* OK [COPYUID 9 9 9] not the completion",
		"x OK [COPYUID 2 4 12] Done",
	)

	data, ok := responses.ParseCopyUID(resp)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"4": "12"}, data.Mapping())
}

func TestParseCopyUID_NoResult(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"untagged", "* OK [COPYUID 1 1,3:5 7:10] Success"},
		{"other tag", "y OK [COPYUID 1 1,3:5 7:10] Success"},
		{"too short", "x OK"},
		{"not OK", "x BYE Logout"},
		{"NO", "x NO [COPYUID 1 1 2] Failed"},
		{"no response code", "x OK Success"},
		{"empty response code", "x OK [] Success"},
		{"unterminated response code", "x OK [COPYUID 1 1 2 Success"},
		{"response code too short", "x OK [A B C] Success"},
		{"other response code", "x OK [A B C D] Success"},
		{"non-string argument one", "x OK [COPYUID () C D] Success"},
		{"non-string argument two", "x OK [COPYUID B () D] Success"},
		{"non-string argument three", "x OK [COPYUID B C ()] Success"},
		{"non-number arguments", "x OK [COPYUID B C D] Success"},
		{"unbalanced arguments", "x OK [COPYUID B 1 1,2] Success"},
		{"zero UID", "x OK [COPYUID 1 0 1] Success"},
		{"dynamic range", "x OK [COPYUID 1 1:* 5:6] Success"},
		{"empty group", "x OK [COPYUID 1 1,,2 5:6] Success"},
		{"huge unbalanced range", "x OK [COPYUID 1 1:4294967295 1] Success"},
		{"huge balanced range", "x OK [COPYUID 1 1:4294967295 1:4294967295] Success"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data, ok := responses.ParseCopyUID(parseResponse(t, tc.line))
			assert.False(t, ok)
			assert.Nil(t, data)
		})
	}
}

func TestParseCopyUID_EmptyResponse(t *testing.T) {
	data, ok := responses.ParseCopyUID(responses.New("x", nil))
	assert.False(t, ok)
	assert.Nil(t, data)
}

func TestParseCopyUID_LenientUIDValidity(t *testing.T) {
	data, ok := responses.ParseCopyUID(parseResponse(t, "x OK [COPYUID B 1:2 3:4] Success"))
	require.True(t, ok)
	assert.Zero(t, data.UIDValidity)
	assert.Equal(t, map[string]string{"1": "3", "2": "4"}, data.Mapping())
}
