package selected_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailcore/go-imapcore"
	"github.com/mailcore/go-imapcore/selected"
)

func TestStoreCommand_CommandString(t *testing.T) {
	tests := []struct {
		name               string
		uids               imap.UIDSet
		add                bool
		flags              []imap.Flag
		canCreateForwarded bool
		want               string
	}{
		{
			name:  "single UID",
			uids:  imap.UIDSetNum(5),
			add:   true,
			flags: []imap.Flag{imap.FlagSeen},
			want:  `UID STORE 5 +FLAGS.SILENT (\Seen)`,
		},
		{
			name:  "remove",
			uids:  imap.UIDSetNum(7, 1, 2, 3),
			flags: []imap.Flag{imap.FlagFlagged, imap.FlagSeen},
			want:  `UID STORE 1:3,7 -FLAGS.SILENT (\Seen \Flagged)`,
		},
		{
			name:               "forwarded",
			uids:               imap.UIDSetNum(9),
			add:                true,
			flags:              []imap.Flag{imap.FlagForwarded, imap.FlagAnswered},
			canCreateForwarded: true,
			want:               `UID STORE 9 +FLAGS.SILENT (\Answered $Forwarded)`,
		},
		{
			name:  "forwarded not allowed",
			uids:  imap.UIDSetNum(9),
			add:   true,
			flags: []imap.Flag{imap.FlagForwarded, imap.FlagAnswered},
			want:  `UID STORE 9 +FLAGS.SILENT (\Answered)`,
		},
		{
			name:  "duplicate flags",
			uids:  imap.UIDSetNum(1),
			add:   true,
			flags: []imap.Flag{imap.FlagDeleted, imap.FlagDeleted},
			want:  `UID STORE 1 +FLAGS.SILENT (\Deleted)`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := selected.NewStoreCommand(tc.uids, tc.add, tc.flags, tc.canCreateForwarded)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd.CommandString())
		})
	}
}

func TestStoreCommand_AllUIDs(t *testing.T) {
	cmd, err := selected.NewStoreCommandAllUIDs(true, []imap.Flag{imap.FlagDeleted}, false)
	require.NoError(t, err)
	assert.Equal(t, `UID STORE 1:* +FLAGS.SILENT (\Deleted)`, cmd.CommandString())

	uids, all := cmd.UIDs()
	assert.True(t, all)
	assert.True(t, uids.IsEmpty())
}

func TestStoreCommand_Invalid(t *testing.T) {
	_, err := selected.NewStoreCommand(imap.UIDSetNum(1), true, nil, false)
	assert.ErrorIs(t, err, selected.ErrEmptyFlags)

	_, err = selected.NewStoreCommand(imap.UIDSetNum(1), true, []imap.Flag{imap.FlagForwarded}, false)
	assert.ErrorIs(t, err, selected.ErrEmptyFlags)

	_, err = selected.NewStoreCommand(imap.UIDSetNum(0, 4), true, []imap.Flag{imap.FlagSeen}, false)
	assert.ErrorIs(t, err, imap.ErrInvalidUID)
}

func TestCommand_CopiesUIDSet(t *testing.T) {
	uids := imap.UIDSetNum(1, 2)
	cmd, err := selected.NewStoreCommand(uids, true, []imap.Flag{imap.FlagSeen}, false)
	require.NoError(t, err)

	uids.AddNum(10)
	assert.Equal(t, `UID STORE 1:2 +FLAGS.SILENT (\Seen)`, cmd.CommandString())

	got, all := cmd.UIDs()
	assert.False(t, all)
	got.AddNum(20)
	assert.Equal(t, `UID STORE 1:2 +FLAGS.SILENT (\Seen)`, cmd.CommandString())
}

func TestCopyCommand_CommandString(t *testing.T) {
	tests := []struct {
		name    string
		uids    imap.UIDSet
		mailbox string
		want    string
	}{
		{"atom", imap.UIDSetNum(1, 3, 4, 5), "Archive", "UID COPY 1,3:5 Archive"},
		{"space", imap.UIDSetNum(2), "My Folder", `UID COPY 2 "My Folder"`},
		{"quote", imap.UIDSetNum(2), `a"b`, `UID COPY 2 "a\"b"`},
		{"non-ASCII", imap.UIDSetNum(2), "Entwürfe", "UID COPY 2 Entw&APw-rfe"},
		{"ampersand", imap.UIDSetNum(2), "Tom & Jerry", `UID COPY 2 "Tom &- Jerry"`},
		{"NIL", imap.UIDSetNum(2), "nil", `UID COPY 2 "nil"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := selected.NewCopyCommand(tc.uids, tc.mailbox)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd.CommandString())
			assert.Equal(t, tc.mailbox, cmd.Mailbox())
		})
	}
}

func TestCopyCommand_AllUIDs(t *testing.T) {
	cmd, err := selected.NewCopyCommandAllUIDs("Trash")
	require.NoError(t, err)
	assert.Equal(t, "UID COPY 1:* Trash", cmd.CommandString())
}

func TestCopyCommand_EmptyMailbox(t *testing.T) {
	_, err := selected.NewCopyCommand(imap.UIDSetNum(1), "")
	assert.ErrorIs(t, err, selected.ErrEmptyMailbox)

	_, err = selected.NewCopyCommandAllUIDs("")
	assert.ErrorIs(t, err, selected.ErrEmptyMailbox)
}

func TestGenericCommand_CommandString(t *testing.T) {
	var group imap.UIDSet
	group.AddRange(3, 5)

	mixed := imap.UIDSetNum(1, 2, 3)
	mixed.AddRange(12, 10)

	tests := []struct {
		name string
		uids imap.UIDSet
		args []string
		want string
	}{
		{"no UIDs", nil, nil, "TEST"},
		{"single", imap.UIDSetNum(4), nil, "TEST 4"},
		{"isolated", imap.UIDSetNum(1, 3, 5), nil, "TEST 1,3,5"},
		{"group only", group, nil, "TEST 3:5"},
		{"set and group", mixed, nil, "TEST 1:3,10:12"},
		{"arguments", imap.UIDSetNum(8), []string{"(FLAGS)"}, "TEST 8 (FLAGS)"},
		{"empty arguments", imap.UIDSetNum(8), []string{"", "X"}, "TEST 8 X"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := selected.NewCommand("TEST", tc.uids, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, cmd.CommandString())
		})
	}
}

func TestGenericCommand_AllUIDs(t *testing.T) {
	cmd, err := selected.NewCommandAllUIDs(imap.UIDFetch, "(FLAGS)")
	require.NoError(t, err)
	assert.Equal(t, "UID FETCH 1:* (FLAGS)", cmd.CommandString())
	assert.Equal(t, imap.UIDFetch, cmd.Name())
}

func TestGenericCommand_EmptyName(t *testing.T) {
	_, err := selected.NewCommand("", imap.UIDSetNum(1))
	assert.ErrorIs(t, err, selected.ErrEmptyCommand)

	_, err = selected.NewCommandAllUIDs("  ")
	assert.ErrorIs(t, err, selected.ErrEmptyCommand)
}
