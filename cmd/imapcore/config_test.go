package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `
accounts:
  work:
    serverURL: imap.example.com:993
    username: alice
    password: secret
    tls: true
    auth: plain
  local:
    serverURL: localhost:143
    username: bob
    password: bob
`

func TestLoadConfig(t *testing.T) {
	config, err := loadConfig(strings.NewReader(testConfig))
	require.NoError(t, err)
	require.Len(t, config.Accounts, 2)

	work, err := config.Account("work")
	require.NoError(t, err)
	assert.Equal(t, Account{
		ServerURL: "imap.example.com:993",
		Username:  "alice",
		Password:  "secret",
		TLS:       true,
		Auth:      AuthPlain,
	}, work)

	_, err = config.Account("")
	assert.Error(t, err)
	_, err = config.Account("missing")
	assert.Error(t, err)
}

func TestLoadConfig_SingleAccount(t *testing.T) {
	config, err := loadConfig(strings.NewReader("accounts:\n  only:\n    serverURL: localhost:143\n"))
	require.NoError(t, err)

	account, err := config.Account("")
	require.NoError(t, err)
	assert.Equal(t, "localhost:143", account.ServerURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"no account": "accounts: {}\n",
		"no server":  "accounts:\n  a:\n    username: x\n",
		"bad auth":   "accounts:\n  a:\n    serverURL: x:1\n    auth: kerberos\n",
		"not yaml":   "accounts: [",
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := loadConfig(strings.NewReader(cfg))
			assert.Error(t, err)
		})
	}
}
