package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// AuthType selects how the CLI authenticates.
type AuthType string

const (
	AuthLogin AuthType = "login"
	AuthPlain AuthType = "plain"
)

type Config struct {
	Accounts map[string]Account `yaml:"accounts"`
}

type Account struct {
	ServerURL          string   `yaml:"serverURL"`
	Username           string   `yaml:"username"`
	Password           string   `yaml:"password"`
	TLS                bool     `yaml:"tls"`
	InsecureSkipVerify bool     `yaml:"insecureSkipVerify"`
	Auth               AuthType `yaml:"auth"`
}

func newConfig() *Config {
	return &Config{}
}

// LoadFileConfig loads the configuration from the file
func LoadFileConfig(fileName string) (*Config, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return loadConfig(file)
}

func loadConfig(reader io.Reader) (*Config, error) {
	decoder := yaml.NewDecoder(reader)
	config := newConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	if err := validateConfiguration(config); err != nil {
		return nil, err
	}
	return config, nil
}

func validateConfiguration(config *Config) error {
	if len(config.Accounts) == 0 {
		return errors.New("no account defined")
	}
	for name, account := range config.Accounts {
		if account.ServerURL == "" {
			return fmt.Errorf("account %q: missing serverURL", name)
		}
		switch account.Auth {
		case "", AuthLogin, AuthPlain:
		default:
			return fmt.Errorf("account %q: unknown auth %q", name, account.Auth)
		}
	}
	return nil
}

// Account returns the named account. The name can be omitted if there is
// only one account.
func (config *Config) Account(name string) (Account, error) {
	if name == "" {
		if len(config.Accounts) != 1 {
			return Account{}, fmt.Errorf("several accounts defined, choose one of %v", config.names())
		}
		for _, account := range config.Accounts {
			return account, nil
		}
	}
	account, ok := config.Accounts[name]
	if !ok {
		return Account{}, fmt.Errorf("account %q not found in %v", name, config.names())
	}
	return account, nil
}

func (config *Config) names() []string {
	names := make([]string, 0, len(config.Accounts))
	for name := range config.Accounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
