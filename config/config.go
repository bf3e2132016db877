// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Database string

	MailgwURL string
	OnesecURL string

	PollSeconds    int
	SessionMinutes int

	Loglevel *string
}

func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		Database:       "favorites.db",
		PollSeconds:    10,
		SessionMinutes: 10,
	}

	_, err := toml.DecodeFile(filename, config)
	if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.Database, "Database name must not be empty, set to a filename for the sqlite database"); err != nil {
		return err
	}

	mailgwSet := len(strings.TrimSpace(c.MailgwURL)) > 0
	onesecSet := len(strings.TrimSpace(c.OnesecURL)) > 0
	if mailgwSet && onesecSet {
		return fmt.Errorf("MailgwURL and OnesecURL cannot be set at the same time")
	}
	if !mailgwSet && !onesecSet {
		return fmt.Errorf("set either MailgwURL or OnesecURL to use either provider")
	}

	if c.PollSeconds < 1 {
		return fmt.Errorf("PollSeconds must be at least 1, got %d", c.PollSeconds)
	}

	if c.SessionMinutes < 1 {
		return fmt.Errorf("SessionMinutes must be at least 1, got %d", c.SessionMinutes)
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
