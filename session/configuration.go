// SPDX-License-Identifier: GPL-3.0-or-later
package session

import (
	"fmt"
	"time"
)

type ConfigFunc func(c *configuration) error

func PollInterval(interval time.Duration) ConfigFunc {
	return func(c *configuration) error {
		if interval < time.Second {
			return fmt.Errorf("PollInterval must be at least a second, got %v", interval)
		}

		c.PollInterval = interval
		return nil
	}
}

func SessionTTL(minutes int) ConfigFunc {
	return func(c *configuration) error {
		if minutes < 1 {
			return fmt.Errorf("SessionTTL must be at least a minute, got %d", minutes)
		}

		c.SessionMinutes = minutes
		return nil
	}
}

func UnauthorizedLimit(limit int) ConfigFunc {
	return func(c *configuration) error {
		if limit < 1 {
			return fmt.Errorf("UnauthorizedLimit must be at least 1, got %d", limit)
		}

		c.UnauthorizedLimit = limit
		return nil
	}
}

type configuration struct {
	PollInterval      time.Duration
	SessionMinutes    int
	UnauthorizedLimit int
}

func defaultConfiguration() *configuration {
	return &configuration{
		PollInterval:      10 * time.Second,
		SessionMinutes:    10,
		UnauthorizedLimit: 3,
	}
}
