package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
// Handle and key may arrive via flags, so validation runs after merging.
func (c *SniperConfig) Validate() error {
	if c.Watch.Handle == "" {
		return errors.New("watch.handle is required")
	}
	if c.API.Key == "" {
		return errors.New("api.key is required")
	}
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.Stream.URL == "" {
		return errors.New("stream.url is required")
	}
	if c.Stream.PingInterval <= 0 {
		return errors.New("stream.ping_interval must be positive")
	}
	if c.Stream.BufferSize < 1 {
		return errors.New("stream.buffer_size must be >= 1")
	}

	if c.Database != nil {
		if err := c.Database.validate("database"); err != nil {
			return err
		}
	}

	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	if db.MinConns > db.MaxConns {
		return fmt.Errorf("%s.min_conns (%d) cannot exceed max_conns (%d)", prefix, db.MinConns, db.MaxConns)
	}
	return nil
}
