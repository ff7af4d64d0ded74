package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < 1 {
		return fmt.Errorf("database.max_conns must be >= 1 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Admission.MaxBatchSize < 1 {
		return fmt.Errorf("admission.max_batch_size must be >= 1 (got %d)", c.Admission.MaxBatchSize)
	}

	if c.Listing.DefaultLimit < 1 {
		return fmt.Errorf("listing.default_limit must be >= 1 (got %d)", c.Listing.DefaultLimit)
	}
	if c.Listing.MaxLimit < c.Listing.DefaultLimit {
		return fmt.Errorf("listing.max_limit (%d) must not be below default_limit (%d)",
			c.Listing.MaxLimit, c.Listing.DefaultLimit)
	}

	return nil
}
