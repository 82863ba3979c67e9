// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment via caarlos0/env,
// following the `env`/`envPrefix` tags on [StructuredConfig]. Group
// prefixes compose with field names, so Remote.HTTPAddress reads
// REMOTE_ADDRESS and Watch.Debounce reads WATCH_DEBOUNCE. Unset variables
// leave their fields at the zero value for later merge stages to fill.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
