// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables via caarlos0/env,
// mapping fields through the `env` tags on [StructuredConfig] and its
// nested sections (auth, storage, server). A value that cannot be
// converted to the target type surfaces as a wrapped parse error.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
