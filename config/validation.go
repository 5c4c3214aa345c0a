package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that the configuration is usable in the current
// environment. Sensitive values may be absent in development (local
// defaults apply) but never in production.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBName == "" {
		errors = append(errors, "database host, port and name are required")
	}
	if cfg.RecommendTopN <= 0 {
		errors = append(errors, "RECOMMEND_TOP_N must be positive")
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			errors = append(errors, "jwt_secret is required in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password is required in production")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}
