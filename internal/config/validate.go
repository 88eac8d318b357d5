package config

import "fmt"

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	if c.Providers.TMDB.APIKey == "" {
		errs = append(errs, "providers.tmdb.api_key: required")
	}
	if unresolved := envVarPattern.FindString(c.Providers.TMDB.APIKey); unresolved != "" {
		errs = append(errs, fmt.Sprintf("providers.tmdb.api_key: unresolved environment variable %s", unresolved))
	}

	return errs
}
