package config

import "errors"

// ErrInvalidConfig is returned when a configuration file cannot be parsed.
var ErrInvalidConfig = errors.New("invalid configuration")
