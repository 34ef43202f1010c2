package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials    = errors.New("no credentials configured, use 'xinca login' first")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
)

// Argument errors.
var (
	ErrInvalidKeyValue = errors.New("expected KEY=VALUE")
	ErrInvalidOutput   = errors.New("output must be one of table, json, yaml")
)
