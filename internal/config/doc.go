// Package config handles loading and validation of application configuration.
package config
