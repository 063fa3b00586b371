// Package storage persists the application configuration: profile choice,
// database ids, and timezone. The API credential never lives here, it stays
// in the system keychain.
package storage

import "github.com/notiplan/notiplan/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Config
	GetConfig() (models.Config, error)
	SaveConfig(models.Config) error

	// Utils
	GetConfigPath() string
}
