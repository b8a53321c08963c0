package database

import coreconfig "pricebench/core/config"

// Config holds database connection settings.
type Config struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxConnections int
}

// FromStoreConfig maps the application store configuration onto a database Config.
func FromStoreConfig(pg coreconfig.PostgresConfig) Config {
	return Config{
		Host:           pg.Host,
		Port:           pg.Port,
		User:           pg.User,
		Password:       pg.Password,
		Name:           pg.Name,
		SSLMode:        pg.SSLMode,
		MaxConnections: pg.MaxConnections,
	}
}
