package store

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// Storage drivers known to Open.
const (
	DriverPostgres = "postgres"
	DriverFile     = "file"
)

const (
	defaultDSN  = "host=localhost user=roomterrain password=roomterrain dbname=roomterrain sslmode=disable"
	defaultPath = "roomterrain.json"
)

// ErrUnknownDriver is returned by Open for drivers other than DriverPostgres
// and DriverFile.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Config selects and configures a storage backend.
type Config struct {
	Driver string // DriverPostgres or DriverFile
	DSN    string // connection string for DriverPostgres
	Path   string // terrain file for DriverFile
}

// ConfigFromEnv reads a Config from the environment:
//
//	ROOMTERRAIN_DB_TYPE       driver, defaults to "file"
//	ROOMTERRAIN_DATABASE_URL  connection string for "postgres"
//	ROOMTERRAIN_DB_FILE       terrain file for "file", defaults to roomterrain.json
func ConfigFromEnv() Config {
	cfg := Config{
		Driver: os.Getenv("ROOMTERRAIN_DB_TYPE"),
		DSN:    os.Getenv("ROOMTERRAIN_DATABASE_URL"),
		Path:   os.Getenv("ROOMTERRAIN_DB_FILE"),
	}
	if cfg.Driver == "" {
		cfg.Driver = DriverFile
	}
	if cfg.DSN == "" {
		cfg.DSN = defaultDSN
	}
	if cfg.Path == "" {
		cfg.Path = defaultPath
	}
	return cfg
}

// Open creates the storage backend cfg selects.
func Open(ctx context.Context, cfg Config) (Storage, error) {
	switch cfg.Driver {
	case DriverPostgres:
		ps, err := NewPostgresStore(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return ps, nil
	case DriverFile:
		fst, err := NewFileStore(cfg.Path)
		if err != nil {
			return nil, err
		}
		return fst, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}
