package storage

import (
	"fmt"

	"moviedb/internal/logging"
)

// Backend drivers accepted by Open.
const (
	DriverMemory   = "memory"
	DriverBadger   = "badger"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Driver      string
	BadgerDir   string
	SQLiteDSN   string
	PostgresDSN string
	Redis       RedisConfig
}

// Open builds the Store selected by opts.Driver.
func Open(opts Options) (Store, error) {
	log := logging.Component("storage")

	var (
		s   Store
		err error
	)
	switch opts.Driver {
	case "", DriverMemory:
		s = NewMemoryStore()
	case DriverBadger:
		s, err = OpenBadger(opts.BadgerDir)
	case DriverSQLite:
		s, err = OpenSQLite(opts.SQLiteDSN)
	case DriverPostgres:
		s, err = OpenPostgres(opts.PostgresDSN)
	case DriverRedis:
		s, err = OpenRedis(opts.Redis)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("driver", opts.Driver).Msg("storage opened")
	return s, nil
}
