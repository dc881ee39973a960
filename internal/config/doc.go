// Package config manages configuration for gamesdb.
//
// Configuration is read from GAMESDB_* environment variables with
// caarlos0/env. When present, .env and .env.local in the working directory
// are loaded first; variables already in the environment are never
// overwritten.
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	store, err := database.NewStore(cfg.StoreConfig(), logger)
//
// # Environment Variables
//
//	GAMESDB_DRIVER           - mongo or surrealdb (default: mongo)
//	GAMESDB_HOST             - store host (default: localhost)
//	GAMESDB_PORT             - store port (default: 27017 for mongo, 8000 for surrealdb)
//	GAMESDB_DATABASE         - database name (default: gamesdb)
//	GAMESDB_NAMESPACE        - SurrealDB namespace (default: gamesdb)
//	GAMESDB_USER             - optional user name
//	GAMESDB_PASSWORD         - optional password
//	GAMESDB_CONNECT_TIMEOUT  - dial and server selection timeout (default: 10s)
//	GAMESDB_LOG_LEVEL        - debug, info, warn or error (default: info)
//
// Validate reports every problem at once, joined with errors.Join.
package config
