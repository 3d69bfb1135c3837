// Package database handles connections to the report archive database.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to properly configure
// MySQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// The Connect function establishes a connection using the configured driver.
// MySQL is the service deployment target; SQLite serves local setups and
// tests. The archive is optional, so callers treat connection errors as a
// degraded mode rather than a startup failure.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Report archive unavailable", err)
//	}
package database
