// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections based on
// the application's configuration. A sqlite driver branch exists so tests
// and local tooling can run against an in-memory database.
//
// # Connect
//
// The Connect function establishes a connection using the configured driver
// and applies pool limits and timeouts for the MySQL path.
//
// # Schema Inspection
//
// The package includes tools to inspect the database schema, used by the
// startup schema check: after AutoMigrate runs, VerifyColumns confirms the
// order and deposit tables carry the columns the feature models expect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifyColumns(db, "orders", []string{"id", "status"})
package database
