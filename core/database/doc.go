// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL (production) or SQLite (local runs, tests)
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured dialect, applies pool settings and pings the
// server within the configured timeout. In-memory SQLite uses a single
// connection so the database survives between queries.
//
// # Schema Inspection
//
// GetTableColumns returns the live column definitions of a table for either
// dialect. The integrity feature compares them against the gorm models of the
// stock and uniform tables.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "stock_records")
package database
