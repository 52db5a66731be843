// Package config provides configuration management for the Uniform Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: MySQL (or SQLite) connection details
//   - Storage: S3/MinIO credentials and bucket settings for forecast snapshots
//   - Redis: optional shared idempotency cache
//   - Reconcile: dedup window, cleanup horizon and snapshot settings
//   - Log: Logging level and format
//
// Defaults live in the `default` struct tags of each section and every key can be
// overridden by an environment variable named SECTION_KEY (e.g. RECONCILE_DEDUP_WINDOW_SECONDS).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
