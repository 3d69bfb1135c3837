// Package config provides configuration management for the Scene Inspector.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: report archive connection details (MySQL or SQLite)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Inspect: document cache TTL and census texture-reference fields
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
