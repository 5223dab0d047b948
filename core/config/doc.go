// Package config provides configuration management for the Ingredient Manager.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (through godotenv). Defaults come from the `default`
// struct tags of every partial configuration.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, shutdown timeout)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: MySQL or SQLite connection details
//   - Inventory: capacity, rate limit and slot defaults for new containers
//   - Journal: transfer journal switch and object prefix
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
