// Package config provides configuration management for deposit-desk.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults sourced from struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, seller header)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and the deposit evidence bucket
//   - Log: logging level and format
//   - Recognition: endpoint and key for the transfer-notice recognition API
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
