// Package config provides configuration loading and validation for
// problemkit applications.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with .env support via godotenv. Validation failures are
// reported as problem chains; CheckAll collects every bad section in a
// single pass instead of stopping at the first.
//
// # Usage
//
//	var cfg MyConfig
//	if err := config.LoadConfig("importer", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := config.CheckAll(&cfg.ServiceConfig, &cfg.Database); err != nil { ... }
package config
