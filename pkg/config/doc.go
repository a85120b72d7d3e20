// Package config loads typed configuration structs from environment
// variables using caarlos0/env struct tags, with optional .env files read by
// joho/godotenv.
//
// Each package that needs configuration declares its own struct (for example
// httpserver.Config or email.Config) and the binary loads them at startup:
//
//	var srvCfg httpserver.Config
//	config.MustLoad(&srvCfg)
//
// Loaded values are cached per type. ResetCache clears the cache between
// tests that change the environment.
package config
