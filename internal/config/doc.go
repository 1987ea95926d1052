// Package config resolves the nanolog command's settings from flags,
// environment variables, an optional .env file and an optional config file,
// and validates them before they reach the logger.
package config
