package config

import (
	"flag"
	"os"
	"time"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   elevated-tier PostgreSQL DSN
//	-r string   restricted-tier PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      admin token validity, hours
//	-f string   data directory for file-backed demo mode
func parseFlags(config *Config) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN (elevated tier)")
	fs.StringVar(&config.DatabaseReadDSN, "r", config.DatabaseReadDSN, "database DSN (restricted tier)")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.DataDir, "f", config.DataDir, "data directory for file-backed demo mode")

	tokenValidity := fs.Int("t", int(config.TokenValidity.Hours()), "admin token validity (in hours)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		panic(err)
	}

	config.TokenValidity = time.Duration(*tokenValidity) * time.Hour
}
