package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port           int
	DatabasePath   string
	MasterPassword string
}

// DefaultMasterPassword seeds the bootstrap master account when no
// MASTER_PASSWORD is provisioned. Kept for compatibility with existing
// deployments; override it in production.
const DefaultMasterPassword = "AGzzcso1$"

// ParseFlags validates flags and fills in defaults
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("aistudytec", flag.ContinueOnError)

	// Network and storage config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabasePath, "d", "", "SQLite database file path")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.MasterPassword, "master-pass", "", "Master account password (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 5000 // default
		}
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = os.Getenv("DATABASE_PATH")
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "aistudytec.db"
	}

	if cfg.MasterPassword == "" {
		cfg.MasterPassword = os.Getenv("MASTER_PASSWORD")
	}
	if cfg.MasterPassword == "" {
		cfg.MasterPassword = DefaultMasterPassword
	}

	return cfg, nil
}
