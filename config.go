package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Config is read from the environment.
type Config struct {
	Port           string   // PORT, default 8080
	DBDSN          string   // QUIZ_DB, default in-memory
	SeedFile       string   // QUIZ_SEED_FILE, optional .json/.yaml
	AllowedOrigins []string // QUIZ_ALLOWED_ORIGINS, comma separated, on top of localhost
	NoColor        bool     // NO_COLOR set to anything
}

func ConfigFromEnv() Config {
	cfg := Config{
		Port:     os.Getenv("PORT"),
		DBDSN:    os.Getenv("QUIZ_DB"),
		SeedFile: strings.TrimSpace(os.Getenv("QUIZ_SEED_FILE")),
		NoColor:  os.Getenv("NO_COLOR") != "",
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DBDSN == "" {
		cfg.DBDSN = memoryDSN
	}
	for _, o := range strings.Split(os.Getenv("QUIZ_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
		}
	}
	return cfg
}

// LoadEnvFile copies KEY=value lines from paths (default ./.env) into the
// environment. Variables already set are left alone; a missing default
// file is not an error.
func LoadEnvFile(paths ...string) error {
	if len(paths) == 0 {
		if _, err := os.Stat(defaultEnvFile); errors.Is(err, os.ErrNotExist) {
			return nil
		}
		paths = []string{defaultEnvFile}
	}
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
