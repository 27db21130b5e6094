package config

import (
	"log/slog"
	"path/filepath"

	"github.com/joho/godotenv"
)

// loadEnvFile loads .env then .env.local from dir, stopping at the first file that parses.
// Variables already present in the process environment are never overwritten.
func loadEnvFile(dir string) {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(dir, name)
		if err := godotenv.Load(path); err == nil {
			slog.Debug("Loaded environment variables", "path", path)
			return
		}
	}
}
