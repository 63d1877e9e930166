package config

import (
	"os"

	"github.com/joho/godotenv"
)

// dotenv files checked at startup, highest priority first. godotenv.Load
// never overwrites variables that are already set, so OS-level env always
// wins and .env.local shadows the shared .env.
var dotenvFiles = []string{".env.local", ".env"}

// LoadDotEnv loads local env files and returns the ones actually read.
func LoadDotEnv() []string {
	var loaded []string
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if godotenv.Load(f) == nil {
			loaded = append(loaded, f)
		}
	}
	return loaded
}
