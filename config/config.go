package config

import (
	"log"
	"os"
)

// SessionSecret returns the key for the session cookie store. Outside of
// development the SECRET_KEY environment variable is mandatory.
func SessionSecret() string {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		if os.Getenv("ENVIRONMENT") == "production" {
			log.Fatal("SECRET_KEY environment variable must be set in production")
		}
		secret = "dev-secret-key"
	}
	return secret
}
