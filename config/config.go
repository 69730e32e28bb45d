package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	JWTSecret         string
	AdminPassword     string
	AdminPasswordHash string // optional bcrypt hash, preferred over AdminPassword when set
	FrontendOrigin    string
	GeoAPIBaseURL     string
}

var AppConfig *Config

// LoadConfig reads the .env file (if present) and the process environment.
// The defaults for the secret, the admin password, and the port are insecure
// placeholders for local development only.
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Port:              getEnv("PORT", "3001"),
		JWTSecret:         getEnv("JWT_SECRET", "dev-insecure-jwt-secret"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		FrontendOrigin:    os.Getenv("FE_ORIGIN"),
		GeoAPIBaseURL:     getEnv("GEO_API_BASE_URL", "http://ip-api.com"),
	}

	if AppConfig.JWTSecret == "dev-insecure-jwt-secret" {
		log.Println("WARNING: JWT_SECRET not set, using insecure development default")
	}
	if AppConfig.AdminPassword == "admin123" && AppConfig.AdminPasswordHash == "" {
		log.Println("WARNING: ADMIN_PASSWORD not set, using insecure development default")
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
