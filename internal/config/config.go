package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort   string
	MongoURI     string
	DBName       string
	JWTSecret    string
	TokenTTL     int // hours
	UploadDir    string
	TemplatesDir string
	Env          string
}

func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:       getEnv("DB_NAME", "socialsphere"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:     getEnvInt("TOKEN_TTL_HOURS", 24),
		UploadDir:    getEnv("UPLOAD_DIR", "uploads"),
		TemplatesDir: getEnv("TEMPLATES_DIR", "web/templates"),
		Env:          getEnv("APP_ENV", "development"),
	}
}

// Production controls the Secure flag on the session cookie.
func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return n
}
