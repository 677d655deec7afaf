package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string // "dev" or "prod"
	DBDriver string
	DBSource string
	Port     string

	JWTSecret string
	JWTTTL    time.Duration

	// stale guest carts are purged after this
	CartTTL time.Duration

	// outbound mail; in dev mode mail is logged, not sent
	SMTPHost   string
	SMTPPort   string
	SMTPFrom   string
	AppBaseURL string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	return &Config{
		Env:           getEnv("APP_ENV", "dev"),
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBSource:      getEnv("DB_SOURCE", "kruathai.db"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		JWTTTL:        time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,
		CartTTL:       time.Duration(getEnvInt("CART_TTL_HOURS", 72)) * time.Hour,
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPFrom:      getEnv("SMTP_FROM", "orders@kruathai.example"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:8000"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}
}

func (c *Config) IsDev() bool { return c.Env != "prod" }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
