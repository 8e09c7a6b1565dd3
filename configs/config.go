package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	CORSOrigins []string

	PaymentGatewayURL string
	PaymentSecret     string
	PaymentReturnURL  string

	AdminEmail    string
	AdminPassword string
	SeedDemo      bool
}

func LoadConfig() *Config {
	// .env เป็น optional (prod ใช้ env จริง)
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️ no .env file, using environment")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		log.Printf("⚠️ invalid JWT_TTL, fallback to 24h: %v", err)
		ttl = 24 * time.Hour
	}

	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBSource:          getEnv("DB_SOURCE", "tour.db"),
		Port:              getEnv("PORT", "8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            ttl,
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
		PaymentGatewayURL: getEnv("PAYMENT_GATEWAY_URL", "https://sandbox.payment.example/checkout"),
		PaymentSecret:     getEnv("PAYMENT_SECRET", "changeme"),
		PaymentReturnURL:  getEnv("PAYMENT_RETURN_URL", "http://localhost:8000/payments/return"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		SeedDemo:          getEnvBool("SEED_DEMO", true),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
