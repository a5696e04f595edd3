package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                string
	AllowedOrigin       string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	TaxRatePercent      float64
	DefaultMinStock     int
	DashboardTTLSeconds int
}

func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: skipping .env file: %v", err)
	}

	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	taxRate, err := strconv.ParseFloat(getEnv("TAX_RATE_PERCENT", "10"), 64)
	if err != nil || taxRate < 0 || taxRate > 100 {
		taxRate = 10
	}
	minStock, err := strconv.Atoi(getEnv("DEFAULT_MIN_STOCK", "10"))
	if err != nil || minStock < 0 {
		minStock = 10
	}
	ttl, err := strconv.Atoi(getEnv("DASHBOARD_TTL_SECONDS", "15"))
	if err != nil || ttl < 1 {
		ttl = 15
	}

	return Config{
		Port:                getEnv("PORT", "8080"),
		AllowedOrigin:       getEnv("ALLOWED_ORIGIN", "http://127.0.0.1:3000"),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             redisDB,
		TaxRatePercent:      taxRate,
		DefaultMinStock:     minStock,
		DashboardTTLSeconds: ttl,
	}
}

func (c Config) Address() string {
	return fmt.Sprintf(":%s", c.Port)
}

func getEnv(key string, fallback string) string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	return val
}
