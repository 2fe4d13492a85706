package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBDriver    string // sqlite | pgx
	DBDSN       string
	LogFile     string
	CORSOrigins string
	SeedDemo    bool
	BodyLimit   int
	RateLimit   int // requests per minute per IP; 0 disables
}

func Load() Config {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err == nil {
		log.Printf("[config] loaded .env")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = "sqlite"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "grocery.db"
	} // sqlite file in working dir
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	seed, _ := strconv.ParseBool(os.Getenv("SEED_DEMO"))
	limit := 1 << 20
	if v, err := strconv.Atoi(os.Getenv("BODY_LIMIT")); err == nil && v > 0 {
		limit = v
	}

	rate := 120
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT")); err == nil && v >= 0 {
		rate = v
	}

	cfg := Config{
		Port:        port,
		DBDriver:    driver,
		DBDSN:       dsn,
		LogFile:     os.Getenv("LOG_FILE"),
		CORSOrigins: origins,
		SeedDemo:    seed,
		BodyLimit:   limit,
		RateLimit:   rate,
	}
	log.Printf("[config] PORT=%s DB_DRIVER=%s LOG_FILE=%s CORS_ORIGINS=%s SEED_DEMO=%t BODY_LIMIT=%d RATE_LIMIT=%d",
		cfg.Port, cfg.DBDriver, cfg.LogFile, cfg.CORSOrigins, cfg.SeedDemo, cfg.BodyLimit, cfg.RateLimit)
	return cfg
}
