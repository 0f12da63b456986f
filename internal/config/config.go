package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBDSN    string
	LogFile  string
	SeedSize int

	// PriceSegments are the ascending lower bounds of the report
	// histogram buckets; the last bucket is unbounded above.
	PriceSegments []float64
	TopModels     int

	OperatorEmail    string
	OperatorPassword string
}

func Load() Config {
	// A local .env is convenient in dev; absence is fine.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "celustock.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./celustock.log"
	}

	seed := 50
	if s := os.Getenv("SEED_COUNT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			seed = n
		}
	}

	segments := parseSegments(os.Getenv("PRICE_SEGMENTS"))

	topN := 5
	if s := os.Getenv("TOP_MODELS"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 10 {
			topN = n
		}
	}

	opEmail := os.Getenv("OPERATOR_EMAIL")
	if opEmail == "" {
		opEmail = "operador@celustock.test"
	}
	opPass := os.Getenv("OPERATOR_PASSWORD")
	if opPass == "" {
		opPass = "Cambiame1!"
	}

	cfg := Config{
		Port:             port,
		DBDSN:            dsn,
		LogFile:          logFile,
		SeedSize:         seed,
		PriceSegments:    segments,
		TopModels:        topN,
		OperatorEmail:    opEmail,
		OperatorPassword: opPass,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SEED_COUNT=%d TOP_MODELS=%d",
		cfg.Port, cfg.DBDSN, cfg.LogFile, cfg.SeedSize, cfg.TopModels)
	return cfg
}

// parseSegments reads a comma list of ascending bucket lower bounds.
// Malformed or unsorted input falls back to the defaults.
func parseSegments(s string) []float64 {
	def := []float64{0, 5000, 10000, 15000, 20000, 25000}
	if s == "" {
		return def
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil || v < 0 {
			log.Printf("[config] ignoring bad PRICE_SEGMENTS %q", s)
			return def
		}
		if len(out) > 0 && v <= out[len(out)-1] {
			log.Printf("[config] PRICE_SEGMENTS not ascending: %q", s)
			return def
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return def
	}
	return out
}
