package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OCR      OCRConfig
	Scoring  ScoringConfig
	Decision DecisionConfig
	Worker   WorkerConfig
	Logging  LoggingConfig
	Commands CommandBusConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	// URL selects the Postgres store when set; the in-memory store is used
	// otherwise.
	URL string
}

type OCRConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// ScoringConfig holds the match-scorer knobs. Weights and tolerances are
// operator-tunable; none of them are baked into the scorer itself.
type ScoringConfig struct {
	AmountTolerance         float64
	PartialPaymentThreshold float64
	BankSimilarityThreshold float64
	AmountWeight            float64
	BankWeight              float64
	AccountWeight           float64
	CurrencyWeight          float64
}

type DecisionConfig struct {
	AutoApproveThreshold  float64
	ManualReviewThreshold float64
}

type WorkerConfig struct {
	PoolSize   int
	MaxRetries int
}

type LoggingConfig struct {
	Level string
}

type CommandBusConfig struct {
	ChannelBufferSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		OCR: OCRConfig{
			BaseURL: getEnv("OCR_BASE_URL", "http://localhost:9090"),
			APIKey:  getEnv("OCR_API_KEY", ""),
			Timeout: getDurationEnv("OCR_TIMEOUT", 10*time.Second),
		},
		Scoring: ScoringConfig{
			AmountTolerance:         getFloatEnv("AMOUNT_TOLERANCE", 0.01),
			PartialPaymentThreshold: getFloatEnv("PARTIAL_PAYMENT_THRESHOLD", 0.9),
			BankSimilarityThreshold: getFloatEnv("BANK_SIMILARITY_THRESHOLD", 0.85),
			AmountWeight:            getFloatEnv("AMOUNT_WEIGHT", 0.5),
			BankWeight:              getFloatEnv("BANK_WEIGHT", 0.2),
			AccountWeight:           getFloatEnv("ACCOUNT_WEIGHT", 0.2),
			CurrencyWeight:          getFloatEnv("CURRENCY_WEIGHT", 0.1),
		},
		Decision: DecisionConfig{
			AutoApproveThreshold:  getFloatEnv("AUTO_APPROVE_THRESHOLD", 85),
			ManualReviewThreshold: getFloatEnv("MANUAL_REVIEW_THRESHOLD", 60),
		},
		Worker: WorkerConfig{
			PoolSize:   getIntEnv("WORKER_POOL_SIZE", 4),
			MaxRetries: getIntEnv("MAX_RETRIES", 5),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Commands: CommandBusConfig{
			ChannelBufferSize: getIntEnv("COMMAND_CHANNEL_BUFFER_SIZE", 256),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getFloatEnv(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid value for %s: %s, using default: %g", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}
