package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DataSourceCSV      = "csv"
	DataSourcePostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Client   ClientConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogLevel    string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

// DataConfig points at the offline artifacts loaded once at startup.
type DataConfig struct {
	Source           string
	ScoresPath       string
	TransactionsPath string
	RulesPath        string
	// CitiesPath is optional; the city report is empty without it.
	CitiesPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type ClientConfig struct {
	APIURL           string
	Timeout          time.Duration
	FailureThreshold uint32
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, errors.New("invalid request timeout")
	}

	client, err := LoadClient()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Recommender API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8000"),
			RequestTimeout: requestTimeout,
			AllowOrigins:   []string{"http://localhost:3000", "http://localhost:8501"},
		},
		Data: DataConfig{
			Source:           getEnv("DATA_SOURCE", DataSourceCSV),
			ScoresPath:       getEnv("SCORES_PATH", "models/recommender_full.json"),
			TransactionsPath: getEnv("TRANSACTIONS_PATH", "data/raw/dataset_sample_1.csv"),
			RulesPath:        getEnv("RULES_PATH", "data/processed/mba.csv"),
			CitiesPath:       getEnv("CITIES_PATH", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "recommender"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Client: client,
	}

	switch cfg.Data.Source {
	case DataSourceCSV:
		if cfg.Data.TransactionsPath == "" {
			return nil, errors.New("missing transactions path")
		}
	case DataSourcePostgres:
		if cfg.Database.Password == "" {
			return nil, errors.New("missing database password")
		}
	default:
		return nil, errors.New("unknown data source: " + cfg.Data.Source)
	}

	if cfg.Data.ScoresPath == "" {
		return nil, errors.New("missing scores path")
	}

	if cfg.Data.RulesPath == "" {
		return nil, errors.New("missing rules path")
	}

	return cfg, nil
}

// LoadClient reads only the settings the API client needs, so the CLI can
// start without the server's data configuration.
func LoadClient() (ClientConfig, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("RECO_API_TIMEOUT", "5s"))
	if err != nil {
		return ClientConfig{}, errors.New("invalid api client timeout")
	}

	threshold, err := strconv.ParseUint(getEnv("RECO_API_FAILURE_THRESHOLD", "3"), 10, 32)
	if err != nil {
		return ClientConfig{}, errors.New("invalid api client failure threshold")
	}

	return ClientConfig{
		APIURL:           getEnv("RECO_API_URL", "http://127.0.0.1:8000"),
		Timeout:          timeout,
		FailureThreshold: uint32(threshold),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
