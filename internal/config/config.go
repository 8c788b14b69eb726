package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	Storage    Storage `yaml:"storage"`

	AdminLogin    string `yaml:"admin_login" env:"ADMIN_LOGIN"`
	AdminPassHash string `yaml:"admin_pass_hash" env:"ADMIN_PASS_HASH"`

	CORSOrigins       []string      `yaml:"cors_origins" env:"CORS_ORIGINS" env-separator:"," env-default:"http://localhost:5173"`
	RequestTimeout    time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"5s"`
	SlotLookupWorkers int           `yaml:"slot_lookup_workers" env:"SLOT_LOOKUP_WORKERS" env-default:"8"`

	// ErrorLogPath receives a copy of every error record. Empty disables it.
	ErrorLogPath string `yaml:"error_log_path" env:"ERROR_LOG_PATH" env-default:"errors.log"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Storage struct {
	Driver       string `yaml:"driver" env:"DB_DRIVER" env-default:"mysql"`
	DSN          string `yaml:"dsn" env:"DB_DSN" env-required:"true"`
	EnsureSchema bool   `yaml:"ensure_schema" env:"DB_ENSURE_SCHEMA" env-default:"false"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"`
}

// Path picks the config file: explicit path, then CONFIG_PATH, then the
// local default.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadConfig(Path(path), &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func MustConfig(path string) *Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}
