package config

import (
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"log"
	"os"
	"time"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Storage    Storage    `yaml:"storage"`
	Database   Database   `yaml:"database"`
	CORS       CORS       `yaml:"cors"`
	Client     Client     `yaml:"client"`
	Cache      Cache      `yaml:"cache"`
	Panel      Panel      `yaml:"panel"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:3000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Storage selects where the booking service keeps its collection.
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	Path   string `yaml:"path" env:"STORAGE_PATH" env-default:"bookings.json"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"bookings"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

// Client configures the remote side of bookctl.
type Client struct {
	BaseURL   string        `yaml:"base_url" env:"BOOKING_BASE_URL" env-default:"http://localhost:3000"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env-default:"serviceBooker/bookctl"`
}

// Cache configures the device-local booking cache.
type Cache struct {
	Driver string `yaml:"driver" env:"CACHE_DRIVER" env-default:"file"`
	Path   string `yaml:"path" env:"CACHE_PATH" env-default:"local-bookings.json"`
	Key    string `yaml:"key" env-default:"bookings"`
	Redis  Redis  `yaml:"redis"`
}

type Redis struct {
	Address  string `yaml:"address" env:"REDIS_ADDRESS" env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
	PoolSize int    `yaml:"pool_size" env-default:"10"`
}

// Panel holds the auto-dismiss intervals of the confirmation panel.
type Panel struct {
	ConfirmationTTL time.Duration `yaml:"confirmation_ttl" env-default:"15s"`
	SimulatedTTL    time.Duration `yaml:"simulated_ttl" env-default:"10s"`
	ErrorTTL        time.Duration `yaml:"error_ttl" env-default:"5s"`
	SimulatedDelay  time.Duration `yaml:"simulated_delay" env-default:"2s"`
}

// MustLoad reads the config from CONFIG_PATH, or from the environment and
// defaults when CONFIG_PATH is not set.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	const op = "config.Load"

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: config file does not exist: %s", op, configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &cfg, nil
}
