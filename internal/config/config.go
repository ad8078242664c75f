package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env            string `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	Database       Database `yaml:"database"`
	MigrationsPath string   `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"./migrations/main"`
	Stats          Stats    `yaml:"stats"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"ewm"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

// Stats points the main service at the stats server.
type Stats struct {
	URL     string        `yaml:"url" env:"STATS_SERVER_URL" env-default:"http://localhost:9090"`
	Timeout time.Duration `yaml:"timeout" env:"STATS_TIMEOUT" env-default:"2s"`
}

// DSN is the libpq keyword/value connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host,
		d.Port,
		d.User,
		d.Password,
		d.DBName,
		d.SSLMode,
	)
}

// URL is the postgres:// form used by pgx and migrate.
func (d Database) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.DBName,
		RawQuery: url.Values{"sslmode": {d.SSLMode}}.Encode(),
	}

	return u.String()
}

// MustLoad reads the YAML file named by CONFIG_PATH, or only the environment
// when CONFIG_PATH is unset. A .env file in the working directory is loaded
// first if present.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	// .env is optional; variables may come from the environment directly.
	_ = godotenv.Load()

	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("read env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", configPath, err)
	}

	return &cfg, nil
}
