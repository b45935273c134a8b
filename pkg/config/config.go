package config

import (
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const envFile = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	APIAddress string `env:"API_ADDRESS" envDefault:":8080"`

	// Store endpoint and its access key. Not validated until the first ping.
	StoreURL string `env:"STORE_URL"`
	StoreKey string `env:"STORE_KEY"`

	Timezone      string `env:"APP_TIMEZONE" envDefault:"UTC"`
	LabelLocale   string `env:"LABEL_LOCALE" envDefault:"es"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Empty address disables the dashboard cache.
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	DashboardCacheTTL time.Duration `env:"DASHBOARD_CACHE_TTL" envDefault:"1m"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"./migrations"`
}

func New() *Config {
	once.Do(func() {
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading envs error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads the optional env file and parses the process environment.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.New("reading env file error: " + err.Error())
	}
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("parsing envs error: " + err.Error())
	}
	return cfg, nil
}
