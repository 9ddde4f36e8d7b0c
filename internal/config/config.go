// config предоставляет структуру конфигурации приложения и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация приложения.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env     string        `yaml:"env" env:"ENV" env-default:"local"`
	API     APIConfig     `yaml:"api"`
	Query   QueryConfig   `yaml:"query"`
	Storage StorageConfig `yaml:"storage"`
	App     AppConfig     `yaml:"app"`
}

// APIConfig — эндпоинты удалённых сущностей и таймаут запроса.
type APIConfig struct {
	CharactersURL string        `yaml:"characters_url" env:"CHARACTERS_URL" env-default:"https://rickandmortyapi.com/api/character"`
	NewsURL       string        `yaml:"news_url" env:"NEWS_URL" env-required:"true"`
	UsersURL      string        `yaml:"users_url" env:"USERS_URL" env-required:"true"`
	Timeout       time.Duration `yaml:"timeout" env:"API_TIMEOUT" env-default:"10s"`
}

// QueryConfig — политика кэширующего слоя загрузки.
type QueryConfig struct {
	// RetryMax — число повторов после первой неудачной попытки.
	RetryMax uint64 `yaml:"retry_max" env:"QUERY_RETRY_MAX" env-default:"3"`
}

// StorageConfig — настройки долговременного key-value хранилища.
type StorageConfig struct {
	RedisURL string `yaml:"redis_url" env:"REDIS_URL" env-required:"true"`
	Prefix   string `yaml:"prefix" env:"STORAGE_PREFIX" env-default:"charhub:"`
}

// AppConfig — прикладные настройки сессии.
type AppConfig struct {
	DefaultLanguage string `yaml:"default_language" env:"DEFAULT_LANGUAGE" env-default:"es"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
