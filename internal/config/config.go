// config предоставляет структуру конфигурации market-сервиса
// и функции загрузки из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env      string        `yaml:"env"      env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	WB       WBConfig      `yaml:"wb"`
	Cache    CacheConfig   `yaml:"cache"`
	Fetch    FetchConfig   `yaml:"fetch"`
	Compare  CompareConfig `yaml:"compare"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// TimeoutConfig — таймауты сервиса.
// Операции поиска ходят за многими страницами апстрима, поэтому
// дедлайн запроса заметно больше типичного для CRUD-сервисов.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"60s"`
}

// WBConfig — адреса и базовые параметры внутренних JSON API площадки.
// URL вынесены в конфиг, чтобы тесты могли подменять апстрим на httptest.
type WBConfig struct {
	SearchURL   string        `yaml:"search_url"   env:"WB_SEARCH_URL"   env-default:"https://search.wb.ru/exactmatch/ru/common/v9/search"`
	DetailURL   string        `yaml:"detail_url"   env:"WB_DETAIL_URL"   env-default:"https://card.wb.ru/cards/v4/detail"`
	CatalogURL  string        `yaml:"catalog_url"  env:"WB_CATALOG_URL"  env-default:"https://catalog.wb.ru/brands/v4/catalog"`
	FeedbackURL string        `yaml:"feedback_url" env:"WB_FEEDBACK_URL" env-default:"https://feedbacks2.wb.ru"`
	BrandURL    string        `yaml:"brand_url"    env:"WB_BRAND_URL"    env-default:"https://static-basket-01.wbbasket.ru"`
	Currency    string        `yaml:"currency"     env:"WB_CURRENCY"     env-default:"rub"`
	Destination string        `yaml:"destination"  env:"WB_DESTINATION"  env-default:"12358062"`
	Timeout     time.Duration `yaml:"timeout"      env:"WB_HTTP_TIMEOUT" env-default:"10s"`
}

// CacheConfig — настройки Redis-кэша.
type CacheConfig struct {
	// URL в формате redis://[:pass@]host:port/db.
	URL string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
	// TTL записей кэша.
	TTL time.Duration `yaml:"ttl" env:"CACHE_TTL" env-default:"20m"`
	// Prefix — префикс ключей.
	Prefix string `yaml:"prefix" env:"CACHE_PREFIX" env-default:"wb:"`
}

// FetchConfig — параметры пагинированной загрузки.
type FetchConfig struct {
	// MaxPages — глобальный потолок числа страниц на один запрос.
	MaxPages int `yaml:"max_pages" env:"FETCH_MAX_PAGES" env-default:"10000"`
	// SearchConcurrency — число одновременных страниц для поиска.
	SearchConcurrency int `yaml:"search_concurrency" env:"FETCH_SEARCH_CONCURRENCY" env-default:"10"`
	// SupplierConcurrency — число одновременных страниц каталога продавца.
	// Ниже поискового: каталожный апстрим строже к частоте запросов.
	SupplierConcurrency int `yaml:"supplier_concurrency" env:"FETCH_SUPPLIER_CONCURRENCY" env-default:"5"`
	// SupplierRetries — число попыток на страницу каталога продавца.
	SupplierRetries int `yaml:"supplier_retries" env:"FETCH_SUPPLIER_RETRIES" env-default:"30"`
	// RetryBackoff — шаг линейного бэкоффа между попытками (шаг × номер попытки).
	RetryBackoff time.Duration `yaml:"retry_backoff" env:"FETCH_RETRY_BACKOFF" env-default:"600ms"`
	// SupplierPacing — фиксированная пауза после каждой успешной страницы каталога.
	SupplierPacing time.Duration `yaml:"supplier_pacing" env:"FETCH_SUPPLIER_PACING" env-default:"600ms"`
	// FeedbackMaxPages — потолок страниц при загрузке отзывов.
	FeedbackMaxPages int `yaml:"feedback_max_pages" env:"FETCH_FEEDBACK_MAX_PAGES" env-default:"100"`
}

// CompareConfig — параметры подбора альтернатив.
type CompareConfig struct {
	// MinFeedbacks — минимальное число отзывов у кандидата.
	// 0 отключает фильтр.
	MinFeedbacks int `yaml:"min_feedbacks" env:"COMPARE_MIN_FEEDBACKS" env-default:"0"`
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
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file does not exist: %s", p)
		}
		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}
		if err := c.validate(); err != nil {
			return nil, err
		}
		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		if err := cleanenv.ReadConfig("local.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("failed to read local.yaml: %w", err)
		}
		if err := cfg.validate(); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0")
	}
	if c.Fetch.MaxPages <= 0 {
		return fmt.Errorf("fetch.max_pages must be > 0")
	}
	if c.Fetch.SearchConcurrency <= 0 {
		return fmt.Errorf("fetch.search_concurrency must be > 0")
	}
	if c.Fetch.SupplierConcurrency <= 0 {
		return fmt.Errorf("fetch.supplier_concurrency must be > 0")
	}
	if c.Fetch.SupplierRetries <= 0 {
		return fmt.Errorf("fetch.supplier_retries must be > 0")
	}
	if c.Fetch.FeedbackMaxPages <= 0 {
		return fmt.Errorf("fetch.feedback_max_pages must be > 0")
	}
	if c.Compare.MinFeedbacks < 0 {
		return fmt.Errorf("compare.min_feedbacks must be >= 0")
	}
	if c.WB.SearchURL == "" || c.WB.DetailURL == "" || c.WB.CatalogURL == "" ||
		c.WB.FeedbackURL == "" || c.WB.BrandURL == "" {
		return fmt.Errorf("wb: all upstream base urls are required")
	}
	return nil
}
