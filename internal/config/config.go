package config

import (
	"time"
)

type (
	Config struct {
		App       App      `json:"app"`
		Postgres  Postgres `json:"postgres"`
		Redis     Redis    `json:"redis"`
		SecretKey string   `json:"secret_key"`

		// CronSecret authenticates scheduled triggers calling the sync
		// endpoints via "Authorization: Bearer <secret>".
		CronSecret string `json:"cron_secret"`

		NewRelicLicenseKey string `json:"new_relic_license_key"`

		Providers          ProvidersConfig          `json:"providers"`
		Rates              RatesConfig              `json:"rates"`
		Sync               SyncConfig               `json:"sync"`
		ExponentialBackoff ExponentialBackOffConfig `json:"exponential_backoff"`
	}

	App struct {
		Env             string        `json:"env"`
		HTTPPort        int           `json:"http_port"`
		HTTPTimeout     time.Duration `json:"http_timeout"`
		GracefulTimeout time.Duration `json:"graceful_timeout"`
		Name            string        `json:"name"`
		LogOption       string        `json:"log_option"`
		LogLevel        string        `json:"log_level"`
	}

	Postgres struct {
		Write Database `json:"write"`
		Read  Database `json:"read"`
	}

	Database struct {
		DbHost            string `json:"db_host"`
		DbPort            string `json:"db_port"`
		DbUser            string `json:"db_user"`
		DbPass            string `json:"db_pass"`
		DbName            string `json:"db_name"`
		DbSchema          string `json:"db_schema"`
		MaxOpenConnection int    `json:"maxOpenConnections"`
		MaxIdleConnection int    `json:"maxIdleConnections"`
		ConnMaxLifetime   int    `json:"connMaxLifetime"`
	}

	Redis struct {
		Host     string `json:"host"`
		Port     string `json:"port"`
		Password string `json:"password"`
		Db       int    `json:"db"`
	}

	// ProvidersConfig holds one credential block per upstream aggregator.
	// Only providers with Enabled=true are registered at startup.
	ProvidersConfig struct {
		SaltEdge      SaltEdgeConfig      `json:"saltedge"`
		SnapTrade     SnapTradeConfig     `json:"snaptrade"`
		Vezgo         VezgoConfig         `json:"vezgo"`
		EnableBanking EnableBankingConfig `json:"enablebanking"`
	}

	SaltEdgeConfig struct {
		Enabled   bool          `json:"enabled"`
		BaseURL   string        `json:"base_url"`
		AppID     string        `json:"app_id"`
		Secret    string        `json:"secret"`
		Timeout   time.Duration `json:"timeout"`
		PageLimit int           `json:"page_limit"`
	}

	SnapTradeConfig struct {
		Enabled     bool          `json:"enabled"`
		BaseURL     string        `json:"base_url"`
		ClientID    string        `json:"client_id"`
		ConsumerKey string        `json:"consumer_key"`
		Timeout     time.Duration `json:"timeout"`
		RedirectURI string        `json:"redirect_uri"`
	}

	VezgoConfig struct {
		Enabled   bool          `json:"enabled"`
		BaseURL   string        `json:"base_url"`
		ClientID  string        `json:"client_id"`
		APISecret string        `json:"api_secret"`
		Timeout   time.Duration `json:"timeout"`
	}

	EnableBankingConfig struct {
		Enabled       bool          `json:"enabled"`
		BaseURL       string        `json:"base_url"`
		ApplicationID string        `json:"application_id"`
		PrivateKey    string        `json:"private_key"`
		Timeout       time.Duration `json:"timeout"`
		Countries     []string      `json:"countries"`
	}

	// RatesConfig configures the single upstream rate source per deployment.
	// BaseCurrency is part of the conversion contract: stored rates are
	// units of currency per 1 unit of base.
	RatesConfig struct {
		BaseURL      string        `json:"base_url"`
		APIKey       string        `json:"api_key"`
		BaseCurrency string        `json:"base_currency"`
		Timeout      time.Duration `json:"timeout"`
		CacheTTL     time.Duration `json:"cache_ttl"`
	}

	SyncConfig struct {
		// TransactionWindowDays bounds how far back transactions are fetched
		// on a manual account refresh.
		TransactionWindowDays int `json:"transaction_window_days"`

		// StopOnProviderError halts a sync at the first provider failure.
		// The zero value keeps going, so one provider cannot starve the
		// others. Kept configurable for operational drills.
		StopOnProviderError bool `json:"stop_on_provider_error"`
	}

	ExponentialBackOffConfig struct {
		MaxBackoffTime    time.Duration `json:"max_backoff_time"`
		BackoffMultiplier float64       `json:"backoff_multiplier"`
		MaxRetries        uint64        `json:"max_retries"`
	}
)
