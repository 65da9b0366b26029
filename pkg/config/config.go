package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Storage drivers understood by pkg/storage.
const (
	StorageDriverSupabase = "supabase"
	StorageDriverLocal    = "local"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string
	PublicURL string

	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	CORS     CORSConfig
	Log      LogConfig
	Backend  BackendConfig
	Storage  StorageConfig
	Admin    AdminConfig
	Chat     ChatConfig
	Payments PaymentConfig
	Currency CurrencyConfig
}

type DatabaseConfig struct {
	// URL, when set, is used verbatim instead of the discrete fields.
	URL          string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CacheConfig toggles the read-through cache for public listings.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// BackendConfig holds the managed backend endpoint and its service key.
type BackendConfig struct {
	URL        string
	ServiceKey string
	Timeout    time.Duration
}

// StorageConfig selects the object storage driver and bucket names.
type StorageConfig struct {
	Driver             string
	PackageBucket      string
	ScreenshotBucket   string
	LocalDir           string
	SignedURLSecret    string
	SignedURLTTL       time.Duration
	MaxUploadSizeBytes int64
}

// AdminConfig configures the shared-password admin gate.
type AdminConfig struct {
	Password     string
	PasswordHash string
	TokenSecret  string
	TokenTTL     time.Duration
}

// ChatConfig configures the upstream LLM completion API.
type ChatConfig struct {
	APIKey           string
	APIURL           string
	Model            string
	Temperature      float64
	MaxTokens        int
	Timeout          time.Duration
	SystemPromptFile string
	BreakerFailures  uint32
	BreakerOpenFor   time.Duration
}

// PaymentConfig carries the manual transfer destinations shown to students.
type PaymentConfig struct {
	BkashNumber       string
	NagadNumber       string
	BankAccountNumber string
	BankName          string
	BankBranch        string
	BankAccountName   string
}

// CurrencyConfig holds the fixed conversion rate for display prices.
type CurrencyConfig struct {
	EURRate float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !isMissingFile(err) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")
	cfg.PublicURL = strings.TrimRight(v.GetString("PUBLIC_URL"), "/")

	cfg.Database = DatabaseConfig{
		URL:          v.GetString("DATABASE_URL"),
		Host:         v.GetString("DB_HOST"),
		Port:         v.GetInt("DB_PORT"),
		User:         v.GetString("DB_USER"),
		Password:     v.GetString("DB_PASSWORD"),
		Name:         v.GetString("DB_NAME"),
		SSLMode:      v.GetString("DB_SSL_MODE"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),
	}

	cfg.Redis = RedisConfig{
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Cache = CacheConfig{
		Enabled: v.GetBool("ENABLE_PUBLIC_CACHE"),
		TTL:     parseDuration(v.GetString("PUBLIC_CACHE_TTL"), 5*time.Minute),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Backend = BackendConfig{
		URL:        strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
		ServiceKey: v.GetString("BACKEND_SERVICE_KEY"),
		Timeout:    parseDuration(v.GetString("BACKEND_TIMEOUT"), 30*time.Second),
	}

	maxUpload := v.GetInt64("STORAGE_MAX_UPLOAD_SIZE")
	if maxUpload <= 0 {
		maxUpload = 10 * 1024 * 1024
	}
	cfg.Storage = StorageConfig{
		Driver:             strings.ToLower(v.GetString("STORAGE_DRIVER")),
		PackageBucket:      v.GetString("STORAGE_PACKAGE_BUCKET"),
		ScreenshotBucket:   v.GetString("STORAGE_SCREENSHOT_BUCKET"),
		LocalDir:           v.GetString("STORAGE_LOCAL_DIR"),
		SignedURLSecret:    v.GetString("STORAGE_SIGNED_URL_SECRET"),
		SignedURLTTL:       parseDuration(v.GetString("STORAGE_SIGNED_URL_TTL"), 365*24*time.Hour),
		MaxUploadSizeBytes: maxUpload,
	}

	cfg.Admin = AdminConfig{
		Password:     v.GetString("ADMIN_PASSWORD"),
		PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
		TokenSecret:  v.GetString("ADMIN_TOKEN_SECRET"),
		TokenTTL:     parseDuration(v.GetString("ADMIN_TOKEN_TTL"), 8*time.Hour),
	}

	cfg.Chat = ChatConfig{
		APIKey:           v.GetString("CHAT_API_KEY"),
		APIURL:           v.GetString("CHAT_API_URL"),
		Model:            v.GetString("CHAT_MODEL"),
		Temperature:      v.GetFloat64("CHAT_TEMPERATURE"),
		MaxTokens:        v.GetInt("CHAT_MAX_TOKENS"),
		Timeout:          parseDuration(v.GetString("CHAT_TIMEOUT"), 30*time.Second),
		SystemPromptFile: v.GetString("CHAT_SYSTEM_PROMPT_FILE"),
		BreakerFailures:  v.GetUint32("CHAT_BREAKER_FAILURES"),
		BreakerOpenFor:   parseDuration(v.GetString("CHAT_BREAKER_OPEN_FOR"), 30*time.Second),
	}

	cfg.Payments = PaymentConfig{
		BkashNumber:       v.GetString("PAYMENT_BKASH_NUMBER"),
		NagadNumber:       v.GetString("PAYMENT_NAGAD_NUMBER"),
		BankAccountNumber: v.GetString("PAYMENT_BANK_ACCOUNT_NUMBER"),
		BankName:          v.GetString("PAYMENT_BANK_NAME"),
		BankBranch:        v.GetString("PAYMENT_BANK_BRANCH"),
		BankAccountName:   v.GetString("PAYMENT_BANK_ACCOUNT_NAME"),
	}

	cfg.Currency = CurrencyConfig{EURRate: v.GetFloat64("CURRENCY_EUR_RATE")}

	return cfg, nil
}

// Validate reports configuration gaps that make startup impossible.
func (c *Config) Validate() error {
	var problems []string
	if c.Database.URL == "" && c.Database.Name == "" {
		problems = append(problems, "DB_NAME is required")
	}
	switch c.Storage.Driver {
	case StorageDriverSupabase:
		if c.Backend.URL == "" {
			problems = append(problems, "BACKEND_URL is required for the supabase storage driver")
		}
		if c.Backend.ServiceKey == "" {
			problems = append(problems, "BACKEND_SERVICE_KEY is required for the supabase storage driver")
		}
	case StorageDriverLocal:
		if c.Storage.SignedURLSecret == "" {
			problems = append(problems, "STORAGE_SIGNED_URL_SECRET is required for the local storage driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}
	if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
		problems = append(problems, "ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required")
	}
	if c.Admin.TokenSecret == "" {
		problems = append(problems, "ADMIN_TOKEN_SECRET is required")
	}
	if c.Currency.EURRate <= 0 {
		problems = append(problems, "CURRENCY_EUR_RATE must be positive")
	}
	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")
	v.SetDefault("PUBLIC_URL", "http://localhost:8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "nextup")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("ENABLE_PUBLIC_CACHE", false)
	v.SetDefault("PUBLIC_CACHE_TTL", "5m")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("BACKEND_URL", "")
	v.SetDefault("BACKEND_SERVICE_KEY", "")
	v.SetDefault("BACKEND_TIMEOUT", "30s")

	v.SetDefault("STORAGE_DRIVER", StorageDriverSupabase)
	v.SetDefault("STORAGE_PACKAGE_BUCKET", "package-images")
	v.SetDefault("STORAGE_SCREENSHOT_BUCKET", "payment-screenshots")
	v.SetDefault("STORAGE_LOCAL_DIR", "./uploads")
	v.SetDefault("STORAGE_SIGNED_URL_SECRET", "")
	v.SetDefault("STORAGE_SIGNED_URL_TTL", "8760h")
	v.SetDefault("STORAGE_MAX_UPLOAD_SIZE", 10*1024*1024)

	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("ADMIN_TOKEN_SECRET", "")
	v.SetDefault("ADMIN_TOKEN_TTL", "8h")

	v.SetDefault("CHAT_API_KEY", "")
	v.SetDefault("CHAT_API_URL", "https://api.groq.com/openai/v1/chat/completions")
	v.SetDefault("CHAT_MODEL", "llama-3.3-70b-versatile")
	v.SetDefault("CHAT_TEMPERATURE", 0.6)
	v.SetDefault("CHAT_MAX_TOKENS", 500)
	v.SetDefault("CHAT_TIMEOUT", "30s")
	v.SetDefault("CHAT_SYSTEM_PROMPT_FILE", "")
	v.SetDefault("CHAT_BREAKER_FAILURES", 5)
	v.SetDefault("CHAT_BREAKER_OPEN_FOR", "30s")

	v.SetDefault("PAYMENT_BKASH_NUMBER", "01883-913491")
	v.SetDefault("PAYMENT_NAGAD_NUMBER", "01883-913491")
	v.SetDefault("PAYMENT_BANK_ACCOUNT_NUMBER", "2304144638001")
	v.SetDefault("PAYMENT_BANK_NAME", "City Bank")
	v.SetDefault("PAYMENT_BANK_BRANCH", "Khulna")
	v.SetDefault("PAYMENT_BANK_ACCOUNT_NAME", "")

	v.SetDefault("CURRENCY_EUR_RATE", 118)
}

func isMissingFile(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
