package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                     string
	ServiceName                string
	ServiceVersion             string
	HTTPAddr                   string
	ReadTimeout                time.Duration
	WriteTimeout               time.Duration
	LogLevel                   logging.Level
	DBURL                      string
	DBDisablePreparedBinary    bool
	RepositoryDriver           string
	JWTSecret                  string
	JWTTTL                     time.Duration
	UserInitialBalance         int64
	CacheEnabled               bool
	CacheTTL                   time.Duration
	CORSAllowedOrigins         []string
	SwaggerEnabled             bool
	MetricsEnabled             bool
	PprofEnabled               bool
	PprofAddr                  string
	UptraceEnabled             bool
	UptraceDSN                 string
	UptraceLogsEnabled         bool
	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration
	EventsDriver               string
	EventsWorkers              int
	EventsPublishTimeout       time.Duration
	EventsCircuitEnabled       bool
	EventsCircuitFailureCount  int
	EventsCircuitOpenTimeout   time.Duration
	KafkaBrokers               []string
	KafkaTopic                 string
	RedisAddr                  string
	RedisPassword              string
	RedisDB                    int
	RedisChannel               string
	WebhookURL                 string
	WebhookToken               string
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	RepositoryPostgres = "postgres"
	RepositoryMemory   = "memory"
)

const (
	EventsNone    = "none"
	EventsLog     = "log"
	EventsKafka   = "kafka"
	EventsRedis   = "redis"
	EventsWebhook = "webhook"
)

// Load reads configuration from the environment. A .env file in the working
// directory is applied first without overriding variables already set.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                     appEnv,
		ServiceName:                getEnv("APP_SERVICE_NAME", "champions-tracker-api"),
		ServiceVersion:             getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                   getEnv("APP_HTTP_ADDR", ":3333"),
		LogLevel:                   parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DBURL:                      strings.TrimSpace(getEnv("DB_URL", getEnv("DATABASE_URL", ""))),
		JWTSecret:                  strings.TrimSpace(getEnv("JWT_SECRET", "")),
		CORSAllowedOrigins:         splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofAddr:                  strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		UptraceDSN:                 strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		KafkaBrokers:               splitCSV(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:                 strings.TrimSpace(getEnv("KAFKA_TOPIC", "champions-tracker.events")),
		RedisAddr:                  strings.TrimSpace(getEnv("REDIS_ADDR", "")),
		RedisPassword:              getEnv("REDIS_PASSWORD", ""),
		RedisChannel:               strings.TrimSpace(getEnv("REDIS_CHANNEL", "champions-tracker.events")),
		WebhookURL:                 strings.TrimSpace(getEnv("EVENTS_WEBHOOK_URL", "")),
		WebhookToken:               strings.TrimSpace(getEnv("EVENTS_WEBHOOK_TOKEN", "")),
	}
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	p := parser{}
	cfg.ReadTimeout = p.positiveDuration("APP_READ_TIMEOUT", "10s")
	cfg.WriteTimeout = p.positiveDuration("APP_WRITE_TIMEOUT", "15s")
	cfg.DBDisablePreparedBinary = p.bool("DB_DISABLE_PREPARED_BINARY_RESULT", "true")
	cfg.JWTTTL = p.duration("JWT_TTL", "24h")
	cfg.UserInitialBalance = p.int64("USER_INITIAL_BALANCE", 1000)
	cfg.CacheEnabled = p.bool("CACHE_ENABLED", "true")
	cfg.CacheTTL = p.positiveDuration("CACHE_TTL", "60s")
	cfg.SwaggerEnabled = p.bool("SWAGGER_ENABLED", swaggerDefault)
	cfg.MetricsEnabled = p.bool("METRICS_ENABLED", "true")
	cfg.PprofEnabled = p.bool("PPROF_ENABLED", "false")
	cfg.UptraceEnabled = p.bool("UPTRACE_ENABLED", "false")
	cfg.UptraceLogsEnabled = p.bool("UPTRACE_LOGS_ENABLED", "true")
	cfg.PyroscopeEnabled = p.bool("PYROSCOPE_ENABLED", "false")
	cfg.PyroscopeUploadRate = p.positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	cfg.EventsWorkers = p.int("EVENTS_WORKERS", 4)
	cfg.EventsPublishTimeout = p.positiveDuration("EVENTS_PUBLISH_TIMEOUT", "5s")
	cfg.EventsCircuitEnabled = p.bool("EVENTS_CIRCUIT_ENABLED", "true")
	cfg.EventsCircuitFailureCount = p.int("EVENTS_CIRCUIT_FAILURE_COUNT", 5)
	cfg.EventsCircuitOpenTimeout = p.positiveDuration("EVENTS_CIRCUIT_OPEN_TIMEOUT", "15s")
	cfg.RedisDB = p.int("REDIS_DB", 0)
	if p.err != nil {
		return Config{}, p.err
	}

	if cfg.RepositoryDriver, err = parseChoice("REPOSITORY_DRIVER", getEnv("REPOSITORY_DRIVER", RepositoryPostgres),
		RepositoryPostgres, RepositoryMemory); err != nil {
		return Config{}, err
	}
	if cfg.EventsDriver, err = parseChoice("EVENTS_DRIVER", getEnv("EVENTS_DRIVER", EventsLog),
		EventsNone, EventsLog, EventsKafka, EventsRedis, EventsWebhook); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.JWTSecret == "":
		return fmt.Errorf("JWT_SECRET is required")
	case c.JWTTTL < 0:
		return fmt.Errorf("JWT_TTL must be >= 0")
	case c.UserInitialBalance < 0:
		return fmt.Errorf("USER_INITIAL_BALANCE must be >= 0")
	case c.RepositoryDriver == RepositoryPostgres && c.DBURL == "":
		return fmt.Errorf("DB_URL is required when REPOSITORY_DRIVER=%s", RepositoryPostgres)
	case len(c.CORSAllowedOrigins) == 0:
		return fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	case c.PprofEnabled && c.PprofAddr == "":
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	case c.UptraceEnabled && c.UptraceDSN == "":
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	case c.PyroscopeEnabled && c.PyroscopeServerAddress == "":
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	case c.PyroscopeEnabled && c.PyroscopeAppName == "":
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	case c.EventsWorkers < 1:
		return fmt.Errorf("EVENTS_WORKERS must be >= 1")
	case c.EventsCircuitFailureCount < 1:
		return fmt.Errorf("EVENTS_CIRCUIT_FAILURE_COUNT must be >= 1")
	case c.EventsDriver == EventsKafka && len(c.KafkaBrokers) == 0:
		return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_DRIVER=%s", EventsKafka)
	case c.EventsDriver == EventsKafka && c.KafkaTopic == "":
		return fmt.Errorf("KAFKA_TOPIC is required when EVENTS_DRIVER=%s", EventsKafka)
	case c.EventsDriver == EventsRedis && c.RedisAddr == "":
		return fmt.Errorf("REDIS_ADDR is required when EVENTS_DRIVER=%s", EventsRedis)
	case c.EventsDriver == EventsWebhook && c.WebhookURL == "":
		return fmt.Errorf("EVENTS_WEBHOOK_URL is required when EVENTS_DRIVER=%s", EventsWebhook)
	}
	return nil
}

// parser collects the first parse error so Load can read every variable in
// one pass.
type parser struct {
	err error
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
	}
}

func (p *parser) bool(key, fallback string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		p.fail(key, err)
	}
	return v
}

func (p *parser) int(key string, fallback int) int {
	v, err := getEnvAsInt(key, fallback)
	if err != nil {
		p.fail(key, err)
	}
	return v
}

func (p *parser) int64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		p.fail(key, err)
	}
	return v
}

func (p *parser) duration(key, fallback string) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		p.fail(key, err)
	}
	return v
}

func (p *parser) positiveDuration(key, fallback string) time.Duration {
	v := p.duration(key, fallback)
	if p.err == nil && v <= 0 {
		p.err = fmt.Errorf("%s must be > 0", key)
	}
	return v
}

func parseChoice(key, raw string, allowed ...string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for _, a := range allowed {
		if value == a {
			return value, nil
		}
	}
	return "", fmt.Errorf("invalid %s %q: valid values are %s", key, raw, strings.Join(allowed, ", "))
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
