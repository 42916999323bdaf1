package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // TIMEZONE must resolve in minimal images

	"cafeteria/internal/adapters/out/postgres"
	"cafeteria/internal/adapters/out/smtp"
	"cafeteria/internal/jobs"
	"cafeteria/internal/pkg/errs"
	"cafeteria/internal/pkg/session"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort       = "8080"
	defaultDBPort         = "5432"
	defaultDBSslMode      = "disable"
	defaultRequestTimeout = 5 * time.Second
	defaultSMTPPort       = "587"
)

type Config struct {
	AppEnv   string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	DBPool     postgres.PoolConfig

	RequestTimeout time.Duration

	SessionSecret       string
	SessionTTL          time.Duration
	SessionCookieSecure bool

	RedisURL string

	SMTP smtp.Config

	Location       *time.Location
	ReportSchedule string
}

// IsProduction reports whether APP_ENV names a production deployment.
func (c Config) IsProduction() bool {
	switch strings.ToLower(c.AppEnv) {
	case "production", "prod":
		return true
	default:
		return false
	}
}

// DSN builds the lib/pq connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// LoadConfig reads the environment, after loading .env from the working
// directory when it exists. Variables already set in the environment win.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return ParseConfig(os.Getenv)
}

// ParseConfig builds a Config from getenv. Every problem is reported at once.
func ParseConfig(getenv func(string) string) (Config, error) {
	p := envParser{getenv: getenv}
	pool := postgres.DefaultPoolConfig()

	cfg := Config{
		AppEnv:   p.str("APP_ENV", "development"),
		HTTPPort: p.str("HTTP_PORT", defaultHTTPPort),

		DBHost:     p.required("DB_HOST"),
		DBPort:     p.str("DB_PORT", defaultDBPort),
		DBUser:     p.required("DB_USER"),
		DBPassword: p.required("DB_PASSWORD"),
		DBName:     p.required("DB_NAME"),
		DBSslMode:  p.str("DB_SSLMODE", defaultDBSslMode),
		DBPool: postgres.PoolConfig{
			MaxOpenConns:    p.integer("DB_MAX_OPEN_CONNS", pool.MaxOpenConns),
			MaxIdleConns:    p.integer("DB_MAX_IDLE_CONNS", pool.MaxIdleConns),
			ConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", pool.ConnMaxLifetime),
		},

		RequestTimeout: p.duration("REQUEST_TIMEOUT", defaultRequestTimeout),

		SessionSecret:       p.required("SESSION_SECRET"),
		SessionTTL:          p.duration("SESSION_TTL", session.DefaultTTL),
		SessionCookieSecure: p.boolean("SESSION_COOKIE_SECURE", false),

		RedisURL: p.str("REDIS_URL", ""),

		SMTP: smtp.Config{
			Host:     p.str("SMTP_HOST", ""),
			Port:     p.str("SMTP_PORT", defaultSMTPPort),
			Username: p.str("SMTP_USERNAME", ""),
			Password: p.str("SMTP_PASSWORD", ""),
			From:     p.str("SMTP_FROM", "cafeteria@localhost"),
		},

		Location:       p.location("TIMEZONE"),
		ReportSchedule: p.str("REPORT_SCHEDULE", jobs.DefaultReportSchedule),
	}

	if cfg.DBPool.MaxIdleConns > cfg.DBPool.MaxOpenConns {
		p.fail(errs.NewValueIsOutOfRangeError("DB_MAX_IDLE_CONNS", cfg.DBPool.MaxIdleConns, 0, cfg.DBPool.MaxOpenConns))
	}

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type envParser struct {
	getenv func(string) string
	errs   []error
}

func (p *envParser) fail(err error) {
	p.errs = append(p.errs, err)
}

func (p *envParser) lookup(key string) (string, bool) {
	v := strings.TrimSpace(p.getenv(key))
	return v, v != ""
}

func (p *envParser) str(key, def string) string {
	if v, ok := p.lookup(key); ok {
		return v
	}
	return def
}

func (p *envParser) required(key string) string {
	v, ok := p.lookup(key)
	if !ok {
		p.fail(errs.NewValueIsRequiredError(key))
	}
	return v
}

func (p *envParser) integer(key string, def int) int {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%q is not a positive integer", v)))
		return def
	}
	return n
}

func (p *envParser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, fmt.Errorf("%q is not a positive duration", v)))
		return def
	}
	return d
}

func (p *envParser) boolean(key string, def bool) bool {
	v, ok := p.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return b
}

func (p *envParser) location(key string) *time.Location {
	v, ok := p.lookup(key)
	if !ok {
		return time.UTC
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		p.fail(errs.NewValueIsInvalidErrorWithCause(key, err))
		return time.UTC
	}
	return loc
}
