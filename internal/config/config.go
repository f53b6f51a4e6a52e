package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

const (
	DefaultReference     = "TEST-3000/2026"
	DefaultExpectedCount = 3000
)

type Config struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	// TestReference is the nomor_surat value of the synthetic test event.
	TestReference string
	// ExpectedParticipants is the row count the import is supposed to produce.
	ExpectedParticipants int64

	Locale     string
	APIBaseURL string
}

// Load reads .env (when present) and the process environment, then validates.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional when the variables come from the environment.
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Driver:        strings.ToLower(strings.TrimSpace(getenv("DB_DRIVER"))),
		Host:          getenv("DB_HOST"),
		User:          getenv("DB_USER"),
		Password:      getenv("DB_PASSWORD"),
		Name:          getenv("DB_NAME"),
		TestReference: getenv("TEST_EVENT_REFERENCE"),
		Locale:        getenv("APP_LOCALE"),
		APIBaseURL:    getenv("API_BASE_URL"),
	}

	if raw := strings.TrimSpace(getenv("DB_PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("config: DB_PORT must be a number (%q)", raw)
		}
		cfg.Port = port
	}

	if raw := strings.TrimSpace(getenv("TEST_EXPECTED_PARTICIPANTS")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("config: TEST_EXPECTED_PARTICIPANTS must be a number (%q)", raw)
		}
		cfg.ExpectedParticipants = n
	} else {
		cfg.ExpectedParticipants = DefaultExpectedCount
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate fills defaults and rejects unusable values.
func (c *Config) validate() error {
	switch c.Driver {
	case "":
		c.Driver = DriverMySQL
	case DriverMySQL, DriverPostgres:
	case "pgx", "postgresql":
		c.Driver = DriverPostgres
	default:
		return fmt.Errorf("config: DB_DRIVER must be %q or %q (got %q)", DriverMySQL, DriverPostgres, c.Driver)
	}

	if strings.TrimSpace(c.Host) == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 3306
		if c.Driver == DriverPostgres {
			c.Port = 5432
		}
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config: DB_PORT out of range (%d)", c.Port)
	}
	if strings.TrimSpace(c.User) == "" {
		c.User = "root"
	}
	if strings.TrimSpace(c.Name) == "" {
		// Local default of the attendance application.
		c.Name = "bbpmp_presensi"
	}

	if strings.TrimSpace(c.TestReference) == "" {
		c.TestReference = DefaultReference
	}
	if c.ExpectedParticipants <= 0 {
		return fmt.Errorf("config: TEST_EXPECTED_PARTICIPANTS must be positive (got %d)", c.ExpectedParticipants)
	}

	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}
	if strings.TrimSpace(c.APIBaseURL) == "" {
		c.APIBaseURL = "http://localhost:5000"
	}
	parsed, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("config: API_BASE_URL invalid (%q): %w", c.APIBaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: API_BASE_URL invalid (%q): missing scheme or host", c.APIBaseURL)
	}
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")

	return nil
}

// DSN renders the connection string understood by the configured driver.
func (c *Config) DSN() string {
	addr := net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	if c.Driver == DriverPostgres {
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(c.User, c.Password),
			Host:     addr,
			Path:     "/" + c.Name,
			RawQuery: "sslmode=disable",
		}
		if c.Password == "" {
			u.User = url.User(c.User)
		}
		return u.String()
	}

	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = addr
	mc.DBName = c.Name
	return mc.FormatDSN()
}
