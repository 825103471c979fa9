package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

type Config struct {
	AppPort string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	// Regulatory minimum capital, whole KES. Converted to minor units
	// where the evaluator needs it.
	CapitalThresholdKES int64

	NotifyBuffer    int
	NotifyChannel   string
	NotifyRecipient string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:   getenv("APP_PORT", "8080"),
		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "solvency"),
		MySQLUser: getenv("MYSQL_USER", "solvency"),
		MySQLPass: getenv("MYSQL_PASS", "solvency"),

		RedisAddr: getenv("REDIS_ADDR", "redis:6379"),
		RedisDB:   getenvInt("REDIS_DB", 0),

		IdempTTLSecs: getenvInt("IDEMPOTENCY_TTL_SECONDS", 300),

		CapitalThresholdKES: 400_000_000,

		NotifyBuffer:    getenvInt("NOTIFY_BUFFER", 64),
		NotifyChannel:   getenv("NOTIFY_CHANNEL", "solvency.notifications"),
		NotifyRecipient: getenv("NOTIFY_RECIPIENT", "regulator"),
	}
	if v := os.Getenv("SOLVENCY_CAPITAL_THRESHOLD_KES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			c.CapitalThresholdKES = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
		return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
	}
	if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
		return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.CapitalThresholdKES <= 0 {
		return errors.New("SOLVENCY_CAPITAL_THRESHOLD_KES must be positive")
	}
	return nil
}

func (c *Config) CapitalThresholdCents() int64 { return c.CapitalThresholdKES * 100 }

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME scanning
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?multiStatements=true&parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}
