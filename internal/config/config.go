package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Store     StoreConfig
	Cashier   CashierConfig
	Seed      SeedConfig
	Enhancer  EnhancerConfig
	Printer   PrinterConfig
	Mail      MailConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
	Path     string
}

type JWTConfig struct {
	Secret             string
	ExpiryHours        time.Duration
	RefreshExpiryHours time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type StoreConfig struct {
	Name           string
	TableCount     int
	CurrencySymbol string
	Timezone       string
}

// Location resolves the store timezone, falling back to UTC.
func (s StoreConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		log.Printf("Warning: unknown STORE_TIMEZONE %q, using UTC: %v", s.Timezone, err)
		return time.UTC
	}
	return loc
}

type CashierConfig struct {
	VarianceWarningPct  decimal.Decimal
	VarianceCriticalPct decimal.Decimal
}

type SeedConfig struct {
	AdminUsername string
	AdminPassword string
}

type EnhancerConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type PrinterConfig struct {
	Type      string
	USBPath   string
	Address   string
	CharWidth int
}

type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	ReportTo []string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	viper.SetDefault("APP_NAME", "pos-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("DB_DRIVER", "postgres")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "sertao_pos")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "America/Recife")
	viper.SetDefault("DB_PATH", "sertao_pos.db")
	viper.SetDefault("JWT_SECRET", "change-this-secret-in-production")
	viper.SetDefault("JWT_EXPIRY_HOURS", 12)
	viper.SetDefault("JWT_REFRESH_EXPIRY_HOURS", 168)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("STORE_NAME", "Sertão Gourmet")
	viper.SetDefault("STORE_TABLE_COUNT", 12)
	viper.SetDefault("STORE_CURRENCY_SYMBOL", "R$")
	viper.SetDefault("STORE_TIMEZONE", "America/Recife")
	viper.SetDefault("CASHIER_VARIANCE_WARNING_PCT", "1")
	viper.SetDefault("CASHIER_VARIANCE_CRITICAL_PCT", "5")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-001")
	viper.SetDefault("ENHANCER_TIMEOUT_SECONDS", 8)
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_CHAR_WIDTH", 48)
	viper.SetDefault("SMTP_PORT", 587)

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Driver:   strings.ToLower(viper.GetString("DB_DRIVER")),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
			Path:     viper.GetString("DB_PATH"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			ExpiryHours:        time.Duration(viper.GetInt("JWT_EXPIRY_HOURS")) * time.Hour,
			RefreshExpiryHours: time.Duration(viper.GetInt("JWT_REFRESH_EXPIRY_HOURS")) * time.Hour,
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Store: StoreConfig{
			Name:           viper.GetString("STORE_NAME"),
			TableCount:     viper.GetInt("STORE_TABLE_COUNT"),
			CurrencySymbol: viper.GetString("STORE_CURRENCY_SYMBOL"),
			Timezone:       viper.GetString("STORE_TIMEZONE"),
		},
		Cashier: CashierConfig{
			VarianceWarningPct:  getDecimal("CASHIER_VARIANCE_WARNING_PCT"),
			VarianceCriticalPct: getDecimal("CASHIER_VARIANCE_CRITICAL_PCT"),
		},
		Seed: SeedConfig{
			AdminUsername: viper.GetString("ADMIN_USERNAME"),
			AdminPassword: viper.GetString("ADMIN_PASSWORD"),
		},
		Enhancer: EnhancerConfig{
			APIKey:  viper.GetString("GEMINI_API_KEY"),
			Model:   viper.GetString("GEMINI_MODEL"),
			Timeout: time.Duration(viper.GetInt("ENHANCER_TIMEOUT_SECONDS")) * time.Second,
		},
		Printer: PrinterConfig{
			Type:      viper.GetString("PRINTER_TYPE"),
			USBPath:   viper.GetString("PRINTER_USB_PATH"),
			Address:   viper.GetString("PRINTER_ADDRESS"),
			CharWidth: viper.GetInt("PRINTER_CHAR_WIDTH"),
		},
		Mail: MailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			Username: viper.GetString("SMTP_USERNAME"),
			Password: viper.GetString("SMTP_PASSWORD"),
			From:     viper.GetString("SMTP_FROM"),
			ReportTo: splitList(viper.GetString("REPORT_EMAIL_TO")),
		},
	}
}

// DSN renders the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	switch c.Driver {
	case "mysql":
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name)
	case "sqlite":
		return c.Path
	default:
		return "host=" + c.Host +
			" user=" + c.User +
			" password=" + c.Password +
			" dbname=" + c.Name +
			" port=" + c.Port +
			" sslmode=" + c.SSLMode +
			" TimeZone=" + c.Timezone
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getDecimal(key string) decimal.Decimal {
	d, err := decimal.NewFromString(viper.GetString(key))
	if err != nil {
		log.Printf("Warning: %s is not a number, using 0: %v", key, err)
		return decimal.Zero
	}
	return d
}
