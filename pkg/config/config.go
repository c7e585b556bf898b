package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally a file).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	GST     GSTConfig
	Company CompanyConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	SeedDemo bool // load the demo catalog at startup
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GSTConfig tax settings. RatePercent is the total GST rate (CGST+SGST or
// IGST); HomeState decides intra- vs inter-state supply.
type GSTConfig struct {
	RatePercent   float64
	HomeState     string
	InvoicePrefix string
}

// Rate returns the configured rate as a decimal percentage.
func (c GSTConfig) Rate() decimal.Decimal {
	return decimal.NewFromFloat(c.RatePercent)
}

// CompanyConfig seller identity printed on tax invoices.
type CompanyConfig struct {
	Name    string
	GSTIN   string
	Address string
	UPIID   string // payee address for the UPI payment QR; empty disables the QR
}

// Load reads configuration from environment variables (and optionally a
// .env / config.env file). Env vars take priority. Expected names: APP_ENV,
// HTTP_PORT, GST_RATE_PERCENT, HOME_STATE, COMPANY_GSTIN, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env or config.env); missing files are fine.
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "kirana-ledger"),
			SeedDemo: getBool(v, "SEED_DEMO_DATA", false),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		GST: GSTConfig{
			RatePercent:   getFloat(v, "GST_RATE_PERCENT", 18),
			HomeState:     getString(v, "HOME_STATE", "Karnataka"),
			InvoicePrefix: getString(v, "INVOICE_PREFIX", "INV"),
		},
		Company: CompanyConfig{
			Name:    getString(v, "COMPANY_NAME", "Kirana Ledger"),
			GSTIN:   getString(v, "COMPANY_GSTIN", ""),
			Address: getString(v, "COMPANY_ADDRESS", ""),
			UPIID:   getString(v, "COMPANY_UPI_ID", ""),
		},
	}

	if cfg.GST.RatePercent < 0 {
		return nil, fmt.Errorf("config: GST_RATE_PERCENT must not be negative")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			f, _ := strconv.ParseFloat(v.GetString(key), 64)
			return f
		default:
			return v.GetFloat64(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
