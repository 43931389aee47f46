package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/dannyaudian/payroll-indonesia-go/bpjs"
	"github.com/dannyaudian/payroll-indonesia-go/fixtures"
	"github.com/dannyaudian/payroll-indonesia-go/pph21"
	"github.com/dannyaudian/payroll-indonesia-go/rates"
)

type Config struct {
	App  AppConfig
	BPJS bpjs.Rates
	Tax  pph21.Config

	// RateCacheTTL bounds how long cached rate-table lookups are served
	// before hitting the backing store again.
	RateCacheTTL time.Duration
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

// Load reads configuration from the environment, seeded from a .env file
// when one exists. Every statutory parameter defaults to the current
// regulation values, so an empty environment yields a working config.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	ttl, err := time.ParseDuration(getEnv("RATE_CACHE_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_CACHE_TTL: %w", err)
	}
	config.RateCacheTTL = ttl

	bpjsRates := fixtures.DefaultBPJSRates()
	if bpjsRates.KesehatanEmployeePercent, err = getEnvDecimal("BPJS_KESEHATAN_EMPLOYEE_PERCENT", bpjsRates.KesehatanEmployeePercent); err != nil {
		return nil, err
	}
	if bpjsRates.KesehatanEmployerPercent, err = getEnvDecimal("BPJS_KESEHATAN_EMPLOYER_PERCENT", bpjsRates.KesehatanEmployerPercent); err != nil {
		return nil, err
	}
	if bpjsRates.KesehatanMaxSalary, err = getEnvDecimal("BPJS_KESEHATAN_MAX_SALARY", bpjsRates.KesehatanMaxSalary); err != nil {
		return nil, err
	}
	if bpjsRates.JHTEmployeePercent, err = getEnvDecimal("BPJS_JHT_EMPLOYEE_PERCENT", bpjsRates.JHTEmployeePercent); err != nil {
		return nil, err
	}
	if bpjsRates.JHTEmployerPercent, err = getEnvDecimal("BPJS_JHT_EMPLOYER_PERCENT", bpjsRates.JHTEmployerPercent); err != nil {
		return nil, err
	}
	if bpjsRates.JPEmployeePercent, err = getEnvDecimal("BPJS_JP_EMPLOYEE_PERCENT", bpjsRates.JPEmployeePercent); err != nil {
		return nil, err
	}
	if bpjsRates.JPEmployerPercent, err = getEnvDecimal("BPJS_JP_EMPLOYER_PERCENT", bpjsRates.JPEmployerPercent); err != nil {
		return nil, err
	}
	if bpjsRates.JPMaxSalary, err = getEnvDecimal("BPJS_JP_MAX_SALARY", bpjsRates.JPMaxSalary); err != nil {
		return nil, err
	}
	if bpjsRates.JKKPercent, err = getEnvDecimal("BPJS_JKK_PERCENT", bpjsRates.JKKPercent); err != nil {
		return nil, err
	}
	if bpjsRates.JKMPercent, err = getEnvDecimal("BPJS_JKM_PERCENT", bpjsRates.JKMPercent); err != nil {
		return nil, err
	}
	config.BPJS = bpjsRates

	tax := pph21.DefaultConfig()
	if tax.BiayaJabatanRatePercent, err = getEnvDecimal("BIAYA_JABATAN_PERCENT", tax.BiayaJabatanRatePercent); err != nil {
		return nil, err
	}
	if tax.BiayaJabatanCapMonthly, err = getEnvDecimal("BIAYA_JABATAN_CAP_MONTHLY", tax.BiayaJabatanCapMonthly); err != nil {
		return nil, err
	}
	if tax.BiayaJabatanCapAnnual, err = getEnvDecimal("BIAYA_JABATAN_CAP_ANNUAL", tax.BiayaJabatanCapAnnual); err != nil {
		return nil, err
	}
	terFallbacks := map[string]rates.TERCategory{
		"TER_FALLBACK_RATE_A": rates.TERCategoryA,
		"TER_FALLBACK_RATE_B": rates.TERCategoryB,
		"TER_FALLBACK_RATE_C": rates.TERCategoryC,
	}
	for key, category := range terFallbacks {
		if tax.TERFallbackRates[category], err = getEnvDecimal(key, tax.TERFallbackRates[category]); err != nil {
			return nil, err
		}
	}
	config.Tax = tax

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.BPJS.Validate(); err != nil {
		return err
	}
	if c.Tax.BiayaJabatanRatePercent.IsNegative() || c.Tax.BiayaJabatanRatePercent.GreaterThan(decimal.NewFromInt(10)) {
		return fmt.Errorf("BIAYA_JABATAN_PERCENT must be between 0 and 10")
	}
	for category, rate := range c.Tax.TERFallbackRates {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("TER fallback rate for %s must be between 0 and 100", category)
		}
	}
	if c.RateCacheTTL <= 0 {
		return fmt.Errorf("RATE_CACHE_TTL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDecimal(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
