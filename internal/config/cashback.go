package config

// CashbackConfig holds the category cashback table and the wallet usage cap.
// It is built once at startup and injected into the wallet and order
// services; tests override it freely.
type CashbackConfig struct {
	// Percentages maps a product category code to its cashback percent.
	Percentages map[string]float64
	// MaxWalletUsagePercent is the maximum share of an order total that
	// may be paid from wallet balance.
	MaxWalletUsagePercent float64
}

// DefaultCashback returns the stock cashback configuration:
// category A earns 10%, B earns 2%, C earns 7%, and at most 90% of an
// order may be covered by wallet funds.
func DefaultCashback() CashbackConfig {
	return CashbackConfig{
		Percentages: map[string]float64{
			"A": 10,
			"B": 2,
			"C": 7,
		},
		MaxWalletUsagePercent: 90,
	}
}

// CashbackFromEnv builds the cashback configuration from environment
// variables, falling back to the defaults.
func CashbackFromEnv() CashbackConfig {
	cfg := DefaultCashback()
	cfg.Percentages["A"] = GetFloatEnv("CASHBACK_PERCENT_A", cfg.Percentages["A"])
	cfg.Percentages["B"] = GetFloatEnv("CASHBACK_PERCENT_B", cfg.Percentages["B"])
	cfg.Percentages["C"] = GetFloatEnv("CASHBACK_PERCENT_C", cfg.Percentages["C"])
	cfg.MaxWalletUsagePercent = GetFloatEnv("CASHBACK_CAP_PERCENT", cfg.MaxWalletUsagePercent)
	return cfg
}

// Percent returns the cashback percent for a category, or 0 for an
// unknown category.
func (c CashbackConfig) Percent(category string) float64 {
	return c.Percentages[category]
}
