package providerspec

import "strings"

// balanceDirectives builds the statements of a balance block. mode is
// mandatory; optional directives follow in a fixed order, with balance/used
// available both as assignment expressions and as _path lookups.
func balanceDirectives(cfg *BalanceConfig) ([]string, error) {
	mode := strings.TrimSpace(cfg.Mode)
	if mode == "" {
		return nil, schemaErrorf("balance.mode is required")
	}
	lines := []string{"balance_mode " + mode + ";"}

	if cfg.Method != "" {
		lines = append(lines, "method "+cfg.Method+";")
	}
	if cfg.Path != nil {
		lines = append(lines, "path "+quote(*cfg.Path)+";")
	}
	if cfg.BalanceExpr != nil {
		lines = append(lines, "balance_expr = "+cfg.BalanceExpr.Format()+";")
	}
	if cfg.BalancePath != nil {
		lines = append(lines, "balance_path "+cfg.BalancePath.Format()+";")
	}
	if cfg.Used != nil {
		lines = append(lines, "used = "+cfg.Used.Format()+";")
	}
	if cfg.UsedPath != nil {
		lines = append(lines, "used_path "+cfg.UsedPath.Format()+";")
	}
	if cfg.BalanceUnit != "" {
		lines = append(lines, "balance_unit "+cfg.BalanceUnit+";")
	}
	if cfg.SubscriptionPath != nil {
		lines = append(lines, "subscription_path "+quote(*cfg.SubscriptionPath)+";")
	}
	if cfg.UsagePath != nil {
		lines = append(lines, "usage_path "+quote(*cfg.UsagePath)+";")
	}

	lines = appendHeaderOps(lines, cfg.SetHeaders, cfg.DelHeaders)
	return appendRaw(lines, cfg.Extra)
}
