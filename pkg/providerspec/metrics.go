package providerspec

// metricsDirectives builds the statements of a metrics block. Token-count
// fields come out in a fixed field order, direct assignment before the
// _path expression variant.
func metricsDirectives(cfg *MetricsConfig) ([]string, error) {
	var lines []string

	if cfg.UsageExtract != "" {
		lines = append(lines, "usage_extract "+cfg.UsageExtract+";")
	}
	if cfg.FinishReasonExtract != "" {
		lines = append(lines, "finish_reason_extract "+cfg.FinishReasonExtract+";")
	}
	if cfg.FinishReasonPath != nil {
		lines = append(lines, "finish_reason_path "+cfg.FinishReasonPath.Format()+";")
	}

	tokenFields := []struct {
		name   string
		direct *Expr
		path   *Expr
	}{
		{"input_tokens", cfg.InputTokens, cfg.InputTokensPath},
		{"output_tokens", cfg.OutputTokens, cfg.OutputTokensPath},
		{"cache_read_tokens", cfg.CacheReadTokens, cfg.CacheReadTokensPath},
		{"cache_write_tokens", cfg.CacheWriteTokens, cfg.CacheWriteTokensPath},
		{"total_tokens", cfg.TotalTokens, cfg.TotalTokensPath},
	}
	for _, f := range tokenFields {
		if f.direct != nil {
			lines = append(lines, f.name+" = "+f.direct.Format()+";")
		}
		if f.path != nil {
			lines = append(lines, f.name+"_path "+f.path.Format()+";")
		}
	}

	return appendRaw(lines, cfg.Extra)
}
