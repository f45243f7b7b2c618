package providerspec

// responseDirectives builds the statements of a response block. Only the
// passthrough mode maps to a dedicated directive; resp_map and sse_parse are
// forwarded as bare tokens.
func responseDirectives(cfg *ResponseConfig) ([]string, error) {
	var lines []string

	if cfg.Mode == "passthrough" {
		lines = append(lines, "resp_passthrough;")
	}
	if cfg.RespMap != "" {
		lines = append(lines, "resp_map "+cfg.RespMap+";")
	}
	if cfg.SSEParse != "" {
		lines = append(lines, "sse_parse "+cfg.SSEParse+";")
	}

	return appendRaw(lines, cfg.Extra)
}
