package providerspec

import "strings"

// renderBlock wraps an ordered statement list in a named block. indent is
// the column of the block's opening line in spaces; statements sit one
// two-space level deeper.
func renderBlock(name string, stmts []string, indent int) []string {
	pad := strings.Repeat(" ", indent)
	block := make([]string, 0, len(stmts)+2)
	block = append(block, pad+name+" {")
	for _, stmt := range stmts {
		block = append(block, pad+"  "+stmt)
	}
	return append(block, pad+"}")
}

// Compile turns a provider spec into the full DSL document: preset
// expansion, top-level validation, the defaults block, then one match block
// per route. The returned text ends with a single trailing newline.
// Compiling the same spec twice yields byte-identical output.
func Compile(spec *Spec) (string, error) {
	s, err := expandPreset(spec)
	if err != nil {
		return "", err
	}

	provider := strings.TrimSpace(s.Provider)
	if provider == "" {
		return "", schemaErrorf("provider is required")
	}
	if !providerNameRE.MatchString(provider) {
		return "", schemaErrorf("provider must match ^[a-z0-9][a-z0-9-]{0,63}$")
	}
	provider = strings.ToLower(provider)
	if strings.TrimSpace(s.BaseURL) == "" {
		return "", schemaErrorf("base_url is required")
	}
	if len(s.Routes) == 0 {
		return "", schemaErrorf("at least one route is required")
	}

	lines := []string{
		"syntax " + quote(SyntaxVersion) + ";",
		"",
		"provider " + quote(provider) + " {",
		"  defaults {",
	}

	lines = append(lines, renderBlock("upstream_config", []string{"base_url = " + quote(s.BaseURL) + ";"}, 4)...)

	authCfg := s.Auth
	if authCfg == nil {
		authCfg = &AuthConfig{Mode: "bearer"}
	}
	authLines, err := authDirectives(authCfg)
	if err != nil {
		return "", err
	}
	lines = append(lines, renderBlock("auth", authLines, 4)...)

	if s.Request != nil {
		reqLines, err := requestDirectives(s.Request)
		if err != nil {
			return "", err
		}
		if len(reqLines) > 0 {
			lines = append(lines, renderBlock("request", reqLines, 4)...)
		}
	}

	responseCfg := s.Response
	if responseCfg == nil {
		responseCfg = &ResponseConfig{Mode: "passthrough"}
	}
	respLines, err := responseDirectives(responseCfg)
	if err != nil {
		return "", err
	}
	if len(respLines) > 0 {
		lines = append(lines, renderBlock("response", respLines, 4)...)
	}

	if s.Metrics != nil {
		metricLines, err := metricsDirectives(s.Metrics)
		if err != nil {
			return "", err
		}
		if len(metricLines) > 0 {
			lines = append(lines, renderBlock("metrics", metricLines, 4)...)
		}
	}

	if s.ErrorMap != "" {
		lines = append(lines, renderBlock("error", []string{"error_map " + s.ErrorMap + ";"}, 4)...)
	}

	if s.Balance != nil {
		balanceLines, err := balanceDirectives(s.Balance)
		if err != nil {
			return "", err
		}
		lines = append(lines, renderBlock("balance", balanceLines, 4)...)
	}

	if s.Models != nil {
		modelLines, err := modelsDirectives(s.Models)
		if err != nil {
			return "", err
		}
		lines = append(lines, renderBlock("models", modelLines, 4)...)
	}

	lines = append(lines, "  }")

	for i := range s.Routes {
		routeLines, err := compileRoute(&s.Routes[i])
		if err != nil {
			return "", err
		}
		lines = append(lines, "")
		lines = append(lines, routeLines...)
	}

	lines = append(lines, "}")

	return strings.Join(lines, "\n") + "\n", nil
}

// ProviderName returns the normalized provider identifier used for output
// file naming (trimmed, lowercased).
func ProviderName(spec *Spec) string {
	return strings.ToLower(strings.TrimSpace(spec.Provider))
}
