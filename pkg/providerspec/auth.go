package providerspec

import "strings"

// authDirectives builds the statements of an auth block. An empty Mode means
// bearer. For oauth, directives come out in a fixed order: mode, refresh
// token (defaulting to the channel key expression), the optional expression
// directives, the optional scalar directives, one oauth_form per entry, and
// the trailing auth_oauth_bearer switch.
func authDirectives(cfg *AuthConfig) ([]string, error) {
	mode := cfg.Mode
	if mode == "" {
		mode = "bearer"
	}

	var lines []string
	switch mode {
	case "bearer":
		lines = append(lines, "auth_bearer;")
	case "header":
		header := strings.TrimSpace(cfg.Header)
		if header == "" {
			return nil, schemaErrorf("auth.header is required when auth.mode=header")
		}
		lines = append(lines, "auth_header_key "+quote(header)+";")
	case "oauth":
		oauthMode := strings.TrimSpace(cfg.OAuthMode)
		if oauthMode == "" {
			return nil, schemaErrorf("auth.oauth_mode is required when auth.mode=oauth")
		}
		lines = append(lines, "oauth_mode "+oauthMode+";")

		refresh := cfg.OAuthRefreshToken
		if refresh == nil {
			e := RawExpr(defaultOAuthRefreshExpr)
			refresh = &e
		}
		lines = append(lines, "oauth_refresh_token "+refresh.Format()+";")

		exprFields := []struct {
			directive string
			value     *Expr
		}{
			{"oauth_token_url", cfg.OAuthTokenURL},
			{"oauth_client_id", cfg.OAuthClientID},
			{"oauth_client_secret", cfg.OAuthClientSecret},
			{"oauth_scope", cfg.OAuthScope},
			{"oauth_audience", cfg.OAuthAudience},
			{"oauth_token_path", cfg.OAuthTokenPath},
			{"oauth_expires_in_path", cfg.OAuthExpiresInPath},
			{"oauth_token_type_path", cfg.OAuthTokenTypePath},
		}
		for _, f := range exprFields {
			if f.value != nil {
				lines = append(lines, f.directive+" "+f.value.Format()+";")
			}
		}

		scalarFields := []struct {
			directive string
			value     string
		}{
			{"oauth_method", cfg.OAuthMethod},
			{"oauth_content_type", cfg.OAuthContentType},
			{"oauth_timeout_ms", cfg.OAuthTimeoutMS},
			{"oauth_refresh_skew_sec", cfg.OAuthRefreshSkewSec},
			{"oauth_fallback_ttl_sec", cfg.OAuthFallbackTTLSec},
		}
		for _, f := range scalarFields {
			if f.value != "" {
				lines = append(lines, f.directive+" "+f.value+";")
			}
		}

		for _, form := range cfg.OAuthForm {
			key := strings.TrimSpace(form.Key)
			if key == "" {
				return nil, schemaErrorf("auth.oauth_form[].key is required")
			}
			lines = append(lines, "oauth_form "+quote(key)+" "+form.Value.Format()+";")
		}

		lines = append(lines, "auth_oauth_bearer;")
	default:
		return nil, schemaErrorf("unsupported auth.mode: %s", mode)
	}

	return appendRaw(lines, cfg.Extra)
}
