package providerspec

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseSpec decodes a provider spec document. YAML and JSON inputs are both
// accepted. Decoding walks the node tree directly so that set_headers /
// json_set / set_query mappings keep their declaration order; unrecognized
// keys are ignored and null values are treated as absent.
func ParseSpec(data []byte) (*Spec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid provider spec: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, schemaErrorf("spec must be an object")
	}
	return decodeSpec(resolve(doc.Content[0]))
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n == nil || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

func decodeSpec(n *yaml.Node) (*Spec, error) {
	pairs, err := mappingPairs(n, "spec")
	if err != nil {
		return nil, err
	}
	spec := &Spec{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].Value
		val := resolve(pairs[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "provider":
			if spec.Provider, err = scalarValue(val, "provider"); err != nil {
				return nil, err
			}
		case "base_url":
			if spec.BaseURL, err = scalarValue(val, "base_url"); err != nil {
				return nil, err
			}
		case "preset":
			if spec.Preset, err = scalarValue(val, "preset"); err != nil {
				return nil, err
			}
		case "auth":
			if spec.Auth, err = decodeAuth(val); err != nil {
				return nil, err
			}
		case "request":
			if spec.Request, err = decodeRequest(val); err != nil {
				return nil, err
			}
		case "response":
			if spec.Response, err = decodeResponse(val); err != nil {
				return nil, err
			}
		case "metrics":
			if spec.Metrics, err = decodeMetrics(val); err != nil {
				return nil, err
			}
		case "error_map":
			if spec.ErrorMap, err = scalarValue(val, "error_map"); err != nil {
				return nil, err
			}
		case "balance":
			if spec.Balance, err = decodeBalance(val); err != nil {
				return nil, err
			}
		case "models":
			if spec.Models, err = decodeModels(val); err != nil {
				return nil, err
			}
		case "routes":
			if val.Kind != yaml.SequenceNode {
				return nil, schemaErrorf("routes must be a list")
			}
			spec.Routes = make([]Route, 0, len(val.Content))
			for _, item := range val.Content {
				route, err := decodeRoute(resolve(item))
				if err != nil {
					return nil, err
				}
				spec.Routes = append(spec.Routes, *route)
			}
		}
	}
	return spec, nil
}

func decodeAuth(n *yaml.Node) (*AuthConfig, error) {
	pairs, err := mappingPairs(n, "auth")
	if err != nil {
		return nil, err
	}
	cfg := &AuthConfig{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].Value
		val := resolve(pairs[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "mode":
			cfg.Mode, err = scalarValue(val, "auth.mode")
		case "header":
			cfg.Header, err = scalarValue(val, "auth.header")
		case "oauth_mode":
			cfg.OAuthMode, err = scalarValue(val, "auth.oauth_mode")
		case "oauth_refresh_token":
			cfg.OAuthRefreshToken, err = decodeExprPtr(val)
		case "oauth_token_url":
			cfg.OAuthTokenURL, err = decodeExprPtr(val)
		case "oauth_client_id":
			cfg.OAuthClientID, err = decodeExprPtr(val)
		case "oauth_client_secret":
			cfg.OAuthClientSecret, err = decodeExprPtr(val)
		case "oauth_scope":
			cfg.OAuthScope, err = decodeExprPtr(val)
		case "oauth_audience":
			cfg.OAuthAudience, err = decodeExprPtr(val)
		case "oauth_token_path":
			cfg.OAuthTokenPath, err = decodeExprPtr(val)
		case "oauth_expires_in_path":
			cfg.OAuthExpiresInPath, err = decodeExprPtr(val)
		case "oauth_token_type_path":
			cfg.OAuthTokenTypePath, err = decodeExprPtr(val)
		case "oauth_method":
			cfg.OAuthMethod, err = scalarValue(val, "auth.oauth_method")
		case "oauth_content_type":
			cfg.OAuthContentType, err = scalarValue(val, "auth.oauth_content_type")
		case "oauth_timeout_ms":
			cfg.OAuthTimeoutMS, err = scalarValue(val, "auth.oauth_timeout_ms")
		case "oauth_refresh_skew_sec":
			cfg.OAuthRefreshSkewSec, err = scalarValue(val, "auth.oauth_refresh_skew_sec")
		case "oauth_fallback_ttl_sec":
			cfg.OAuthFallbackTTLSec, err = scalarValue(val, "auth.oauth_fallback_ttl_sec")
		case "oauth_form":
			cfg.OAuthForm, err = decodeOAuthForm(val)
		case "extra_directives":
			cfg.Extra, err = rawList(val, "auth.extra_directives")
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeOAuthForm(n *yaml.Node) ([]FormField, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, schemaErrorf("auth.oauth_form must be a list")
	}
	form := make([]FormField, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			return nil, schemaErrorf("auth.oauth_form items must be objects")
		}
		var field FormField
		haveValue := false
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := item.Content[i].Value
			val := resolve(item.Content[i+1])
			switch key {
			case "key":
				if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
					return nil, schemaErrorf("auth.oauth_form[].key is required")
				}
				field.Key = val.Value
			case "value":
				value, err := decodeExpr(val)
				if err != nil {
					return nil, err
				}
				field.Value = value
				haveValue = true
			}
		}
		if strings.TrimSpace(field.Key) == "" {
			return nil, schemaErrorf("auth.oauth_form[].key is required")
		}
		if !haveValue {
			return nil, schemaErrorf("auth.oauth_form[].value is required")
		}
		form = append(form, field)
	}
	return form, nil
}

func decodeMetrics(n *yaml.Node) (*MetricsConfig, error) {
	pairs, err := mappingPairs(n, "metrics")
	if err != nil {
		return nil, err
	}
	cfg := &MetricsConfig{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].Value
		val := resolve(pairs[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "usage_extract":
			cfg.UsageExtract, err = scalarValue(val, "metrics.usage_extract")
		case "finish_reason_extract":
			cfg.FinishReasonExtract, err = scalarValue(val, "metrics.finish_reason_extract")
		case "finish_reason_path":
			cfg.FinishReasonPath, err = decodeExprPtr(val)
		case "input_tokens":
			cfg.InputTokens, err = decodeExprPtr(val)
		case "output_tokens":
			cfg.OutputTokens, err = decodeExprPtr(val)
		case "cache_read_tokens":
			cfg.CacheReadTokens, err = decodeExprPtr(val)
		case "cache_write_tokens":
			cfg.CacheWriteTokens, err = decodeExprPtr(val)
		case "total_tokens":
			cfg.TotalTokens, err = decodeExprPtr(val)
		case "input_tokens_path":
			cfg.InputTokensPath, err = decodeExprPtr(val)
		case "output_tokens_path":
			cfg.OutputTokensPath, err = decodeExprPtr(val)
		case "cache_read_tokens_path":
			cfg.CacheReadTokensPath, err = decodeExprPtr(val)
		case "cache_write_tokens_path":
			cfg.CacheWriteTokensPath, err = decodeExprPtr(val)
		case "total_tokens_path":
			cfg.TotalTokensPath, err = decodeExprPtr(val)
		case "extra_directives":
			cfg.Extra, err = rawList(val, "metrics.extra_directives")
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeModels(n *yaml.Node) (*ModelsConfig, error) {
	pairs, err := mappingPairs(n, "models")
	if err != nil {
		return nil, err
	}
	cfg := &ModelsConfig{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].Value
		val := resolve(pairs[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "mode":
			cfg.Mode, err = scalarValue(val, "models.mode")
		case "path":
			cfg.Path, err = scalarPtr(val, "models.path")
		case "method":
			cfg.Method, err = scalarValue(val, "models.method")
		case "id_path":
			cfg.IDPath, err = stringList(val, "models.id_path")
		case "id_regex":
			cfg.IDRegex, err = scalarPtr(val, "models.id_regex")
		case "id_allow_regex":
			cfg.IDAllowRegex, err = scalarPtr(val, "models.id_allow_regex")
		case "set_headers":
			cfg.SetHeaders, err = kvPairs(val, "models.set_headers")
		case "del_headers":
			cfg.DelHeaders, err = stringList(val, "models.del_headers")
		case "extra_directives":
			cfg.Extra, err = rawList(val, "models.extra_directives")
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeBalance(n *yaml.Node) (*BalanceConfig, error) {
	pairs, err := mappingPairs(n, "balance")
	if err != nil {
		return nil, err
	}
	cfg := &BalanceConfig{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].Value
		val := resolve(pairs[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "mode":
			cfg.Mode, err = scalarValue(val, "balance.mode")
		case "method":
			cfg.Method, err = scalarValue(val, "balance.method")
		case "path":
			cfg.Path, err = scalarPtr(val, "balance.path")
		case "balance_expr":
			cfg.BalanceExpr, err = decodeExprPtr(val)
		case "balance_path":
			cfg.BalancePath, err = decodeExprPtr(val)
		case "used":
			cfg.Used, err = decodeExprPtr(val)
		case "used_path":
			cfg.UsedPath, err = decodeExprPtr(val)
		case "balance_unit":
			cfg.BalanceUnit, err = scalarValue(val, "balance.balance_unit")
		case "subscription_path":
			cfg.SubscriptionPath, err = scalarPtr(val, "balance.subscription_path")
		case "usage_path":
			cfg.UsagePath, err = scalarPtr(val, "balance.usage_path")
		case "set_headers":
			cfg.SetHeaders, err = kvPairs(val, "balance.set_headers")
		case "del_headers":
			cfg.DelHeaders, err = stringList(val, "balance.del_headers")
		case "extra_directives":
			cfg.Extra, err = rawList(val, "balance.extra_directives")
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeRequest(n *yaml.Node) (*RequestConfig, error) {
	pairs, err := mappingPairs(n, "request")
	if err != nil {
		return nil, err
	}
	cfg := &RequestConfig{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].Value
		val := resolve(pairs[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "set_headers":
			cfg.SetHeaders, err = kvPairs(val, "request.set_headers")
		case "del_headers":
			cfg.DelHeaders, err = stringList(val, "request.del_headers")
		case "json_set":
			cfg.JSONSet, err = kvPairs(val, "request.json_set")
		case "json_del":
			cfg.JSONDel, err = stringList(val, "request.json_del")
		case "json_rename":
			cfg.JSONRename, err = decodeRenames(val)
		case "extra_directives":
			cfg.Extra, err = rawList(val, "request.extra_directives")
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeRenames(n *yaml.Node) ([]RenamePair, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, schemaErrorf("request.json_rename must be a list")
	}
	renames := make([]RenamePair, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if item.Kind != yaml.MappingNode {
			return nil, schemaErrorf("request.json_rename entries must be objects")
		}
		var from, to *string
		for i := 0; i+1 < len(item.Content); i += 2 {
			key := item.Content[i].Value
			val := resolve(item.Content[i+1])
			if key != "from" && key != "to" {
				continue
			}
			if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
				return nil, schemaErrorf("request.json_rename entries require string fields: from, to")
			}
			s := val.Value
			if key == "from" {
				from = &s
			} else {
				to = &s
			}
		}
		if from == nil || to == nil {
			return nil, schemaErrorf("request.json_rename entries require string fields: from, to")
		}
		renames = append(renames, RenamePair{From: *from, To: *to})
	}
	return renames, nil
}

func decodeResponse(n *yaml.Node) (*ResponseConfig, error) {
	pairs, err := mappingPairs(n, "response")
	if err != nil {
		return nil, err
	}
	cfg := &ResponseConfig{}
	for i := 0; i+1 < len(pairs); i += 2 {
		key := pairs[i].Value
		val := resolve(pairs[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "mode":
			cfg.Mode, err = scalarValue(val, "response.mode")
		case "resp_map":
			cfg.RespMap, err = scalarValue(val, "response.resp_map")
		case "sse_parse":
			cfg.SSEParse, err = scalarValue(val, "response.sse_parse")
		case "extra_directives":
			cfg.Extra, err = rawList(val, "response.extra_directives")
		}
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func decodeRoute(n *yaml.Node) (*Route, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, schemaErrorf("each route must be an object")
	}
	route := &Route{}
	var err error
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := resolve(n.Content[i+1])
		if isNull(val) {
			continue
		}
		switch key {
		case "api":
			route.API, err = scalarValue(val, "route.api")
		case "stream":
			if val.Kind != yaml.ScalarNode || val.Tag != "!!bool" {
				return nil, schemaErrorf("route.stream must be true/false when provided")
			}
			var b bool
			if err := val.Decode(&b); err != nil {
				return nil, schemaErrorf("route.stream must be true/false when provided")
			}
			route.Stream = &b
		case "path":
			route.Path, err = scalarPtr(val, "route.path")
		case "path_expr":
			route.PathExpr, err = scalarValue(val, "route.path_expr")
		case "set_query":
			route.SetQuery, err = kvPairs(val, "route.set_query")
		case "del_query":
			route.DelQuery, err = stringList(val, "route.del_query")
		case "upstream_extra_directives":
			route.UpstreamExtra, err = rawList(val, "route.upstream_extra_directives")
		case "auth":
			route.Auth, err = decodeAuth(val)
		case "request":
			route.Request, err = decodeRequest(val)
		case "response":
			route.Response, err = decodeResponse(val)
		case "metrics":
			route.Metrics, err = decodeMetrics(val)
		case "error_map":
			route.ErrorMap, err = scalarValue(val, "route.error_map")
		case "extra_directives":
			route.Extra, err = rawList(val, "route.extra_directives")
		}
		if err != nil {
			return nil, err
		}
	}
	return route, nil
}

// decodeExpr turns a scalar or {expr: "..."} mapping node into an Expr.
func decodeExpr(n *yaml.Node) (Expr, error) {
	switch n.Kind {
	case yaml.MappingNode:
		if len(n.Content) != 2 || n.Content[0].Value != "expr" {
			return Expr{}, schemaErrorf(`expression object must be exactly: {"expr": "..."}`)
		}
		val := resolve(n.Content[1])
		if val.Kind != yaml.ScalarNode || val.Tag != "!!str" {
			return Expr{}, schemaErrorf(`expression object must be exactly: {"expr": "..."}`)
		}
		return RawExpr(val.Value), nil
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!bool":
			var b bool
			if err := n.Decode(&b); err != nil {
				return Expr{}, schemaErrorf("unsupported expression value type: %s", tagName(n))
			}
			return BoolExpr(b), nil
		case "!!int":
			i, err := strconv.ParseInt(n.Value, 0, 64)
			if err != nil {
				return Expr{}, schemaErrorf("unsupported expression value type: %s", tagName(n))
			}
			return IntExpr(i), nil
		case "!!float":
			f, err := strconv.ParseFloat(n.Value, 64)
			if err != nil {
				return Expr{}, schemaErrorf("unsupported expression value type: %s", tagName(n))
			}
			return FloatExpr(f), nil
		case "!!str":
			return StringExpr(n.Value), nil
		}
	}
	return Expr{}, schemaErrorf("unsupported expression value type: %s", tagName(n))
}

func decodeExprPtr(n *yaml.Node) (*Expr, error) {
	e, err := decodeExpr(n)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func tagName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "object"
	}
	return strings.TrimPrefix(n.Tag, "!!")
}

func mappingPairs(n *yaml.Node, field string) ([]*yaml.Node, error) {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, schemaErrorf("%s must be an object", field)
	}
	return n.Content, nil
}

// scalarValue returns the textual form of a scalar node. Numbers and
// booleans are accepted and coerced to their token text, matching the
// loosely-typed fields of the spec format.
func scalarValue(n *yaml.Node, field string) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", schemaErrorf("%s must be a scalar value", field)
	}
	return n.Value, nil
}

func scalarPtr(n *yaml.Node, field string) (*string, error) {
	v, err := scalarValue(n, field)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func stringList(n *yaml.Node, field string) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, schemaErrorf("%s must be a list", field)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		v, err := scalarValue(item, field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// rawList decodes an extra_directives sequence. Shape errors use the same
// message as the render-time raw normalizer so the failure reads the same
// regardless of where it is caught.
func rawList(n *yaml.Node, field string) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, schemaErrorf("%s must be a list", field)
	}
	out := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		item = resolve(item)
		if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
			return nil, schemaErrorf("raw directive must be a non-empty string")
		}
		out = append(out, item.Value)
	}
	return out, nil
}

func kvPairs(n *yaml.Node, field string) ([]KV, error) {
	if n.Kind != yaml.MappingNode {
		return nil, schemaErrorf("%s must be an object", field)
	}
	out := make([]KV, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := resolve(n.Content[i])
		if key.Kind != yaml.ScalarNode {
			return nil, schemaErrorf("%s keys must be scalars", field)
		}
		value, err := decodeExpr(resolve(n.Content[i+1]))
		if err != nil {
			return nil, err
		}
		out = append(out, KV{Name: key.Value, Value: value})
	}
	return out, nil
}
