package providerspec

// expandPreset returns a new Spec with preset defaults filled in. The input
// is never mutated. Defaults apply per section: a section that is present in
// the original, even empty, suppresses that section's default. Default routes
// are inserted only when the routes key was entirely absent (Routes == nil).
func expandPreset(spec *Spec) (*Spec, error) {
	out := spec.clone()
	if spec.Preset == "" {
		return out, nil
	}
	if spec.Preset != PresetOpenAICompatible {
		return nil, schemaErrorf("unsupported preset: %s", spec.Preset)
	}

	if out.Auth == nil {
		out.Auth = &AuthConfig{Mode: "bearer"}
	}
	if out.Metrics == nil {
		out.Metrics = &MetricsConfig{
			UsageExtract:        "openai",
			FinishReasonExtract: "openai",
		}
	}
	if out.Response == nil {
		out.Response = &ResponseConfig{Mode: "passthrough"}
	}
	if out.Models == nil {
		out.Models = &ModelsConfig{Mode: "openai"}
	}
	if out.Routes == nil {
		out.Routes = []Route{
			{API: "chat.completions", Path: strPtr("/v1/chat/completions")},
			{API: "completions", Path: strPtr("/v1/completions")},
			{API: "responses", Path: strPtr("/v1/responses")},
			{API: "embeddings", Path: strPtr("/v1/embeddings")},
		}
	}
	return out, nil
}

func strPtr(s string) *string {
	return &s
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func (s *Spec) clone() *Spec {
	out := *s
	out.Auth = s.Auth.clone()
	out.Request = s.Request.clone()
	out.Response = s.Response.clone()
	out.Metrics = s.Metrics.clone()
	out.Balance = s.Balance.clone()
	out.Models = s.Models.clone()
	if s.Routes != nil {
		out.Routes = make([]Route, len(s.Routes))
		for i := range s.Routes {
			out.Routes[i] = s.Routes[i].clone()
		}
	}
	return &out
}

func (c *AuthConfig) clone() *AuthConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.OAuthRefreshToken = clonePtr(c.OAuthRefreshToken)
	out.OAuthTokenURL = clonePtr(c.OAuthTokenURL)
	out.OAuthClientID = clonePtr(c.OAuthClientID)
	out.OAuthClientSecret = clonePtr(c.OAuthClientSecret)
	out.OAuthScope = clonePtr(c.OAuthScope)
	out.OAuthAudience = clonePtr(c.OAuthAudience)
	out.OAuthTokenPath = clonePtr(c.OAuthTokenPath)
	out.OAuthExpiresInPath = clonePtr(c.OAuthExpiresInPath)
	out.OAuthTokenTypePath = clonePtr(c.OAuthTokenTypePath)
	out.OAuthForm = cloneSlice(c.OAuthForm)
	out.Extra = cloneSlice(c.Extra)
	return &out
}

func (c *MetricsConfig) clone() *MetricsConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.FinishReasonPath = clonePtr(c.FinishReasonPath)
	out.InputTokens = clonePtr(c.InputTokens)
	out.OutputTokens = clonePtr(c.OutputTokens)
	out.CacheReadTokens = clonePtr(c.CacheReadTokens)
	out.CacheWriteTokens = clonePtr(c.CacheWriteTokens)
	out.TotalTokens = clonePtr(c.TotalTokens)
	out.InputTokensPath = clonePtr(c.InputTokensPath)
	out.OutputTokensPath = clonePtr(c.OutputTokensPath)
	out.CacheReadTokensPath = clonePtr(c.CacheReadTokensPath)
	out.CacheWriteTokensPath = clonePtr(c.CacheWriteTokensPath)
	out.TotalTokensPath = clonePtr(c.TotalTokensPath)
	out.Extra = cloneSlice(c.Extra)
	return &out
}

func (c *ModelsConfig) clone() *ModelsConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Path = clonePtr(c.Path)
	out.IDRegex = clonePtr(c.IDRegex)
	out.IDAllowRegex = clonePtr(c.IDAllowRegex)
	out.IDPath = cloneSlice(c.IDPath)
	out.SetHeaders = cloneSlice(c.SetHeaders)
	out.DelHeaders = cloneSlice(c.DelHeaders)
	out.Extra = cloneSlice(c.Extra)
	return &out
}

func (c *BalanceConfig) clone() *BalanceConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Path = clonePtr(c.Path)
	out.BalanceExpr = clonePtr(c.BalanceExpr)
	out.BalancePath = clonePtr(c.BalancePath)
	out.Used = clonePtr(c.Used)
	out.UsedPath = clonePtr(c.UsedPath)
	out.SubscriptionPath = clonePtr(c.SubscriptionPath)
	out.UsagePath = clonePtr(c.UsagePath)
	out.SetHeaders = cloneSlice(c.SetHeaders)
	out.DelHeaders = cloneSlice(c.DelHeaders)
	out.Extra = cloneSlice(c.Extra)
	return &out
}

func (c *RequestConfig) clone() *RequestConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.SetHeaders = cloneSlice(c.SetHeaders)
	out.DelHeaders = cloneSlice(c.DelHeaders)
	out.JSONSet = cloneSlice(c.JSONSet)
	out.JSONDel = cloneSlice(c.JSONDel)
	out.JSONRename = cloneSlice(c.JSONRename)
	out.Extra = cloneSlice(c.Extra)
	return &out
}

func (c *ResponseConfig) clone() *ResponseConfig {
	if c == nil {
		return nil
	}
	out := *c
	out.Extra = cloneSlice(c.Extra)
	return &out
}

func (r Route) clone() Route {
	out := r
	out.Stream = clonePtr(r.Stream)
	out.Path = clonePtr(r.Path)
	out.SetQuery = cloneSlice(r.SetQuery)
	out.DelQuery = cloneSlice(r.DelQuery)
	out.UpstreamExtra = cloneSlice(r.UpstreamExtra)
	out.Auth = r.Auth.clone()
	out.Request = r.Request.clone()
	out.Response = r.Response.clone()
	out.Metrics = r.Metrics.clone()
	out.Extra = cloneSlice(r.Extra)
	return out
}
