package providerspec

import (
	"regexp"
	"strings"
)

// SyntaxVersion is the declaration emitted on the first line of every
// generated document.
const SyntaxVersion = "next-router/0.1"

// PresetOpenAICompatible is the only recognized preset name.
const PresetOpenAICompatible = "openai-compatible"

// defaultOAuthRefreshExpr is emitted for oauth_refresh_token when the spec
// does not supply one.
const defaultOAuthRefreshExpr = "$channel.key"

var providerNameRE = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// validAPIs is the closed set of api identifiers accepted in route.api.
var validAPIs = map[string]bool{
	"completions":                  true,
	"chat.completions":             true,
	"responses":                    true,
	"claude.messages":              true,
	"embeddings":                   true,
	"images.generations":           true,
	"audio.speech":                 true,
	"audio.transcriptions":         true,
	"audio.translations":           true,
	"gemini.generateContent":       true,
	"gemini.streamGenerateContent": true,
}

// KV is one entry of an order-preserving name/value mapping (set_headers,
// json_set, set_query). Emission order follows declaration order in the
// input document.
type KV struct {
	Name  string
	Value Expr
}

// FormField is one oauth_form entry.
type FormField struct {
	Key   string
	Value Expr
}

// RenamePair is one request.json_rename entry.
type RenamePair struct {
	From string
	To   string
}

// Spec is the root of a provider spec. Nil section pointers mean the section
// was absent from the input, which is significant for preset expansion and
// for the auth/response defaults. Routes is nil when the routes key was
// absent and non-nil (possibly empty) when it was declared.
type Spec struct {
	Provider string
	BaseURL  string
	Preset   string
	Auth     *AuthConfig
	Request  *RequestConfig
	Response *ResponseConfig
	Metrics  *MetricsConfig
	ErrorMap string
	Balance  *BalanceConfig
	Models   *ModelsConfig
	Routes   []Route
}

// AuthConfig describes how requests to the upstream are authenticated.
// Mode is one of bearer (default when empty), header, oauth.
type AuthConfig struct {
	Mode   string
	Header string

	OAuthMode          string
	OAuthRefreshToken  *Expr
	OAuthTokenURL      *Expr
	OAuthClientID      *Expr
	OAuthClientSecret  *Expr
	OAuthScope         *Expr
	OAuthAudience      *Expr
	OAuthTokenPath     *Expr
	OAuthExpiresInPath *Expr
	OAuthTokenTypePath *Expr

	// Scalar oauth directives, emitted as bare tokens. Empty means absent.
	OAuthMethod         string
	OAuthContentType    string
	OAuthTimeoutMS      string
	OAuthRefreshSkewSec string
	OAuthFallbackTTLSec string

	OAuthForm []FormField
	Extra     []string
}

// MetricsConfig controls usage and finish-reason extraction.
type MetricsConfig struct {
	UsageExtract        string
	FinishReasonExtract string
	FinishReasonPath    *Expr

	InputTokens      *Expr
	OutputTokens     *Expr
	CacheReadTokens  *Expr
	CacheWriteTokens *Expr
	TotalTokens      *Expr

	InputTokensPath      *Expr
	OutputTokensPath     *Expr
	CacheReadTokensPath  *Expr
	CacheWriteTokensPath *Expr
	TotalTokensPath      *Expr

	Extra []string
}

// ModelsConfig controls upstream model listing.
type ModelsConfig struct {
	Mode         string
	Path         *string
	Method       string
	IDPath       []string
	IDRegex      *string
	IDAllowRegex *string
	SetHeaders   []KV
	DelHeaders   []string
	Extra        []string
}

// BalanceConfig controls upstream balance/account inspection.
type BalanceConfig struct {
	Mode             string
	Method           string
	Path             *string
	BalanceExpr      *Expr
	BalancePath      *Expr
	Used             *Expr
	UsedPath         *Expr
	BalanceUnit      string
	SubscriptionPath *string
	UsagePath        *string
	SetHeaders       []KV
	DelHeaders       []string
	Extra            []string
}

// RequestConfig rewrites outgoing requests (headers and JSON body).
type RequestConfig struct {
	SetHeaders []KV
	DelHeaders []string
	JSONSet    []KV
	JSONDel    []string
	JSONRename []RenamePair
	Extra      []string
}

// ResponseConfig controls response handling.
type ResponseConfig struct {
	Mode     string
	RespMap  string
	SSEParse string
	Extra    []string
}

// Route selects behavior for one api identifier, with optional per-route
// overrides of the provider defaults.
type Route struct {
	API    string
	Stream *bool

	Path     *string
	PathExpr string
	SetQuery []KV
	DelQuery []string

	// UpstreamExtra holds raw statements appended inside the upstream block.
	UpstreamExtra []string

	Auth     *AuthConfig
	Request  *RequestConfig
	Response *ResponseConfig
	Metrics  *MetricsConfig
	ErrorMap string

	// Extra holds raw statements emitted at the match-block level, after all
	// sub-blocks.
	Extra []string
}

// appendRaw validates and appends caller-supplied raw statements: each must
// be non-empty after trimming and is terminated with ';' if it is not
// already.
func appendRaw(lines []string, raw []string) ([]string, error) {
	for _, item := range raw {
		stmt := strings.TrimSpace(item)
		if stmt == "" {
			return nil, schemaErrorf("raw directive must be a non-empty string")
		}
		if !strings.HasSuffix(stmt, ";") {
			stmt += ";"
		}
		lines = append(lines, stmt)
	}
	return lines, nil
}
