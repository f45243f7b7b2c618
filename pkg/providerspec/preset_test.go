package providerspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPresetFillsAbsentSections(t *testing.T) {
	t.Parallel()

	spec := &Spec{Provider: "p", BaseURL: "https://x", Preset: PresetOpenAICompatible}
	out, err := expandPreset(spec)
	require.NoError(t, err)

	require.NotNil(t, out.Auth)
	require.Equal(t, "bearer", out.Auth.Mode)
	require.NotNil(t, out.Metrics)
	require.Equal(t, "openai", out.Metrics.UsageExtract)
	require.Equal(t, "openai", out.Metrics.FinishReasonExtract)
	require.NotNil(t, out.Response)
	require.Equal(t, "passthrough", out.Response.Mode)
	require.NotNil(t, out.Models)
	require.Equal(t, "openai", out.Models.Mode)

	require.Len(t, out.Routes, 4)
	require.Equal(t, "chat.completions", out.Routes[0].API)
	require.Equal(t, "/v1/chat/completions", *out.Routes[0].Path)
	require.Equal(t, "completions", out.Routes[1].API)
	require.Equal(t, "responses", out.Routes[2].API)
	require.Equal(t, "embeddings", out.Routes[3].API)

	// input untouched
	require.Nil(t, spec.Auth)
	require.Nil(t, spec.Routes)
}

func TestExpandPresetPresentSectionSuppressesDefault(t *testing.T) {
	t.Parallel()

	spec := &Spec{
		Provider: "p",
		BaseURL:  "https://x",
		Preset:   PresetOpenAICompatible,
		Metrics:  &MetricsConfig{UsageExtract: "claude"},
		Routes:   []Route{},
	}
	out, err := expandPreset(spec)
	require.NoError(t, err)

	require.Equal(t, "claude", out.Metrics.UsageExtract)
	require.Empty(t, out.Metrics.FinishReasonExtract)
	// declared-but-empty routes stay empty; the default routes only apply
	// when the key was absent.
	require.NotNil(t, out.Routes)
	require.Empty(t, out.Routes)
}

func TestExpandPresetUnknownName(t *testing.T) {
	t.Parallel()

	_, err := expandPreset(&Spec{Provider: "p", Preset: "azure-compatible"})
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "unsupported preset: azure-compatible", schemaErr.Message)
}

func TestExpandPresetNoPresetDeepCopies(t *testing.T) {
	t.Parallel()

	spec := &Spec{
		Provider: "p",
		BaseURL:  "https://x",
		Auth:     &AuthConfig{Mode: "header", Header: "X-Key"},
		Routes: []Route{
			{API: "embeddings", Path: strPtr("/v1/embeddings"), DelQuery: []string{"beta"}},
		},
	}
	out, err := expandPreset(spec)
	require.NoError(t, err)

	out.Auth.Header = "X-Other"
	*out.Routes[0].Path = "/changed"
	out.Routes[0].DelQuery[0] = "changed"

	require.Equal(t, "X-Key", spec.Auth.Header)
	require.Equal(t, "/v1/embeddings", *spec.Routes[0].Path)
	require.Equal(t, "beta", spec.Routes[0].DelQuery[0])
}
