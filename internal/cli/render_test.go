package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testSpec = `{"provider":"acme","base_url":"https://api.acme.ai","preset":"openai-compatible"}`

func writeSpecFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acme.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRenderWritesConfFile(t *testing.T) {
	specPath := writeSpecFile(t, testSpec)
	outDir := t.TempDir()

	opts := renderOptions{specPath: specPath, outputDir: outDir}
	require.NoError(t, renderOnce(opts))

	data, err := os.ReadFile(filepath.Join(outDir, "acme.conf"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), `syntax "next-router/0.1";`))
	require.Contains(t, string(data), `provider "acme" {`)
}

func TestRenderRefusesOverwriteWithoutFlag(t *testing.T) {
	specPath := writeSpecFile(t, testSpec)
	outDir := t.TempDir()

	opts := renderOptions{specPath: specPath, outputDir: outDir}
	require.NoError(t, renderOnce(opts))

	err := renderOnce(opts)
	require.Error(t, err)
	require.Contains(t, err.Error(), "use --overwrite")

	opts.overwrite = true
	require.NoError(t, renderOnce(opts))
}

func TestRenderCreatesOutputDir(t *testing.T) {
	specPath := writeSpecFile(t, testSpec)
	outDir := filepath.Join(t.TempDir(), "config", "providers")

	opts := renderOptions{specPath: specPath, outputDir: outDir}
	require.NoError(t, renderOnce(opts))

	_, err := os.Stat(filepath.Join(outDir, "acme.conf"))
	require.NoError(t, err)
}

func TestRenderReportsSchemaError(t *testing.T) {
	specPath := writeSpecFile(t, `{"provider":"acme","base_url":"https://x","routes":[]}`)

	err := renderOnce(renderOptions{specPath: specPath, outputDir: t.TempDir()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "route is required")
}

func TestRenderMissingSpecFile(t *testing.T) {
	err := renderOnce(renderOptions{
		specPath:  filepath.Join(t.TempDir(), "absent.json"),
		outputDir: t.TempDir(),
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "read spec file")
}

func TestCheckCommandOverRenderedOutput(t *testing.T) {
	specPath := writeSpecFile(t, testSpec)
	outDir := t.TempDir()
	require.NoError(t, renderOnce(renderOptions{specPath: specPath, outputDir: outDir}))

	require.NoError(t, runCheck([]string{outDir}))
	require.NoError(t, runCheck([]string{filepath.Join(outDir, "acme.conf")}))
}

func TestCheckCommandRejectsBrokenConf(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.conf")
	require.NoError(t, os.WriteFile(path, []byte("provider \"a\" { }\n"), 0o600))

	err := runCheck([]string{dir})
	require.Error(t, err)
	require.Contains(t, err.Error(), "syntax declaration")
}

func TestCheckCommandNoFiles(t *testing.T) {
	err := runCheck([]string{t.TempDir()})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no *.conf files")
}
