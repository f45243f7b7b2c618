package cli

import (
	"bytes"
	"testing"

	"github.com/r9s-ai/onr-provider-gen/internal/version"
	"github.com/stretchr/testify/require"
)

func TestRootVersionFlag(t *testing.T) {
	var buf bytes.Buffer
	root := newRootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	require.Contains(t, buf.String(), version.Short())
}
