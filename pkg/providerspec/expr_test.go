package providerspec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExprFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		expr Expr
		want string
	}{
		{"raw passes through", RawExpr("$req.model"), "$req.model"},
		{"string is quoted", StringExpr("gpt-4o"), `"gpt-4o"`},
		{"quotes escaped", StringExpr(`x"y`), `"x\"y"`},
		{"backslash escaped", StringExpr(`a\b`), `"a\\b"`},
		{"bool true", BoolExpr(true), "true"},
		{"bool false", BoolExpr(false), "false"},
		{"int", IntExpr(42), "42"},
		{"float", FloatExpr(3.5), "3.5"},
		{"whole float keeps fraction", FloatExpr(2000000.0), "2000000.0"},
		{"large whole float stays positional", FloatExpr(123456789.0), "123456789.0"},
		{"zero float", FloatExpr(0), "0.0"},
		{"smallest positional", FloatExpr(0.0001), "0.0001"},
		{"tiny float uses exponent", FloatExpr(1.5e-5), "1.5e-05"},
		{"huge float uses exponent", FloatExpr(2e16), "2e+16"},
		{"zero value is empty string literal", Expr{}, `""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.expr.Format(); got != tc.want {
				t.Fatalf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

func parseExprNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NotEmpty(t, doc.Content)
	return resolve(doc.Content[0])
}

func TestDecodeExpr(t *testing.T) {
	t.Parallel()

	e, err := decodeExpr(parseExprNode(t, `{"expr": "$req.model"}`))
	require.NoError(t, err)
	require.Equal(t, "$req.model", e.Format())

	e, err = decodeExpr(parseExprNode(t, `true`))
	require.NoError(t, err)
	require.Equal(t, "true", e.Format())

	e, err = decodeExpr(parseExprNode(t, `3.5`))
	require.NoError(t, err)
	require.Equal(t, "3.5", e.Format())

	e, err = decodeExpr(parseExprNode(t, `17`))
	require.NoError(t, err)
	require.Equal(t, "17", e.Format())

	e, err = decodeExpr(parseExprNode(t, `"plain"`))
	require.NoError(t, err)
	require.Equal(t, `"plain"`, e.Format())
}

func TestDecodeExprBoolSpellings(t *testing.T) {
	t.Parallel()

	// YAML resolves True/TRUE/False/FALSE as booleans but keeps the raw
	// scalar text; formatting must follow the resolved value, not the text.
	for src, want := range map[string]string{
		"true":  "true",
		"True":  "true",
		"TRUE":  "true",
		"false": "false",
		"False": "false",
		"FALSE": "false",
	} {
		e, err := decodeExpr(parseExprNode(t, src))
		require.NoError(t, err, "source %q", src)
		require.Equal(t, want, e.Format(), "source %q", src)
	}
}

func TestDecodeExprRejectsBadShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
	}{
		{"extra key", `{"expr": "$x", "other": 1}`},
		{"wrong key", `{"exprs": "$x"}`},
		{"non-string expr", `{"expr": 5}`},
		{"list value", `["a"]`},
		{"null value", `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeExpr(parseExprNode(t, tc.src))
			var schemaErr *SchemaError
			require.ErrorAs(t, err, &schemaErr)
		})
	}
}

func TestQuote(t *testing.T) {
	t.Parallel()

	if got := quote(`he said "hi\there"`); got != `"he said \"hi\\there\""` {
		t.Fatalf("quote() = %s", got)
	}
}
