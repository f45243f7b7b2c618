package providerspec

import (
	"math"
	"strconv"
	"strings"
)

type exprKind int

const (
	exprString exprKind = iota
	exprRaw
	exprBool
	exprInt
	exprFloat
)

// Expr is a value destined for a DSL statement: either a literal (string,
// number, boolean) rendered with quoting/escaping, or a raw expression
// emitted verbatim (e.g. $req.model). The zero value is the empty string
// literal.
type Expr struct {
	kind exprKind
	str  string
	i    int64
	f    float64
	b    bool
}

// RawExpr wraps an expression-language string that is emitted unquoted.
func RawExpr(expr string) Expr {
	return Expr{kind: exprRaw, str: expr}
}

// StringExpr wraps a string literal; Format quotes and escapes it.
func StringExpr(v string) Expr {
	return Expr{kind: exprString, str: v}
}

func BoolExpr(v bool) Expr {
	return Expr{kind: exprBool, b: v}
}

func IntExpr(v int64) Expr {
	return Expr{kind: exprInt, i: v}
}

func FloatExpr(v float64) Expr {
	return Expr{kind: exprFloat, f: v}
}

// Format renders the value as DSL-syntax text.
func (e Expr) Format() string {
	switch e.kind {
	case exprRaw:
		return e.str
	case exprBool:
		if e.b {
			return "true"
		}
		return "false"
	case exprInt:
		return strconv.FormatInt(e.i, 10)
	case exprFloat:
		return formatFloat(e.f)
	default:
		return quote(e.str)
	}
}

// formatFloat renders a float in decimal text form, keeping a fractional
// digit for whole values (2000000.0, not 2e+06). Exponent notation is used
// only outside [1e-4, 1e16), the range positional form stays readable in.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	if f != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// quote renders a DSL string literal: backslashes and double quotes are
// escaped with a preceding backslash.
func quote(v string) string {
	escaped := strings.ReplaceAll(v, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, `"`, `\"`)
	return `"` + escaped + `"`
}
