package logx

import (
	"strings"
	"testing"
)

func TestFormatWithoutColor(t *testing.T) {
	old := enableColor
	enableColor = false
	defer func() { enableColor = old }()

	if got := FormatOK("wrote provider config: a.conf"); got != "[OK] wrote provider config: a.conf" {
		t.Fatalf("FormatOK = %q", got)
	}
	if got := FormatError("provider is required"); got != "[ERROR] provider is required" {
		t.Fatalf("FormatError = %q", got)
	}
}

func TestFormatWithColor(t *testing.T) {
	old := enableColor
	enableColor = true
	defer func() { enableColor = old }()

	got := FormatOK("done")
	if !strings.Contains(got, green) || !strings.Contains(got, reset) {
		t.Fatalf("expected colored label, got %q", got)
	}
	if !strings.HasSuffix(got, " done") {
		t.Fatalf("message missing: %q", got)
	}
}
