package ui

import (
	"bytes"
	"testing"
)

func TestSourceStatusPlain(t *testing.T) {
	var out, errOut bytes.Buffer
	u := New(&out, &errOut, ColorNever, false)

	u.SourceStatus("cylinder-health", true, 3, "")
	u.SourceStatus("medeanalytics", false, 0, "medeanalytics fetch: http 404")

	want := "  cylinder-health: 3 jobs\n  medeanalytics: failed: medeanalytics fetch: http 404\n"
	if errOut.String() != want {
		t.Fatalf("SourceStatus output = %q, want %q", errOut.String(), want)
	}
	if out.Len() != 0 {
		t.Fatalf("expected nothing on stdout, got %q", out.String())
	}
}

func TestStartIndicatorInactiveWithoutTerminal(t *testing.T) {
	var errOut bytes.Buffer
	u := New(&bytes.Buffer{}, &errOut, ColorAuto, false)
	if stop := u.StartIndicator("Scanning..."); stop != nil {
		stop()
		t.Fatalf("expected no indicator for a non-terminal writer")
	}
}

func TestNormalizeColorMode(t *testing.T) {
	cases := map[string]ColorMode{
		"":        ColorAuto,
		"ALWAYS":  ColorAlways,
		" never ": ColorNever,
		"weird":   ColorAuto,
	}
	for input, want := range cases {
		if got := NormalizeColorMode(input); got != want {
			t.Fatalf("NormalizeColorMode(%q) = %q, want %q", input, got, want)
		}
	}
}
