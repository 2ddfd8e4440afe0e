package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"unitshift/internal/units"
)

func TestRenderTableAlignsColumns(t *testing.T) {
	out := renderTable(
		[]string{"Unit", "Value"},
		[][]string{{"km", "1"}, {"m", "1000"}},
		[]columnAlignment{alignLeft, alignRight},
		tableSettings{highlight: 0},
	)
	lines := strings.Split(out, "\n")
	if len(lines) < 5 {
		t.Fatalf("unexpected table:\n%s", out)
	}
	requireContains(t, out, "│     1 │")
	requireContains(t, out, "│  1000 │")
	requireNotContains(t, out, "\x1b[")
}

func TestRenderTableEmptyHeaders(t *testing.T) {
	if out := renderTable(nil, nil, nil, tableSettings{}); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}

func TestTerminalWidthOfBuffer(t *testing.T) {
	if w := terminalWidth(&bytes.Buffer{}); w != 0 {
		t.Fatalf("expected 0 for non-terminal writer, got %d", w)
	}
	if isTerminal(&bytes.Buffer{}) {
		t.Fatal("buffer reported as terminal")
	}
}

func TestResolvePair(t *testing.T) {
	from, to, category, err := resolvePair("kilometres", "mi", "")
	if err != nil {
		t.Fatalf("resolvePair: %v", err)
	}
	if from != units.Kilometer || to != units.Mile || category != units.Length {
		t.Fatalf("got %v %v %v", from, to, category)
	}

	if _, _, _, err := resolvePair("km", "mi", "weight"); err == nil {
		t.Fatal("expected category mismatch")
	}
	if _, _, _, err := resolvePair("km", "mi", "speed"); err == nil {
		t.Fatal("expected unknown category")
	}
	if _, _, _, err := resolvePair("km", "lb", ""); err == nil {
		t.Fatal("expected mixed category error")
	}
}

func TestExitCodeSeparatesUserErrors(t *testing.T) {
	_, err := units.ParseUnit("furlong")
	if got := exitCode(err); got != exitUserInput {
		t.Fatalf("unknown unit: got exit %d", got)
	}
	if got := exitCode(errors.New("disk full")); got != exitFailure {
		t.Fatalf("plain error: got exit %d", got)
	}
}
