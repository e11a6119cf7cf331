package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 10); got != "short" {
		t.Fatalf("expected label to remain unchanged, got %q", got)
	}
	got := truncateLabel("Morning meditation", 10)
	if got == "Morning meditation" {
		t.Fatalf("expected label to be truncated")
	}
	if ansi.StringWidth(got) > 10 {
		t.Fatalf("truncated label too wide: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("expected padded string, got %q", got)
	}
	if got := padRight("abcd", 2); got != "abcd" {
		t.Fatalf("expected string unchanged when wider, got %q", got)
	}
}

func TestPadCellWidth(t *testing.T) {
	for _, s := range []string{"Mo", "Mon", "05"} {
		if w := ansi.StringWidth(padCell(s)); w != 4 {
			t.Fatalf("expected cell width 4 for %q, got %d", s, w)
		}
	}
}

func TestWrapHelpTokensSingleLineWhenWide(t *testing.T) {
	m := setupTestDashboard(t)
	out := m.wrapHelpTokens("[a]Add|[q]Quit", 60)
	if strings.Count(out, "\n") != 0 {
		t.Fatalf("expected single line, got:\n%s", out)
	}
	if !strings.Contains(out, "[a]Add") || !strings.Contains(out, "[q]Quit") {
		t.Fatalf("expected all tokens present")
	}
}

func TestWrapHelpTokensSplitsWhenNarrow(t *testing.T) {
	m := setupTestDashboard(t)
	out := m.wrapHelpTokens("[a]Add|[r]Rename|[d]Delete|[e]Export|[i]Import", 20)
	if strings.Count(out, "\n") == 0 {
		t.Fatalf("expected wrapped lines, got:\n%s", out)
	}
	for _, token := range []string{"[a]Add", "[r]Rename", "[d]Delete", "[e]Export", "[i]Import"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected token %q present", token)
		}
	}
}
