package ui

import (
	"bytes"
	"strings"
	"testing"

	"saas-economics/core/types"
)

func TestTableAlignsUnicodeCells(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)

	table := w.NewTable("Metric", "Value")
	table.AddRow("LTV", "∞")
	table.AddRow("Customer lifetime", "20.0 mo")
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	first := strings.Index(lines[2], "│")
	second := strings.Index(lines[3], "│")
	if width(lines[2][:first]) != width(lines[3][:second]) {
		t.Errorf("columns not aligned:\n%s", buf.String())
	}
}

func TestColorDisabled(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.Header("Unit Economics")
	w.Severity(types.SeverityDanger, "Operating at a loss")

	if strings.Contains(buf.String(), "\033[") {
		t.Errorf("escape codes written with color disabled: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "✗ Operating at a loss") {
		t.Errorf("danger icon missing: %q", buf.String())
	}
}

func TestColoredRowKeepsAlignment(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, false)

	table := w.NewTable("Scenario", "Profit")
	table.AddColoredRow([]string{"", Red}, "$29/mo", "-$50")
	table.Render()

	if !strings.Contains(buf.String(), Red+"-$50  "+Reset) {
		t.Errorf("expected padded colored cell, got %q", buf.String())
	}
}

func TestVerbosity(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, true)
	w.SetVerbosity(0)
	w.Info("hidden")
	w.Debug("hidden")

	if buf.Len() != 0 {
		t.Errorf("quiet writer printed %q", buf.String())
	}
}

func TestToneColor(t *testing.T) {
	if ToneColor(types.ToneGood) != Green || ToneColor(types.ToneFair) != Yellow || ToneColor(types.TonePoor) != Red {
		t.Error("unexpected tone mapping")
	}
}
