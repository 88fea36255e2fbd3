package layout

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/key"
)

func TestIsTooSmall(t *testing.T) {
	if !IsTooSmall(79, 24) || !IsTooSmall(80, 23) {
		t.Error("expected sizes below 80x24 to be too small")
	}
	if IsTooSmall(80, 24) {
		t.Error("80x24 should fit")
	}
}

func TestRenderHeader_ShowsTitleAndStatus(t *testing.T) {
	h := RenderHeader("Quiz", "Q 3/50  Score 2", 100)
	for _, want := range []string{AppName, "Quiz", "Q 3/50  Score 2"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestHintsFor(t *testing.T) {
	b := key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "Next"))
	hints := HintsFor(b)
	if len(hints) != 1 || hints[0].Key != "n" || hints[0].Description != "Next" {
		t.Errorf("unexpected hints %+v", hints)
	}

	footer := RenderFooter(hints, 80)
	if !strings.Contains(footer, "Next") {
		t.Error("footer missing hint description")
	}
}
