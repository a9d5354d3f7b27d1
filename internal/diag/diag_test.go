package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_When_Verbose_WritesWarnings(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)

	log.Warn().Int("line", 7).Msg("invalid duration")

	out := buf.String()
	if !strings.Contains(out, "invalid duration") {
		t.Errorf("missing message; got: %s", out)
	}
	if !strings.Contains(out, "line=7") {
		t.Errorf("missing line field; got: %s", out)
	}
}

func TestNew_When_NotVerbose_Silent(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.Warn().Msg("should not appear")
	log.Info().Msg("should not appear either")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got: %s", buf.String())
	}
}
