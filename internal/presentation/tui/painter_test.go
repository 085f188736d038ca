package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/aretw0/edmcheck/pkg/runner"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	assert.Equal(t, termenv.Ascii, Profile("never", os.Stdout))

	// A regular file is never a terminal.
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, termenv.Ascii, Profile("auto", f))

	assert.NotEqual(t, termenv.Ascii, Profile("always", f))
}

func TestNewPainter(t *testing.T) {
	assert.Nil(t, NewPainter(termenv.Ascii))

	paint := NewPainter(termenv.ANSI)
	require.NotNil(t, paint)

	out := paint(runner.ToneFailure, "❌ Invalid: a.json")
	assert.Contains(t, out, "❌ Invalid: a.json")
	assert.True(t, strings.HasPrefix(out, "\x1b["), "expected an ANSI sequence, got %q", out)
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii, "v1.2.3", "schema/edm.v0.4.schema.json", "examples/*.ddna.json")

	assert.Contains(t, buf.String(), "edmcheck v1.2.3")
	assert.Contains(t, buf.String(), "pattern: examples/*.ddna.json")
}
