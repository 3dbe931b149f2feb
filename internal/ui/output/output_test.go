package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/wltime/internal/ui/output"
)

func TestProfile(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		force   string
		want    termenv.Profile
	}{
		{name: "buffer is plain", want: termenv.Ascii},
		{name: "NO_COLOR wins over force", noColor: "1", force: "1", want: termenv.Ascii},
		{name: "force colors a buffer", force: "1", want: termenv.ANSI256},
		{name: "force zero is ignored", force: "0", want: termenv.Ascii},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			t.Setenv("CLICOLOR_FORCE", tt.force)

			assert.Equal(t, tt.want, output.Profile(&bytes.Buffer{}))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, output.IsTerminal(&bytes.Buffer{}))
}

func TestNew(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString(out.String("test").Bold().String())
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	out := output.New(nil)
	assert.NotNil(t, out)
}

func TestNewWithProfile(t *testing.T) {
	var buf bytes.Buffer
	out := output.NewWithProfile(&buf, termenv.ANSI)

	_, _ = out.WriteString(out.String("x").Bold().String())
	assert.Equal(t, "\x1b[1mx\x1b[0m", buf.String())
}
