package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{name: "console debug", level: "debug", format: FormatConsole},
		{name: "json info", level: "info", format: FormatJSON},
		{name: "default format", level: "warn", format: ""},
		{name: "bad level", level: "loud", format: FormatJSON, wantErr: true},
		{name: "bad format", level: "info", format: "xml", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLogger(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			lvl, _ := zapcore.ParseLevel(tt.level)
			assert.True(t, l.Core().Enabled(lvl))
			assert.False(t, l.Core().Enabled(lvl-1))
		})
	}
}
