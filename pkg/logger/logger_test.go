package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"info", zapcore.InfoLevel, false},
		{"warn", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"DEBUG", zapcore.DebugLevel, false},
		{"", zapcore.InfoLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run("level "+tt.in, func(t *testing.T) {
			got, err := parseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBeforeInit(t *testing.T) {
	// Before Init the package hands out a no-op logger instead of panicking
	if globalLogger == nil {
		log := Get()
		require.NotNil(t, log)
		log.Info("discarded")
		require.NotNil(t, Sugar())
		assert.NoError(t, Sync())
	}
}

func TestKVConsoleEncoderEncodeEntry(t *testing.T) {
	enc := newKVConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:      "ts",
		LevelKey:     "level",
		MessageKey:   "msg",
		EncodeTime:   bracketTimeEncoder,
		EncodeLevel:  bracketLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	entry := zapcore.Entry{
		Level:   zapcore.InfoLevel,
		Time:    time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC),
		Message: "Report written",
	}
	fields := []zapcore.Field{
		zap.String("path", "reports/full_report.html"),
		zap.Int("tables", 3),
		zap.Duration("elapsed", 1500*time.Millisecond),
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	line := buf.String()

	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "Report written")
	// Structured fields render as key=value pairs
	assert.Contains(t, line, "path=reports/full_report.html")
	assert.Contains(t, line, "tables=3")
	assert.Contains(t, line, "elapsed=1.5s")
}

func TestKVConsoleEncoderClone(t *testing.T) {
	enc := newKVConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:  "msg",
		EncodeTime:  bracketTimeEncoder,
		EncodeLevel: bracketLevelEncoder,
	})

	clone := enc.Clone()
	assert.NotSame(t, enc, clone)
}
