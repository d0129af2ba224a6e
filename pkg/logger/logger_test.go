package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvyanru/startupradar/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		wantErr string
	}{
		{name: "json stdout", cfg: config.LogConfig{Level: "info", Format: "json", Output: "stdout"}},
		{name: "text stderr", cfg: config.LogConfig{Level: "warning", Format: "text", Output: "stderr"}},
		{name: "bad level", cfg: config.LogConfig{Level: "loud", Format: "json"}, wantErr: "invalid log level"},
		{name: "bad format", cfg: config.LogConfig{Level: "info", Format: "xml"}, wantErr: "invalid log format"},
		{name: "bad output", cfg: config.LogConfig{Level: "info", Format: "json", Output: "syslog"}, wantErr: "invalid log output"},
		{name: "file without path", cfg: config.LogConfig{Level: "info", Format: "json", Output: "file"}, wantErr: "log file path is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.log")
	logger, err := New(config.LogConfig{Level: "debug", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	logger.Debug("dataset loaded", "rows", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dataset loaded"`)
	assert.Contains(t, string(data), `"rows":3`)
}

func TestContextLogger(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))

	var buf bytes.Buffer
	l := WithRequestID(slog.New(slog.NewTextHandler(&buf, nil)), "req-1")
	ctx := WithContext(context.Background(), l)

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestHertzSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewHertzSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	adapter.SetLevel(hlog.LevelWarn)

	adapter.Infof("hidden %d", 1)
	adapter.Warnf("listening on %s", ":8080")
	adapter.CtxErrorf(context.Background(), "boom: %v", "x")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"), "messages below the hertz level are dropped")
	assert.Contains(t, out, "listening on :8080")
	assert.Contains(t, out, "boom: x")
}
