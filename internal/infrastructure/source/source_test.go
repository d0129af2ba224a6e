package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvyanru/startupradar/internal/config"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Date,Startup\n"), 0644))

	src := NewFileSource(path)
	data, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Date,Startup\n", string(data))
	assert.Equal(t, "file://"+path, src.Identity())

	_, err = NewFileSource(filepath.Join(dir, "missing.csv")).Read(context.Background())
	assert.Error(t, err)
}

func TestFileSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSource("whatever.csv").Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHTTPSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data.csv" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("Date,Startup\n01/01/2020,Acme\n"))
	}))
	defer srv.Close()

	src, err := NewHTTPSource(srv.URL+"/data.csv", 5*time.Second)
	require.NoError(t, err)

	data, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Date,Startup\n01/01/2020,Acme\n", string(data))

	missing, err := NewHTTPSource(srv.URL+"/nope.csv", 5*time.Second)
	require.NoError(t, err)
	_, err = missing.Read(context.Background())
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.DatasetConfig
		want    string
		wantErr bool
	}{
		{name: "path wins over url", cfg: config.DatasetConfig{Path: "data/startups.csv", URL: "http://example.com/x.csv"}, want: "file://data/startups.csv"},
		{name: "url", cfg: config.DatasetConfig{URL: "http://example.com/x.csv"}, want: "http://example.com/x.csv"},
		{name: "nothing configured", cfg: config.DatasetConfig{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, src.Identity())
		})
	}
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource("inline", "a,b\n")
	data, err := src.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
	assert.Equal(t, "static://inline", src.Identity())
}
