package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudwego/hertz/pkg/app/client"
	hertzconfig "github.com/cloudwego/hertz/pkg/common/config"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/lvyanru/startupradar/internal/config"
)

// Source reads the raw dataset text
type Source interface {
	// Identity names the source; it keys the dataset cache
	Identity() string
	Read(ctx context.Context) ([]byte, error)
}

// New picks the source configured for the dataset: a local file when path is
// set, otherwise the URL
func New(cfg config.DatasetConfig) (Source, error) {
	switch {
	case cfg.Path != "":
		return NewFileSource(cfg.Path), nil
	case cfg.URL != "":
		return NewHTTPSource(cfg.URL, cfg.LoadTimeout)
	default:
		return nil, errors.New("either dataset.path or dataset.url must be provided")
	}
}

// FileSource reads the dataset from the local filesystem
type FileSource struct {
	path string
}

// NewFileSource creates a file source
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Identity returns the cleaned file path
func (s *FileSource) Identity() string {
	return "file://" + filepath.Clean(s.path)
}

// Read reads the whole file
func (s *FileSource) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}
	return data, nil
}

// HTTPSource fetches the dataset with a Hertz client
type HTTPSource struct {
	url    string
	client *client.Client
}

// NewHTTPSource creates a URL source
func NewHTTPSource(url string, timeout time.Duration) (*HTTPSource, error) {
	opts := []hertzconfig.ClientOption{
		client.WithDialTimeout(10 * time.Second),
	}
	if timeout > 0 {
		opts = append(opts, client.WithClientReadTimeout(timeout))
	}
	c, err := client.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}
	return &HTTPSource{url: url, client: c}, nil
}

// Identity returns the URL
func (s *HTTPSource) Identity() string {
	return s.url
}

// Read performs a GET; any status other than 200 is an error
func (s *HTTPSource) Read(ctx context.Context) ([]byte, error) {
	req := protocol.AcquireRequest()
	resp := protocol.AcquireResponse()
	defer func() {
		protocol.ReleaseRequest(req)
		protocol.ReleaseResponse(resp)
	}()

	req.SetMethod(consts.MethodGet)
	req.SetRequestURI(s.url)

	if err := s.client.Do(ctx, req, resp); err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode() != consts.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}

	// the body is owned by resp, which goes back to the pool
	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

// StaticSource serves text held in memory
type StaticSource struct {
	name string
	text string
}

// NewStaticSource creates an in-memory source
func NewStaticSource(name, text string) *StaticSource {
	return &StaticSource{name: name, text: text}
}

// Identity returns the name given at construction
func (s *StaticSource) Identity() string {
	return "static://" + s.name
}

// Read returns the text
func (s *StaticSource) Read(ctx context.Context) ([]byte, error) {
	return []byte(s.text), nil
}
