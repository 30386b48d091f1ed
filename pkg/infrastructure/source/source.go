package source

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Source yields the raw bytes of a delimited dataset.
type Source interface {
	// Fetch reads the full dataset. It returns *UnavailableError when the
	// location cannot be reached or read.
	Fetch(ctx context.Context) ([]byte, error)

	// Location describes where the dataset comes from, for logs and errors.
	Location() string
}

// UnavailableError reports that the dataset source could not be reached.
type UnavailableError struct {
	Location string
	Status   int
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("source unavailable: %s: HTTP %d", e.Location, e.Status)
	}
	return fmt.Sprintf("source unavailable: %s: %v", e.Location, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// ForLocation selects a source implementation for the given location:
// http(s) URLs fetch over the network, anything else is read as a local path.
func ForLocation(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout)
	}
	return NewFileSource(location)
}

// HTTPSource downloads the dataset over HTTP.
type HTTPSource struct {
	url    string
	client *resty.Client
}

// NewHTTPSource creates an HTTP source with the given request timeout.
func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/csv")
	return &HTTPSource{url: url, client: client}
}

// Fetch downloads the dataset body. Transport failures and non-2xx responses
// both surface as *UnavailableError.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get(s.url)
	if err != nil {
		return nil, &UnavailableError{Location: s.url, Err: err}
	}
	if resp.IsError() {
		return nil, &UnavailableError{Location: s.url, Status: resp.StatusCode()}
	}
	return resp.Body(), nil
}

// Location returns the dataset URL.
func (s *HTTPSource) Location() string { return s.url }

// FileSource reads the dataset from the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource creates a file source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &UnavailableError{Location: s.path, Err: err}
	}
	return data, nil
}

// Location returns the dataset path.
func (s *FileSource) Location() string { return s.path }
