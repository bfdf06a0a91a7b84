package dataset

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/go-gota/gota/dataframe"
)

// Source provides the raw, header-less CSV of a table.
type Source interface {
	// Open returns the CSV stream. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// URLSource fetches the CSV with an HTTP GET.
type URLSource struct {
	URL string

	// Client defaults to http.DefaultClient.
	Client *http.Client

	// Timeout bounds the whole request, body included. Defaults to DefaultTimeout.
	Timeout time.Duration
}

// Open performs the GET and buffers the full body before returning, so a
// dropped connection surfaces here as *errors.NetworkError and never as a
// truncated table.
func (s URLSource) Open(ctx context.Context) (io.ReadCloser, error) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, errors.NewNetworkError(s.URL, 0, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError(s.URL, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewNetworkError(s.URL, resp.StatusCode, nil)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetworkError(s.URL, 0, err)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (s URLSource) String() string { return s.URL }

// FileSource reads the CSV from a local file.
type FileSource struct {
	Path string
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", s.Path)
	}
	return f, nil
}

func (s FileSource) String() string { return s.Path }

// FrameSource wraps an already materialised table. The loader uses the table
// directly; Open is provided so a FrameSource can stand in anywhere a Source
// is expected.
type FrameSource struct {
	Table *Table
}

func (s FrameSource) Open(_ context.Context) (io.ReadCloser, error) {
	if s.Table == nil {
		return nil, errors.Wrap(errors.ErrEmptyData, "FrameSource")
	}
	var buf bytes.Buffer
	if err := s.Table.frame.WriteCSV(&buf, dataframe.WriteHeader(false)); err != nil {
		return nil, errors.Wrap(err, "FrameSource")
	}
	return io.NopCloser(&buf), nil
}

func (s FrameSource) String() string { return "in-memory table" }
