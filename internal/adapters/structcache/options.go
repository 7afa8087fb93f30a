package structcache

import (
	"net/http"
	"time"
)

// Option applies a configuration option to the Fetcher.
type Option func(*Fetcher)

// WithBaseURL sets the structure download base URL.
func WithBaseURL(url string) Option {
	return func(f *Fetcher) {
		if url != "" {
			f.baseURL = url
		}
	}
}

// WithDir sets the structure cache directory.
func WithDir(dir string) Option {
	return func(f *Fetcher) {
		if dir != "" {
			f.dir = dir
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.httpClient = client
		}
	}
}

// WithTimeout sets the transport timeout for structure downloads.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		if timeout > 0 {
			f.httpClient = &http.Client{Timeout: timeout}
		}
	}
}
