package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	tests := []struct {
		name        string
		htmlContent string
		wantContent string
		wantTitle   string
		wantErr     bool
		statusCode  int
	}{
		{
			name: "successful extraction",
			htmlContent: `<!DOCTYPE html>
				<html>
				<head><title>Test Article</title></head>
				<body>
					<article>
						<h1>Test Article Title</h1>
						<p>This is the main content of the article about octopuses and their three hearts.</p>
						<p>It has multiple paragraphs.</p>
					</article>
				</body>
				</html>`,
			wantContent: "main content of the article",
			wantTitle:   "Test Article",
			statusCode:  http.StatusOK,
		},
		{
			name: "extraction with minimal content",
			htmlContent: `<!DOCTYPE html>
				<html>
				<body>
					<p>Short content</p>
				</body>
				</html>`,
			wantContent: "Short content",
			statusCode:  http.StatusOK,
		},
		{
			name:        "server error",
			htmlContent: "error",
			wantErr:     true,
			statusCode:  http.StatusInternalServerError,
		},
		{
			name:        "not found",
			htmlContent: "not found",
			wantErr:     true,
			statusCode:  http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotAgent string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAgent = r.Header.Get("User-Agent")
				if tt.statusCode == http.StatusOK {
					w.Header().Set("Content-Type", "text/html")
				}
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.htmlContent))
			}))
			defer server.Close()

			extractor := NewHTTPExtractor(10*time.Second, "facts-test/1.0")
			page, err := extractor.Extract(context.Background(), server.URL)
			assert.Equal(t, "facts-test/1.0", gotAgent)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, page.Text, tt.wantContent)
			if tt.wantTitle != "" {
				assert.Contains(t, page.Title, tt.wantTitle)
			}
		})
	}
}

func TestHTTPExtractor_DefaultUserAgent(t *testing.T) {
	extractor := NewHTTPExtractor(time.Second, "")
	assert.Contains(t, extractor.userAgent, "UselessFacts")
}

func TestHTTPExtractor_Extract_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html><body>Too late</body></html>"))
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(100*time.Millisecond, "")
	_, err := extractor.Extract(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context deadline exceeded")
}

func TestHTTPExtractor_Extract_InvalidURL(t *testing.T) {
	extractor := NewHTTPExtractor(time.Second, "")

	for _, u := range []string{"", "not-a-url", "http://localhost:99999/test"} {
		t.Run(u, func(t *testing.T) {
			_, err := extractor.Extract(context.Background(), u)
			require.Error(t, err)
		})
	}
}

func TestHTTPExtractor_Extract_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(5 * time.Second):
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("<html><body>Content</body></html>"))
		}
	}))
	defer server.Close()

	extractor := NewHTTPExtractor(5*time.Second, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := extractor.Extract(ctx, server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context canceled")
}

func TestSetPageHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "https://example.com/article", http.NoBody)
	setPageHeaders(req, "TestAgent/1.0")

	assert.Equal(t, "TestAgent/1.0", req.Header.Get("User-Agent"))
	assert.Contains(t, req.Header.Get("Accept"), "text/html")
	assert.Contains(t, pageLanguages, req.Header.Get("Accept-Language"))
	assert.Equal(t, "navigate", req.Header.Get("Sec-Fetch-Mode"))
	assert.Empty(t, req.Header.Get("Accept-Encoding"), "left to the transport")
}
