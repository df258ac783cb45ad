package fetcher_test

import (
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/MichalMitros/feed-importer/internal/fetcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	userAgent = "feed-importer-test/0.0.0"
	feedBody  = `<products><product><sku>A-1</sku></product></products>`
)

// feedResponse describes response served by test feed server.
type feedResponse struct {
	status          int
	contentType     string
	contentEncoding string
	compressed      bool
}

func (r feedResponse) serve(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, userAgent, req.Header.Get("User-Agent"), "should send user agent")
		assert.Equal(t, "application/xml", req.Header.Get("Accept"), "should accept xml")
		assert.Equal(t, "gzip", req.Header.Get("Accept-Encoding"), "should accept gzip encoding")

		if r.contentType != "" {
			wrt.Header().Set("Content-Type", r.contentType)
		}
		if r.contentEncoding != "" {
			wrt.Header().Set("Content-Encoding", r.contentEncoding)
		}
		wrt.WriteHeader(r.status)

		if r.status != http.StatusOK {
			return
		}
		if r.compressed {
			gz := gzip.NewWriter(wrt)
			_, err := gz.Write([]byte(feedBody))
			assert.NoError(t, err, "can't write compressed body")
			assert.NoError(t, gz.Close(), "can't close gzip writer")
			return
		}
		_, _ = wrt.Write([]byte(feedBody))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestUnitFetchFile(t *testing.T) {
	tests := map[string]struct {
		response feedResponse
		wantErr  error
	}{
		"xml with charset": {
			response: feedResponse{status: http.StatusOK, contentType: "application/xml; charset=utf-8"},
		},
		"text xml": {
			response: feedResponse{status: http.StatusOK, contentType: "text/xml"},
		},
		"plain text": {
			response: feedResponse{status: http.StatusOK, contentType: "text/plain"},
		},
		"missing content type": {
			response: feedResponse{status: http.StatusOK},
		},
		"gzip content encoding": {
			response: feedResponse{status: http.StatusOK, contentType: "text/xml", contentEncoding: "gzip", compressed: true},
		},
		"gzip archive": {
			response: feedResponse{status: http.StatusOK, contentType: "application/gzip", compressed: true},
		},
		"zip archive": {
			response: feedResponse{status: http.StatusOK, contentType: "application/zip", compressed: true},
		},
		"html page": {
			response: feedResponse{status: http.StatusOK, contentType: "text/html"},
			wantErr:  fetcher.ErrContentTypeNotSupported,
		},
		"json document": {
			response: feedResponse{status: http.StatusOK, contentType: "application/json"},
			wantErr:  fetcher.ErrContentTypeNotSupported,
		},
		"internal server error": {
			response: feedResponse{status: http.StatusInternalServerError},
			wantErr:  fetcher.ErrStatusNotOK,
		},
		"forbidden": {
			response: feedResponse{status: http.StatusForbidden},
			wantErr:  fetcher.ErrStatusNotOK,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			srv := tt.response.serve(t)

			body, err := fetcher.NewFetcher(srv.Client(), userAgent).FetchFile(context.Background(), srv.URL+"/feed.xml")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr, "should return correct error")
				assert.Nil(t, body, "shouldn't return body")
				return
			}

			require.NoError(t, err, "should fetch file")
			assert.Equal(t, feedBody, readAndClose(t, body), "should return feed content")
		})
	}
}

func TestUnitFetchFileStatusCode(t *testing.T) {
	srv := feedResponse{status: http.StatusNotFound}.serve(t)

	_, err := fetcher.NewFetcher(srv.Client(), userAgent).FetchFile(context.Background(), srv.URL)

	var statusErr *fetcher.StatusError
	require.ErrorAs(t, err, &statusErr, "should return status error")
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode, "should return response status")
}

func TestUnitFetchFileRetriesUnavailableServer(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			wrt.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		wrt.Header().Set("Content-Type", "application/xml")
		_, _ = wrt.Write([]byte(feedBody))
	}))
	t.Cleanup(srv.Close)

	sleeper := &recordingSleeper{}
	fet := fetcher.NewFetcher(srv.Client(), userAgent, fetcher.WithSleeper(sleeper.Sleep))

	body, err := fet.FetchFile(context.Background(), srv.URL)

	require.NoError(t, err, "should fetch file after retries")
	assert.Equal(t, feedBody, readAndClose(t, body), "should return feed content")
	assert.EqualValues(t, 3, calls.Load(), "should send three requests")
	assert.Len(t, sleeper.Waits(), 2, "should wait before each retry")
}

func TestUnitFetchFileInvalidURL(t *testing.T) {
	_, err := fetcher.NewFetcher(http.DefaultClient, userAgent).FetchFile(context.Background(), "://feed")

	assert.ErrorContains(t, err, "can't build http request", "should fail on invalid url")
}

// readAndClose reads whole body and closes it.
func readAndClose(t *testing.T, body io.ReadCloser) string {
	t.Helper()

	require.NotNil(t, body, "body shouldn't be nil")

	content, err := io.ReadAll(body)
	require.NoError(t, err, "can't read body")
	assert.NoError(t, body.Close(), "can't close body")

	return string(content)
}
