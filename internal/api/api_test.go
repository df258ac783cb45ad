package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MichalMitros/feed-importer/internal/api"
	"github.com/MichalMitros/feed-importer/internal/api/mocks"
	"github.com/MichalMitros/feed-importer/internal/fetcher"
	"github.com/MichalMitros/feed-importer/internal/importer"
	"github.com/MichalMitros/feed-importer/internal/marketplace/trendyol"
	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const feedContent = `<products>
	<product><sku>A-1</sku><name>Shoe</name></product>
	<product><sku>A-2</sku><name>Boot</name></product>
</products>`

type testServer struct {
	fetcher     *mocks.Fetcher
	scheduler   *mocks.Scheduler
	batches     *mocks.Batches
	connections *mocks.ConnectionChecker
	handler     http.Handler
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	s := &testServer{
		fetcher:     mocks.NewFetcher(t),
		scheduler:   mocks.NewScheduler(t),
		batches:     mocks.NewBatches(t),
		connections: mocks.NewConnectionChecker(t),
	}
	s.handler = api.NewServer(s.fetcher, s.scheduler, s.batches, s.connections).Handler()

	return s
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func TestUnitHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code, "should respond with ok")
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String(), "should respond with ok body")
}

func TestUnitDiscover(t *testing.T) {
	const path = "/api/v1/stores/store-1/xml-import/discover"

	tests := map[string]struct {
		body        string
		mockFetcher func(f *mocks.Fetcher)
		wantStatus  int
		wantTags    []string
		wantError   string
	}{
		"xml content": {
			body:        `{"xmlContent":` + quote(feedContent) + `}`,
			mockFetcher: func(*mocks.Fetcher) {},
			wantStatus:  http.StatusOK,
			wantTags:    []string{"sku", "name"},
		},
		"xml url": {
			body: `{"xmlUrl":"https://example.com/feed.xml"}`,
			mockFetcher: func(f *mocks.Fetcher) {
				f.On("FetchFile", mock.Anything, "https://example.com/feed.xml").
					Return(io.NopCloser(strings.NewReader(feedContent)), nil)
			},
			wantStatus: http.StatusOK,
			wantTags:   []string{"sku", "name"},
		},
		"fetch error": {
			body: `{"xmlUrl":"https://example.com/feed.xml"}`,
			mockFetcher: func(f *mocks.Fetcher) {
				f.On("FetchFile", mock.Anything, "https://example.com/feed.xml").
					Return(nil, &fetcher.StatusError{StatusCode: http.StatusNotFound})
			},
			wantStatus: http.StatusBadGateway,
			wantError:  "can't fetch feed file: response status is not OK: 404",
		},
		"malformed feed": {
			body:        `{"xmlContent":"<products><product><<>></product></products>"}`,
			mockFetcher: func(*mocks.Fetcher) {},
			wantStatus:  http.StatusBadRequest,
		},
		"missing source": {
			body:        `{}`,
			mockFetcher: func(*mocks.Fetcher) {},
			wantStatus:  http.StatusBadRequest,
			wantError:   "xmlUrl or xmlContent is required: invalid input",
		},
		"malformed body": {
			body:        `{"xmlUrl":`,
			mockFetcher: func(*mocks.Fetcher) {},
			wantStatus:  http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)
			tt.mockFetcher(s.fetcher)

			rec := s.do(http.MethodPost, path, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code, "should respond with expected status")

			var resp struct {
				Tags      []string `json:"tags"`
				ItemCount int      `json:"itemCount"`
				Error     string   `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should respond with json")

			if tt.wantTags != nil {
				assert.ElementsMatch(t, tt.wantTags, resp.Tags, "should discover tags")
				assert.Equal(t, 2, resp.ItemCount, "should count items")
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, resp.Error, "should respond with error message")
			}
		})
	}
}

func TestUnitSuggestMapping(t *testing.T) {
	const path = "/api/v1/stores/store-1/xml-import/suggest-mapping"

	t.Run("suggestions", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, path, `{"xmlTags":["sku","renk"],"sampleValues":{"sku":"A-1"}}`)

		require.Equal(t, http.StatusOK, rec.Code, "should respond with ok")

		var resp struct {
			Suggestions []struct {
				Field string `json:"productField"`
				Tag   string `json:"xmlTag"`
			} `json:"suggestions"`
			Variants []struct {
				Field string `json:"productField"`
				Tag   string `json:"xmlTag"`
			} `json:"variants"`
			Model string `json:"model"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should respond with json")

		assert.Equal(t, "algorithm", resp.Model, "should report scoring model")
		assert.Contains(t, resp.Suggestions, struct {
			Field string `json:"productField"`
			Tag   string `json:"xmlTag"`
		}{Field: "sku", Tag: "sku"}, "should suggest exact field match")
		assert.Contains(t, resp.Variants, struct {
			Field string `json:"productField"`
			Tag   string `json:"xmlTag"`
		}{Field: "color", Tag: "renk"}, "should suggest variant synonym match")
	})

	t.Run("missing tags", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodPost, path, `{"xmlTags":[]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "should reject request")
		assert.JSONEq(t, `{"error":"xmlTags is required: invalid input"}`, rec.Body.String(), "should explain rejection")
	})
}

func TestUnitStartImport(t *testing.T) {
	const path = "/api/v1/stores/store-1/xml-import"
	body := `{
		"xmlUrl": " https://example.com/feed.xml ",
		"fieldMapping": {"sku": "stok_kodu", "name": "urun_adi"},
		"selectiveImport": true
	}`

	t.Run("scheduled", func(t *testing.T) {
		s := newTestServer(t)
		jobID, batchID := uuid.NewString(), uuid.NewString()

		s.scheduler.On("Schedule", mock.Anything, &models.ImportRequest{
			StoreID:         "store-1",
			XMLURL:          "https://example.com/feed.xml",
			FieldMapping:    map[string]string{"sku": "stok_kodu", "name": "urun_adi"},
			SelectiveImport: true,
		}).Return(&models.ImportJob{ID: jobID, BatchID: batchID}, nil)

		rec := s.do(http.MethodPost, path, body)

		assert.Equal(t, http.StatusAccepted, rec.Code, "should accept import")
		assert.JSONEq(t,
			`{"jobId":"`+jobID+`","batchId":"`+batchID+`"}`,
			rec.Body.String(),
			"should respond with job and batch ids",
		)
	})

	t.Run("invalid request", func(t *testing.T) {
		s := newTestServer(t)

		s.scheduler.On("Schedule", mock.Anything, mock.Anything).
			Return(nil, platform.ErrInvalidInput)

		rec := s.do(http.MethodPost, path, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "should reject import")
		assert.JSONEq(t, `{"error":"invalid input"}`, rec.Body.String(), "should expose validation message")
	})

	t.Run("queue error", func(t *testing.T) {
		s := newTestServer(t)

		s.scheduler.On("Schedule", mock.Anything, mock.Anything).
			Return(nil, assert.AnError)

		rec := s.do(http.MethodPost, path, body)

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "should fail")
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String(), "shouldn't expose internal error")
	})
}

func TestUnitJob(t *testing.T) {
	const path = "/api/v1/stores/store-1/xml-import/jobs/job-1"

	t.Run("found", func(t *testing.T) {
		s := newTestServer(t)
		s.scheduler.On("Job", mock.Anything, "store-1", "job-1").Return(&models.ImportJob{
			ID:          "job-1",
			StoreID:     "store-1",
			Status:      models.JobCompleted,
			TotalItems:  3,
			StagedItems: 2,
			Skips:       []models.Skip{{Index: 1, Reason: "missing sku"}},
		}, nil)

		rec := s.do(http.MethodGet, path, "")

		require.Equal(t, http.StatusOK, rec.Code, "should respond with ok")

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should respond with json")
		assert.Equal(t, "COMPLETED", resp["status"], "should respond with job status")
		assert.EqualValues(t, 2, resp["stagedItems"], "should respond with staged count")
		assert.Equal(t, []any{map[string]any{"index": float64(1), "reason": "missing sku"}}, resp["skips"], "should respond with skips")
	})

	t.Run("not found", func(t *testing.T) {
		s := newTestServer(t)
		s.scheduler.On("Job", mock.Anything, "store-1", "job-1").Return(nil, platform.ErrNotFound)

		rec := s.do(http.MethodGet, path, "")

		assert.Equal(t, http.StatusNotFound, rec.Code, "should respond with not found")
	})

	t.Run("panic", func(t *testing.T) {
		s := newTestServer(t)
		s.scheduler.On("Job", mock.Anything, "store-1", "job-1").Run(func(mock.Arguments) {
			panic("boom")
		}).Return(nil, nil)

		rec := s.do(http.MethodGet, path, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code, "should recover from panic")
		assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String(), "shouldn't expose panic")
	})
}

func TestUnitBatch(t *testing.T) {
	s := newTestServer(t)
	s.batches.On("Batch", mock.Anything, "store-1", "batch-1").Return(&models.ImportBatch{
		ID:         "batch-1",
		StoreID:    "store-1",
		Status:     models.BatchPending,
		TotalItems: 2,
	}, nil)

	rec := s.do(http.MethodGet, "/api/v1/stores/store-1/xml-import/batches/batch-1", "")

	require.Equal(t, http.StatusOK, rec.Code, "should respond with ok")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should respond with json")
	assert.Equal(t, "PENDING", resp["status"], "should respond with batch status")
	assert.EqualValues(t, 2, resp["totalItems"], "should respond with total items")
}

func TestUnitBatchItems(t *testing.T) {
	const path = "/api/v1/stores/store-1/xml-import/batches/batch-1/items"

	t.Run("page", func(t *testing.T) {
		s := newTestServer(t)
		s.batches.On("Preview", mock.Anything, "store-1", "batch-1", models.PreviewQuery{
			Page:   2,
			Limit:  5,
			Search: "shoe",
		}).Return(&models.Page{
			Items: []models.ImportItem{{ID: "item-1", SKU: "A-1", Name: "Shoe", Stock: 3}},
			Total: 6,
			Page:  2,
			Limit: 5,
		}, nil)

		rec := s.do(http.MethodGet, path+"?page=2&limit=5&search=shoe", "")

		require.Equal(t, http.StatusOK, rec.Code, "should respond with ok")

		var resp struct {
			Items []struct {
				ID     string   `json:"id"`
				SKU    string   `json:"sku"`
				Stock  int64    `json:"stock"`
				Images []string `json:"images"`
			} `json:"items"`
			Total int `json:"total"`
			Page  int `json:"page"`
			Limit int `json:"limit"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "should respond with json")
		require.Len(t, resp.Items, 1, "should respond with items")
		assert.Equal(t, "A-1", resp.Items[0].SKU, "should respond with item sku")
		assert.Equal(t, int64(3), resp.Items[0].Stock, "should respond with item stock")
		assert.Equal(t, []string{}, resp.Items[0].Images, "should respond with empty images")
		assert.Equal(t, 6, resp.Total, "should respond with total")
		assert.Equal(t, 2, resp.Page, "should respond with page")
		assert.Equal(t, 5, resp.Limit, "should respond with limit")
	})

	t.Run("default page", func(t *testing.T) {
		s := newTestServer(t)
		s.batches.On("Preview", mock.Anything, "store-1", "batch-1", models.PreviewQuery{Page: 1}).
			Return(&models.Page{Page: 1, Limit: 20}, nil)

		rec := s.do(http.MethodGet, path, "")

		assert.Equal(t, http.StatusOK, rec.Code, "should respond with ok")
	})

	t.Run("invalid page", func(t *testing.T) {
		s := newTestServer(t)

		rec := s.do(http.MethodGet, path+"?page=first", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, "should reject request")
		assert.JSONEq(t, `{"error":"page must be a number: invalid input"}`, rec.Body.String(), "should explain rejection")
	})
}

func TestUnitCommit(t *testing.T) {
	const path = "/api/v1/stores/store-1/xml-import/commit"
	body := `{"batchId":"batch-1","productIds":["item-1","item-2"]}`

	tests := map[string]struct {
		body       string
		result     *importer.CommitResult
		err        error
		mock       bool
		wantStatus int
		wantBody   string
	}{
		"committed": {
			body:       body,
			result:     &importer.CommitResult{Imported: 2, Remaining: 1},
			mock:       true,
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true,"imported":2,"remaining":1,"message":"2 products imported"}`,
		},
		"conflict": {
			body:       body,
			err:        platform.ErrConflict,
			mock:       true,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"conflict"}`,
		},
		"batch not found": {
			body:       body,
			err:        platform.ErrNotFound,
			mock:       true,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
		"storage error": {
			body:       body,
			err:        assert.AnError,
			mock:       true,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
		"missing batch": {
			body:       `{"productIds":["item-1"]}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"batchId is required: invalid input"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)
			if tt.mock {
				s.batches.On("Commit", mock.Anything, "store-1", "batch-1", []string{"item-1", "item-2"}).
					Return(tt.result, tt.err)
			}

			rec := s.do(http.MethodPost, path, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code, "should respond with expected status")
			assert.JSONEq(t, tt.wantBody, rec.Body.String(), "should respond with expected body")
		})
	}
}

func TestUnitCancelBatch(t *testing.T) {
	const path = "/api/v1/stores/store-1/xml-import/batches/batch-1/cancel"

	t.Run("cancelled", func(t *testing.T) {
		s := newTestServer(t)
		s.batches.On("Cancel", mock.Anything, "store-1", "batch-1").Return(nil)

		rec := s.do(http.MethodPost, path, "")

		assert.Equal(t, http.StatusOK, rec.Code, "should respond with ok")
		assert.JSONEq(t, `{"ok":true}`, rec.Body.String(), "should confirm cancellation")
	})

	t.Run("already committed", func(t *testing.T) {
		s := newTestServer(t)
		s.batches.On("Cancel", mock.Anything, "store-1", "batch-1").Return(platform.ErrConflict)

		rec := s.do(http.MethodPost, path, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code, "should reject cancellation")
	})
}

func TestUnitCheckConnection(t *testing.T) {
	const path = "/api/v1/stores/store-1/marketplaces/conn-1/check"

	tests := map[string]struct {
		err        error
		wantStatus int
		wantBody   string
	}{
		"valid credentials": {
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		"rejected credentials": {
			err:        trendyol.ErrUnauthorized,
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":false,"message":"trendyol rejected credentials"}`,
		},
		"connection not found": {
			err:        platform.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"not found"}`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newTestServer(t)
			s.connections.On("CheckConnection", mock.Anything, "store-1", "conn-1").Return(tt.err)

			rec := s.do(http.MethodPost, path, "")

			assert.Equal(t, tt.wantStatus, rec.Code, "should respond with expected status")
			assert.JSONEq(t, tt.wantBody, rec.Body.String(), "should respond with expected body")
		})
	}
}

func TestUnitCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := api.NewServer(
		mocks.NewFetcher(t),
		mocks.NewScheduler(t),
		mocks.NewBatches(t),
		mocks.NewConnectionChecker(t),
		api.WithAllowedOrigins([]string{"https://panel.example.com"}),
	).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/stores/store-1/xml-import", nil)
	req.Header.Set("Origin", "https://panel.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "https://panel.example.com", rec.Header().Get("Access-Control-Allow-Origin"), "should allow configured origin")
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
