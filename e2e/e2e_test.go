package e2e

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/MichalMitros/feed-importer/e2e/helpers"
	"github.com/MichalMitros/feed-importer/internal/api"
	"github.com/MichalMitros/feed-importer/internal/category"
	"github.com/MichalMitros/feed-importer/internal/config"
	"github.com/MichalMitros/feed-importer/internal/fetcher"
	"github.com/MichalMitros/feed-importer/internal/handler"
	"github.com/MichalMitros/feed-importer/internal/importer"
	"github.com/MichalMitros/feed-importer/internal/marketplace/trendyol"
	"github.com/MichalMitros/feed-importer/internal/platform/cache"
	"github.com/MichalMitros/feed-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/feed-importer/internal/platform/storage"
	pgmodels "github.com/MichalMitros/feed-importer/internal/platform/storage/gen/postgres/public/model"
	"github.com/MichalMitros/feed-importer/internal/platform/storage/storagetesting"
	"github.com/MichalMitros/feed-importer/pkg/v1/commander"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	userAgent = "feed-importer-e2e-test/1.0.0"
	exchange  = "feed-importer-e2e"
)

var fieldMapping = map[string]string{
	"sku":       "stok_kodu",
	"name":      "urun_adi",
	"salePrice": "fiyat",
	"stock":     "stok",
	"category":  "kategori",
	"images":    "resimler",
}

type stagedItem struct {
	ID         string            `json:"id"`
	SKU        string            `json:"sku"`
	SalePrice  float64           `json:"salePrice"`
	Images     []string          `json:"images"`
	Attributes map[string]string `json:"attributes"`
}

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	os.Exit(m.Run())
}

func TestE2E(t *testing.T) {
	suite.Run(t, new(E2ETestSuite))
}

type E2ETestSuite struct {
	suite.Suite
	cfg        *config.Config
	connection *amqp.Connection
	channel    *amqp.Channel
	db         *sql.DB
}

func (s *E2ETestSuite) SetupSuite() {
	cfg, err := config.Load()
	if err != nil {
		s.Require().FailNow("can't load config", err)
	}
	if cfg.DatabaseURL == "" || cfg.RabbitMQ.URL == "" {
		s.T().Skip("please provide DATABASE_URL and RABBITMQ_URL environment variables")
	}
	s.cfg = cfg

	if s.connection, err = amqp.Dial(cfg.RabbitMQ.URL); err != nil {
		s.Require().FailNow("can't open RabbitMQ connection", err)
	}

	if s.channel, err = s.connection.Channel(); err != nil {
		s.Require().FailNow("can't open RabbitMQ channel", err)
	}

	if s.db, err = sql.Open("postgres", cfg.DatabaseURL); err != nil {
		s.Require().FailNow("can't open Postgres connection", err)
	}
}

func (s *E2ETestSuite) TearDownSuite() {
	if s.db == nil {
		return
	}

	storagetesting.CleanupData(s.T(), s.db)
	if err := s.db.Close(); err != nil {
		s.FailNow("can't close Postgres connection", err)
	}

	if err := s.channel.Close(); err != nil {
		s.FailNow("can't close RabbitMQ channel", err)
	}

	if err := s.connection.Close(); err != nil {
		s.FailNow("can't close RabbitMQ connection", err)
	}
}

// startServices runs import worker and api server. Logs of message handler are written to returned buffer.
func (s *E2ETestSuite) startServices(ctx context.Context, feedClient *http.Client) (string, *bytes.Buffer) {
	queue := fmt.Sprintf("feed-importer-e2e-test-%d", rand.Int63n(100000))
	routingKey := fmt.Sprintf("import.e2e.%d", rand.Int63n(100000))

	rmq, err := rabbitmq.NewRabbitMQ(s.connection, exchange)
	if err != nil {
		s.Require().FailNow("can't create RabbitMQ client", err)
	}
	s.Require().NoError(rmq.DeclareTopology(queue, routingKey), "should declare topology")
	helpers.DeleteRMQQueueOnCleanup(s.T(), s.channel, queue)

	pg := storage.NewPostgres(s.db)
	f := fetcher.NewFetcher(feedClient, userAgent, fetcher.WithBaseDelay(10*time.Millisecond))
	processor := importer.NewProcessor(f, pg, category.NewResolver(pg), 4)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	han := handler.NewHandler(rmq, processor, &logger)
	s.Require().NoError(han.Start(ctx, queue, 1), "handler shouldn't return any error")

	memory := cache.NewMemory(time.Minute)
	s.T().Cleanup(memory.Close)

	scheduler := importer.NewScheduler(
		pg,
		commander.NewImportCommander(commander.NewRabbitMQSender(rmq, routingKey)),
		nil,
		nil,
	)
	server := api.NewServer(
		f,
		scheduler,
		processor,
		trendyol.NewService(pg, trendyol.NewClientFactory(f, trendyol.DefaultBaseURL, 1, 1), memory, time.Minute),
	)

	apiSrv := httptest.NewServer(server.Handler())
	s.T().Cleanup(apiSrv.Close)

	return apiSrv.URL, &buf
}

func (s *E2ETestSuite) TestSelectiveImport() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storeID := uuid.NewString()

	// Prepare feed with two rows which can't be staged
	products := helpers.GenerateFeedProducts(s.T(), 12)
	products[3].SKU = ""
	products[7].Name = ""
	feedSrv := helpers.PrepareMockedHTTPServer(s.T(), helpers.FeedXML(s.T(), products), http.StatusOK)
	feedURL := fmt.Sprintf("%s/%d.xml", feedSrv.URL, rand.Intn(100000))

	apiURL, logs := s.startServices(ctx, feedSrv.Client())
	importURL := fmt.Sprintf("%s/api/v1/stores/%s/xml-import", apiURL, storeID)

	// Discover feed tags
	var discovered struct {
		Tags      []string `json:"tags"`
		ItemCount int      `json:"itemCount"`
	}
	status := helpers.Do(s.T(), http.MethodPost, importURL+"/discover", map[string]string{"xmlUrl": feedURL}, &discovered)
	s.Require().Equal(http.StatusOK, status, "should discover feed")
	s.Equal(12, discovered.ItemCount, "should count feed items")
	s.ElementsMatch(
		[]string{"stok_kodu", "urun_adi", "fiyat", "stok", "kategori", "resimler", "renk"},
		discovered.Tags,
		"should discover feed tags",
	)

	// Start import
	var started struct {
		JobID   string `json:"jobId"`
		BatchID string `json:"batchId"`
	}
	status = helpers.Do(s.T(), http.MethodPost, importURL, map[string]any{
		"xmlUrl":          feedURL,
		"fieldMapping":    fieldMapping,
		"variantMapping":  map[string]string{"color": "renk"},
		"selectiveImport": true,
	}, &started)
	s.Require().Equal(http.StatusAccepted, status, "should accept import")

	job := helpers.WaitForJobToBeFinished(s.T(), apiURL, storeID, started.JobID)

	s.Equal("COMPLETED", job.Status, "job should be completed")
	s.Equal(int32(12), job.TotalItems, "should count all rows")
	s.Equal(int32(10), job.StagedItems, "should stage valid rows")
	s.Equal(int32(2), job.SkippedItems, "should skip invalid rows")
	s.Require().Len(job.Skips, 2, "should report skipped rows")
	s.Equal(3, job.Skips[0].Index, "should report row without sku")
	s.Equal(7, job.Skips[1].Index, "should report row without name")

	// Preview staged items
	var page struct {
		Items []stagedItem `json:"items"`
		Total int          `json:"total"`
	}
	itemsURL := fmt.Sprintf("%s/batches/%s/items?limit=100", importURL, started.BatchID)
	s.Require().Equal(http.StatusOK, helpers.Do(s.T(), http.MethodGet, itemsURL, nil, &page), "should preview items")
	s.Require().Len(page.Items, 10, "should list all staged items")
	s.Equal(10, page.Total, "should count staged items")
	s.Equal("SKU-001", page.Items[0].SKU, "items should keep feed order")
	s.Equal(100.90, page.Items[0].SalePrice, "should parse decimal comma")
	s.Len(page.Items[0].Images, 2, "should split image urls")
	s.Equal(map[string]string{"color": "Siyah"}, page.Items[0].Attributes, "should map variant attributes")

	// Commit first four items
	var committed struct {
		OK        bool `json:"ok"`
		Imported  int  `json:"imported"`
		Remaining int  `json:"remaining"`
	}
	status = helpers.Do(s.T(), http.MethodPost, importURL+"/commit", map[string]any{
		"batchId": started.BatchID,
		"productIds": lo.Map(page.Items[:4], func(item stagedItem, _ int) string {
			return item.ID
		}),
	}, &committed)
	s.Require().Equal(http.StatusOK, status, "should commit items")
	s.True(committed.OK, "commit should succeed")
	s.Equal(4, committed.Imported, "should import selected items")
	s.Equal(6, committed.Remaining, "should keep other items staged")

	dbProducts := storagetesting.GetProducts(s.T(), s.db, storeID)
	s.Require().Len(dbProducts, 4, "should store committed products")
	s.Equal("SKU-001", dbProducts[0].SKU, "should store committed sku")
	s.NotNil(dbProducts[0].PrimaryCategoryID, "should assign category")
	s.Len(storagetesting.GetProductImages(s.T(), s.db, dbProducts[0].ID), 2, "should store product images")
	s.Len(storagetesting.GetCategories(s.T(), s.db, storeID), 2, "should create category path once")

	// Cancel the rest
	cancelURL := fmt.Sprintf("%s/batches/%s/cancel", importURL, started.BatchID)
	s.Require().Equal(http.StatusOK, helpers.Do(s.T(), http.MethodPost, cancelURL, nil, nil), "should cancel batch")

	var batch struct {
		Status string `json:"status"`
	}
	batchURL := fmt.Sprintf("%s/batches/%s", importURL, started.BatchID)
	s.Require().Equal(http.StatusOK, helpers.Do(s.T(), http.MethodGet, batchURL, nil, &batch), "should get batch")
	s.Equal("CANCELLED", batch.Status, "batch should be cancelled")

	// Cancelled batch can't be committed
	status = helpers.Do(s.T(), http.MethodPost, importURL+"/commit", map[string]any{
		"batchId":    started.BatchID,
		"productIds": []string{page.Items[5].ID},
	}, nil)
	s.Equal(http.StatusBadRequest, status, "should reject commit of cancelled batch")

	cancel()

	assertLogsMessages(s.T(), []string{"import started", "import finished"}, logs)
}

func (s *E2ETestSuite) TestAutoCommitImport() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storeID := uuid.NewString()

	products := helpers.GenerateFeedProducts(s.T(), 9)
	feedSrv := helpers.PrepareMockedHTTPServer(s.T(), helpers.FeedXML(s.T(), products), http.StatusOK)
	feedURL := fmt.Sprintf("%s/%d.xml", feedSrv.URL, rand.Intn(100000))

	apiURL, _ := s.startServices(ctx, feedSrv.Client())
	importURL := fmt.Sprintf("%s/api/v1/stores/%s/xml-import", apiURL, storeID)

	var started struct {
		JobID   string `json:"jobId"`
		BatchID string `json:"batchId"`
	}
	status := helpers.Do(s.T(), http.MethodPost, importURL, map[string]any{
		"xmlUrl":       feedURL,
		"fieldMapping": fieldMapping,
	}, &started)
	s.Require().Equal(http.StatusAccepted, status, "should accept import")

	job := helpers.WaitForJobToBeFinished(s.T(), apiURL, storeID, started.JobID)

	s.Equal("COMPLETED", job.Status, "job should be completed")
	s.Equal(int32(9), job.StagedItems, "should stage all rows")
	s.Empty(job.Skips, "shouldn't skip any row")

	dbProducts := storagetesting.GetProducts(s.T(), s.db, storeID)
	s.Require().Len(dbProducts, 9, "should commit all products")
	s.Equal(
		lo.Map(products, func(p helpers.FeedProduct, _ int) string { return p.SKU }),
		lo.Map(dbProducts, func(p pgmodels.Product, _ int) string {
			return p.SKU
		}),
		"should store products of all rows",
	)

	var batch struct {
		Status string `json:"status"`
	}
	batchURL := fmt.Sprintf("%s/batches/%s", importURL, started.BatchID)
	s.Require().Equal(http.StatusOK, helpers.Do(s.T(), http.MethodGet, batchURL, nil, &batch), "should get batch")
	s.Equal("COMPLETED", batch.Status, "batch should be completed")
}

// assertLogsMessages is helper function which unmarshals log json and asserts message.
func assertLogsMessages(t *testing.T, expected []string, buf *bytes.Buffer) {
	t.Helper()

	logs := strings.Split(buf.String(), "\n")
	logs = lo.Filter(logs, func(log string, _ int) bool { return strings.TrimSpace(log) != "" })

	require.Len(t, logs, len(expected), "incorrect number of logs")

	for ix, exp := range expected {
		var log struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal([]byte(logs[ix]), &log); err != nil {
			require.FailNow(t, "can't unmarshal json log", err)
		}

		assert.Equalf(t, exp, log.Message, "log at index %d is incorrect", ix)
	}
}
