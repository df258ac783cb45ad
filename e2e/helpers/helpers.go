package helpers

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/require"
)

const (
	contentType = "Content-Type"
)

// FeedProduct is a product row of generated test feed.
type FeedProduct struct {
	XMLName  xml.Name `xml:"product"`
	SKU      string   `xml:"stok_kodu"`
	Name     string   `xml:"urun_adi"`
	Price    string   `xml:"fiyat"`
	Stock    string   `xml:"stok"`
	Category string   `xml:"kategori"`
	Images   string   `xml:"resimler"`
	Color    string   `xml:"renk"`
}

type feedFile struct {
	XMLName  xml.Name `xml:"products"`
	Products []FeedProduct
}

// Job is import job returned by API.
type Job struct {
	ID           string `json:"id"`
	BatchID      string `json:"batchId"`
	Status       string `json:"status"`
	TotalItems   int32  `json:"totalItems"`
	StagedItems  int32  `json:"stagedItems"`
	SkippedItems int32  `json:"skippedItems"`
	Skips        []struct {
		Index  int    `json:"index"`
		Reason string `json:"reason"`
	} `json:"skips"`
	StatusMessage *string `json:"statusMessage"`
}

// GenerateFeedProducts generates n products with SKUs in [1;n].
func GenerateFeedProducts(t *testing.T, n int) []FeedProduct {
	t.Helper()

	products := make([]FeedProduct, n)
	for ix := range products {
		products[ix] = FeedProduct{
			SKU:      fmt.Sprintf("SKU-%03d", ix+1),
			Name:     faker.Sentence(),
			Price:    fmt.Sprintf("%d,90", 100+ix),
			Stock:    fmt.Sprintf("%d", ix),
			Category: "Giyim > Ayakkabı",
			Images:   fmt.Sprintf("https://cdn.example.com/%d-1.jpg, https://cdn.example.com/%d-2.jpg", ix, ix),
			Color:    "Siyah",
		}
	}

	return products
}

// FeedXML is helper function for encoding products as feed file.
func FeedXML(t *testing.T, products []FeedProduct) []byte {
	t.Helper()

	body, err := xml.MarshalIndent(feedFile{Products: products}, "", "  ")
	if err != nil {
		require.FailNow(t, "can't marshal feed file", err)
	}

	return append([]byte(xml.Header), body...)
}

// PrepareMockedHTTPServer is helper function for mocking feed http server.
func PrepareMockedHTTPServer(t *testing.T, body []byte, statusCode int) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, _ *http.Request) {
		wrt.Header().Add(contentType, "application/xml; charset=utf-8")
		wrt.WriteHeader(statusCode)
		_, _ = wrt.Write(body)
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv
}

// DeleteRMQQueueOnCleanup is helper function for deleting RMQ queue after test is finished.
func DeleteRMQQueueOnCleanup(t *testing.T, channel *amqp.Channel, queueName string) {
	t.Helper()

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, false)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// Do is helper function for sending JSON request to API. Response body is decoded into resp if it's not nil.
func Do(t *testing.T, method, url string, body, resp any) int {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err, "can't marshal request body")
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	require.NoError(t, err, "can't build request")
	req.Header.Set(contentType, "application/json")

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "can't send request")
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	require.NoError(t, err, "can't read response body")

	if resp != nil && res.StatusCode < http.StatusBadRequest {
		require.NoErrorf(t, json.Unmarshal(data, resp), "can't decode response body %q", strings.TrimSpace(string(data)))
	}

	return res.StatusCode
}

// WaitForJobToBeFinished is blocking helper function, returns job after it is finished.
func WaitForJobToBeFinished(t *testing.T, apiURL, storeID, jobID string) Job {
	t.Helper()

	url := fmt.Sprintf("%s/api/v1/stores/%s/xml-import/jobs/%s", apiURL, storeID, jobID)
	timeout := time.After(30 * time.Second)

	for {
		select {
		case <-timeout:
			require.FailNow(t, "job wasn't finished in time", jobID)
		case <-time.After(250 * time.Millisecond):
		}

		var job Job
		require.Equal(t, http.StatusOK, Do(t, http.MethodGet, url, nil, &job), "should get job")
		if job.Status == "COMPLETED" || job.Status == "FAILED" {
			return job
		}
	}
}
