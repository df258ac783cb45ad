package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/MichalMitros/feed-importer/internal/feed"
	"github.com/MichalMitros/feed-importer/internal/marketplace/trendyol"
	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/gin-gonic/gin"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, okResponse{OK: true})
}

func (s *Server) discover(c *gin.Context) {
	var req discoverRequest
	if !s.bind(c, &req) {
		return
	}

	var r io.Reader
	switch {
	case strings.TrimSpace(req.XMLContent) != "":
		r = strings.NewReader(req.XMLContent)
	case strings.TrimSpace(req.XMLURL) != "":
		file, err := s.fetcher.FetchFile(c.Request.Context(), req.XMLURL)
		if err != nil {
			s.logger.Warn().Err(err).Str("xmlUrl", req.XMLURL).Msg("can't fetch feed file")
			c.JSON(http.StatusBadGateway, errorResponse{Error: fmt.Sprintf("can't fetch feed file: %s", err)})
			return
		}
		defer file.Close()
		r = file
	default:
		s.abortWithError(c, fmt.Errorf("xmlUrl or xmlContent is required: %w", platform.ErrInvalidInput))
		return
	}

	result, err := s.discoverer.Discover(c.Request.Context(), r)
	if errors.Is(err, feed.ErrMalformedFeed) {
		err = fmt.Errorf("%w: %w", platform.ErrInvalidInput, err)
	}
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) suggestMapping(c *gin.Context) {
	var req suggestMappingRequest
	if !s.bind(c, &req) {
		return
	}

	if len(req.XMLTags) == 0 {
		s.abortWithError(c, fmt.Errorf("xmlTags is required: %w", platform.ErrInvalidInput))
		return
	}

	c.JSON(http.StatusOK, suggestMappingResponse{
		Suggestions: s.mainScorer.Suggest(req.XMLTags, req.SampleValues),
		Variants:    s.variantScorer.Suggest(req.XMLTags, req.SampleValues),
		Model:       scoringModel,
	})
}

func (s *Server) startImport(c *gin.Context) {
	var req importRequest
	if !s.bind(c, &req) {
		return
	}

	job, err := s.scheduler.Schedule(c.Request.Context(), &models.ImportRequest{
		StoreID:             c.Param("storeId"),
		XMLURL:              strings.TrimSpace(req.XMLURL),
		FieldMapping:        req.FieldMapping,
		VariantMapping:      req.VariantMapping,
		SkipMarketplaceSync: req.SkipMarketplaceSync,
		SelectiveImport:     req.SelectiveImport,
	})
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, importResponse{JobID: job.ID, BatchID: job.BatchID})
}

func (s *Server) job(c *gin.Context) {
	job, err := s.scheduler.Job(c.Request.Context(), c.Param("storeId"), c.Param("jobId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newJobResponse(job))
}

func (s *Server) batch(c *gin.Context) {
	batch, err := s.batches.Batch(c.Request.Context(), c.Param("storeId"), c.Param("batchId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBatchResponse(batch))
}

func (s *Server) batchItems(c *gin.Context) {
	query := models.PreviewQuery{Search: strings.TrimSpace(c.Query("search"))}

	var err error
	if query.Page, err = queryInt(c, "page", 1); err != nil {
		s.abortWithError(c, err)
		return
	}
	if query.Limit, err = queryInt(c, "limit", 0); err != nil {
		s.abortWithError(c, err)
		return
	}

	page, err := s.batches.Preview(c.Request.Context(), c.Param("storeId"), c.Param("batchId"), query)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPageResponse(page))
}

func (s *Server) commit(c *gin.Context) {
	var req commitRequest
	if !s.bind(c, &req) {
		return
	}

	if req.BatchID == "" {
		s.abortWithError(c, fmt.Errorf("batchId is required: %w", platform.ErrInvalidInput))
		return
	}

	result, err := s.batches.Commit(c.Request.Context(), c.Param("storeId"), req.BatchID, req.ProductIDs)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, commitResponse{
		OK:        true,
		Imported:  result.Imported,
		Remaining: result.Remaining,
		Message:   fmt.Sprintf("%d products imported", result.Imported),
	})
}

func (s *Server) cancelBatch(c *gin.Context) {
	err := s.batches.Cancel(c.Request.Context(), c.Param("storeId"), c.Param("batchId"))
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, okResponse{OK: true})
}

func (s *Server) checkConnection(c *gin.Context) {
	err := s.connections.CheckConnection(c.Request.Context(), c.Param("storeId"), c.Param("connectionId"))
	if errors.Is(err, trendyol.ErrUnauthorized) {
		c.JSON(http.StatusOK, okResponse{OK: false, Message: err.Error()})
		return
	}
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, okResponse{OK: true})
}

// bind decodes json request body. It responds with bad request and returns false when body is malformed.
func (s *Server) bind(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("malformed request body: %s", err)})
		return false
	}

	return true
}

// abortWithError responds with status matching err.
// Messages of unexpected errors aren't exposed to clients.
func (s *Server) abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, platform.ErrInvalidInput), errors.Is(err, platform.ErrConflict):
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, platform.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		s.logger.Error().
			Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func queryInt(c *gin.Context, key string, fallback int) (int, error) {
	value := c.Query(key)
	if value == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, platform.ErrInvalidInput)
	}

	return n, nil
}
