package importer

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MichalMitros/feed-importer/internal/mapping"
	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/pkg/v1/commander"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name JobStorage --filename jobstorage.go
//go:generate mockery --name Commander --filename commander.go

// JobStorage stores import jobs.
type JobStorage interface {
	CreateJob(ctx context.Context, job *models.ImportJob) error
	GetJob(ctx context.Context, storeID, jobID string) (*models.ImportJob, error)
	FinishJob(ctx context.Context, job *models.ImportJob) error
}

// Commander sends import commands to workers.
type Commander interface {
	SendImportCommand(ctx context.Context, cmd commander.ImportCommand) error
}

// Scheduler validates import requests, records their jobs and hands them over to workers.
type Scheduler struct {
	storage   JobStorage
	commander Commander
	clock     Clock
	logger    *zerolog.Logger
}

// NewScheduler returns new Scheduler.
func NewScheduler(storage JobStorage, commander Commander, clock Clock, logger *zerolog.Logger) *Scheduler {
	if clock == nil {
		clock = systemClock{}
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Scheduler{
		storage:   storage,
		commander: commander,
		clock:     clock,
		logger:    logger,
	}
}

// Schedule queues import of request's feed. Job and batch ids are assigned to the request.
func (s *Scheduler) Schedule(ctx context.Context, req *models.ImportRequest) (*models.ImportJob, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	req.JobID = uuid.NewString()
	req.BatchID = uuid.NewString()

	job := &models.ImportJob{
		ID:                  req.JobID,
		StoreID:             req.StoreID,
		BatchID:             req.BatchID,
		XMLURL:              req.XMLURL,
		Status:              models.JobQueued,
		SkipMarketplaceSync: req.SkipMarketplaceSync,
		SelectiveImport:     req.SelectiveImport,
		Skips:               []models.Skip{},
	}

	if err := s.storage.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("can't create import job: %w", err)
	}

	err := s.commander.SendImportCommand(ctx, commander.ImportCommand{
		JobID:               req.JobID,
		BatchID:             req.BatchID,
		StoreID:             req.StoreID,
		XMLURL:              req.XMLURL,
		FieldMapping:        req.FieldMapping,
		VariantMapping:      req.VariantMapping,
		SkipMarketplaceSync: req.SkipMarketplaceSync,
		SelectiveImport:     req.SelectiveImport,
	})
	if err != nil {
		job.Status = models.JobFailed
		job.StatusMessage = lo.ToPtr("can't queue import")
		job.FinishedAt = s.clock.Now()
		if finishErr := s.storage.FinishJob(context.WithoutCancel(ctx), job); finishErr != nil {
			s.logger.Error().Err(finishErr).Str("jobId", job.ID).Msg("can't mark unqueued job as failed")
		}

		return nil, fmt.Errorf("can't queue import: %w", err)
	}

	return job, nil
}

// Job returns store's import job.
func (s *Scheduler) Job(ctx context.Context, storeID, jobID string) (*models.ImportJob, error) {
	job, err := s.storage.GetJob(ctx, storeID, jobID)
	if err != nil {
		return nil, fmt.Errorf("can't get import job: %w", err)
	}

	return job, nil
}

func validateRequest(req *models.ImportRequest) error {
	if req.StoreID == "" {
		return fmt.Errorf("store id is required: %w", platform.ErrInvalidInput)
	}

	if req.XMLURL == "" {
		return fmt.Errorf("xmlUrl is required: %w", platform.ErrInvalidInput)
	}

	u, err := url.Parse(req.XMLURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("xmlUrl must be an absolute http(s) url: %w", platform.ErrInvalidInput)
	}

	if err := validateMapping(req.FieldMapping, mapping.MainFields); err != nil {
		return fmt.Errorf("invalid fieldMapping: %w", err)
	}

	if len(req.FieldMapping) > 0 {
		for _, required := range []string{mapping.FieldSKU, mapping.FieldName} {
			if _, ok := req.FieldMapping[required]; !ok {
				return fmt.Errorf("fieldMapping must map %q: %w", required, platform.ErrInvalidInput)
			}
		}
	}

	if err := validateMapping(req.VariantMapping, mapping.VariantFields); err != nil {
		return fmt.Errorf("invalid variantMapping: %w", err)
	}

	return nil
}

func validateMapping(m map[string]string, fields []mapping.Field) error {
	keys := lo.Map(fields, func(f mapping.Field, _ int) string { return f.Key })

	for field, tag := range m {
		if !lo.Contains(keys, field) {
			return fmt.Errorf("unknown field %q: %w", field, platform.ErrInvalidInput)
		}
		if tag == "" {
			return fmt.Errorf("field %q has empty tag: %w", field, platform.ErrInvalidInput)
		}
	}

	return nil
}
