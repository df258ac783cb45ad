package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/feed-importer/pkg/v1/commander"
	"github.com/rs/zerolog"
)

//go:generate mockery --name Importer --filename importer.go
//go:generate mockery --name Consumer --filename consumer.go

// Importer stages feed rows of import requests.
type Importer interface {
	Run(ctx context.Context, req models.ImportRequest) error
}

// Consumer consumes queue messages.
type Consumer interface {
	Consume(ctx context.Context, queue string, prefetch int, handler rabbitmq.HandlerFunc) (<-chan error, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq      Consumer
	importer Importer
	logger   *zerolog.Logger
}

// NewHandler returns new RMQHandler.
func NewHandler(rmq Consumer, importer Importer, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:      rmq,
		importer: importer,
		logger:   logger,
	}
}

// Start starts consuming and handling import commands from RMQ.
// At most prefetch commands are delivered before being acknowledged.
func (h *RMQHandler) Start(ctx context.Context, queue string, prefetch int) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, prefetch, h.Handle)
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

// Handle runs import of command carried by message.
func (h *RMQHandler) Handle(ctx context.Context, message rabbitmq.Message) error {
	cmd, err := decodeMessage(message.Body)
	if err != nil {
		return err
	}

	logger := h.logger.With().
		Str("messageId", message.ID).
		Str("jobId", cmd.JobID).
		Str("storeId", cmd.StoreID).
		Logger()

	logger.Debug().
		Bool("redelivered", message.Redelivered).
		Str("xmlUrl", cmd.XMLURL).
		Msg("import started")

	err = h.importer.Run(ctx, models.ImportRequest{
		JobID:               cmd.JobID,
		BatchID:             cmd.BatchID,
		StoreID:             cmd.StoreID,
		XMLURL:              cmd.XMLURL,
		FieldMapping:        cmd.FieldMapping,
		VariantMapping:      cmd.VariantMapping,
		SkipMarketplaceSync: cmd.SkipMarketplaceSync,
		SelectiveImport:     cmd.SelectiveImport,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Debug().Msg("import finished")

	return nil
}

func decodeMessage(msg []byte) (*commander.ImportCommand, error) {
	var cmd commander.ImportCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode import command: %w", err)
	}

	if cmd.JobID == "" || cmd.BatchID == "" || cmd.StoreID == "" {
		return nil, fmt.Errorf("import command is missing ids: %w", platform.ErrInvalidInput)
	}

	return &cmd, nil
}
