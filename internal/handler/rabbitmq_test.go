package handler_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MichalMitros/feed-importer/internal/handler"
	"github.com/MichalMitros/feed-importer/internal/handler/mocks"
	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/internal/platform/models/modelstesting"
	"github.com/MichalMitros/feed-importer/internal/platform/rabbitmq"
	"github.com/MichalMitros/feed-importer/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitHandle(t *testing.T) {
	req := modelstesting.FakeImportRequest(func(r *models.ImportRequest) {
		r.VariantMapping = map[string]string{"color": "renk"}
		r.SkipMarketplaceSync = true
	})
	body, err := json.Marshal(commander.ImportCommand{
		JobID:               req.JobID,
		BatchID:             req.BatchID,
		StoreID:             req.StoreID,
		XMLURL:              req.XMLURL,
		FieldMapping:        req.FieldMapping,
		VariantMapping:      req.VariantMapping,
		SkipMarketplaceSync: req.SkipMarketplaceSync,
		SelectiveImport:     req.SelectiveImport,
	})
	require.NoError(t, err, "should marshal command")

	tests := map[string]struct {
		body         []byte
		mockImporter func(importer *mocks.Importer)
		wantErr      error
	}{
		"import command": {
			body: body,
			mockImporter: func(importer *mocks.Importer) {
				importer.On("Run", mock.Anything, req).Return(nil)
			},
		},
		"import error": {
			body: body,
			mockImporter: func(importer *mocks.Importer) {
				importer.On("Run", mock.Anything, req).Return(assert.AnError)
			},
			wantErr: assert.AnError,
		},
		"malformed message": {
			body:         []byte(`{"jobId":`),
			mockImporter: func(*mocks.Importer) {},
		},
		"missing ids": {
			body:         []byte(`{"xmlUrl":"https://example.com/feed.xml"}`),
			mockImporter: func(*mocks.Importer) {},
			wantErr:      platform.ErrInvalidInput,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			importer := mocks.NewImporter(t)
			tt.mockImporter(importer)
			logger := zerolog.Nop()

			h := handler.NewHandler(mocks.NewConsumer(t), importer, &logger)

			err := h.Handle(context.TODO(), rabbitmq.Message{ID: req.JobID, Body: tt.body})

			switch {
			case name == "malformed message":
				require.ErrorContains(t, err, "can't decode import command", "should return decoding error")
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr, "should return expected error")
			default:
				require.NoError(t, err, "shouldn't return any error")
			}
		})
	}
}

func TestUnitStart(t *testing.T) {
	errs := make(chan error)
	consumed := make(chan struct{})

	req := modelstesting.FakeImportRequest()
	body, err := json.Marshal(commander.ImportCommand{
		JobID:           req.JobID,
		BatchID:         req.BatchID,
		StoreID:         req.StoreID,
		XMLURL:          req.XMLURL,
		FieldMapping:    req.FieldMapping,
		SelectiveImport: req.SelectiveImport,
	})
	require.NoError(t, err, "should marshal command")

	consumer := mocks.NewConsumer(t)
	importer := mocks.NewImporter(t)
	logger := zerolog.Nop()

	consumer.On("Consume", mock.Anything, "imports", 4, mock.Anything).Run(func(args mock.Arguments) {
		handle := args.Get(3).(rabbitmq.HandlerFunc)
		go func() {
			defer close(consumed)
			assert.NoError(t, handle(context.TODO(), rabbitmq.Message{Body: body}), "should handle message")
		}()
	}).Return((<-chan error)(errs), nil)
	importer.On("Run", mock.Anything, req).Return(nil)

	h := handler.NewHandler(consumer, importer, &logger)

	err = h.Start(context.TODO(), "imports", 4)

	require.NoError(t, err, "shouldn't return any error")
	<-consumed
	close(errs)
}

func TestUnitStartError(t *testing.T) {
	consumer := mocks.NewConsumer(t)
	logger := zerolog.Nop()

	consumer.On("Consume", mock.Anything, "imports", 1, mock.Anything).Return(nil, assert.AnError)

	h := handler.NewHandler(consumer, mocks.NewImporter(t), &logger)

	err := h.Start(context.TODO(), "imports", 1)

	require.ErrorIs(t, err, assert.AnError, "should return consuming error")
}
