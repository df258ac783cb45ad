package importer_test

import (
	"context"
	"testing"

	"github.com/MichalMitros/feed-importer/internal/importer"
	"github.com/MichalMitros/feed-importer/internal/importer/mocks"
	"github.com/MichalMitros/feed-importer/internal/platform"
	"github.com/MichalMitros/feed-importer/internal/platform/models"
	"github.com/MichalMitros/feed-importer/pkg/v1/commander"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSchedule(t *testing.T) {
	req := &models.ImportRequest{
		StoreID:             storeID,
		XMLURL:              xmlURL,
		FieldMapping:        fieldMapping,
		VariantMapping:      map[string]string{"color": "renk"},
		SkipMarketplaceSync: true,
	}

	storage := mocks.NewJobStorage(t)
	cmd := mocks.NewCommander(t)

	var created *models.ImportJob
	var sent commander.ImportCommand

	storage.On("CreateJob", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.ImportJob)
	}).Return(nil)
	cmd.On("SendImportCommand", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(commander.ImportCommand)
	}).Return(nil)

	scheduler := importer.NewScheduler(storage, cmd, fakeClock{now: &now}, nil)

	job, err := scheduler.Schedule(context.TODO(), req)

	require.NoError(t, err, "shouldn't return any error")
	assert.Same(t, created, job, "should return created job")
	assert.NotEmpty(t, job.ID, "should assign job id")
	assert.NotEmpty(t, job.BatchID, "should assign batch id")
	assert.Equal(t, models.JobQueued, job.Status, "should queue job")
	assert.Equal(t, commander.ImportCommand{
		JobID:               job.ID,
		BatchID:             job.BatchID,
		StoreID:             storeID,
		XMLURL:              xmlURL,
		FieldMapping:        fieldMapping,
		VariantMapping:      map[string]string{"color": "renk"},
		SkipMarketplaceSync: true,
	}, sent, "should send import command")
	assert.Equal(t, job.ID, req.JobID, "should assign job id to request")
}

func TestUnitScheduleSendError(t *testing.T) {
	storage := mocks.NewJobStorage(t)
	cmd := mocks.NewCommander(t)

	var failed *models.ImportJob

	storage.On("CreateJob", mock.Anything, mock.Anything).Return(nil)
	cmd.On("SendImportCommand", mock.Anything, mock.Anything).Return(assert.AnError)
	storage.On("FinishJob", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		failed = args.Get(1).(*models.ImportJob)
	}).Return(nil)

	scheduler := importer.NewScheduler(storage, cmd, fakeClock{now: &now}, nil)

	job, err := scheduler.Schedule(context.TODO(), &models.ImportRequest{StoreID: storeID, XMLURL: xmlURL})

	require.ErrorContains(t, err, "can't queue import", "should return error about failed queueing")
	require.ErrorIs(t, err, assert.AnError, errShouldContainAssertErrorMsg)
	assert.Nil(t, job, "shouldn't return job")
	require.NotNil(t, failed, "should finish job")
	assert.Equal(t, models.JobFailed, failed.Status, "should fail job")
	assert.Equal(t, &now, failed.FinishedAt, "should set finish time")
}

func TestUnitScheduleInvalidRequest(t *testing.T) {
	tests := map[string]*models.ImportRequest{
		"missing store": {XMLURL: xmlURL},
		"missing url":   {StoreID: storeID},
		"relative url":  {StoreID: storeID, XMLURL: "/feed.xml"},
		"ftp url":       {StoreID: storeID, XMLURL: "ftp://example.com/feed.xml"},
		"unknown field": {
			StoreID:      storeID,
			XMLURL:       xmlURL,
			FieldMapping: lo.Assign(fieldMapping, map[string]string{"weight": "agirlik"}),
		},
		"empty tag": {
			StoreID:      storeID,
			XMLURL:       xmlURL,
			FieldMapping: lo.Assign(fieldMapping, map[string]string{"brand": ""}),
		},
		"sku not mapped": {
			StoreID:      storeID,
			XMLURL:       xmlURL,
			FieldMapping: map[string]string{"name": "title"},
		},
		"unknown variant": {
			StoreID:        storeID,
			XMLURL:         xmlURL,
			VariantMapping: map[string]string{"sku": "code"},
		},
	}

	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			storage := mocks.NewJobStorage(t)
			cmd := mocks.NewCommander(t)

			scheduler := importer.NewScheduler(storage, cmd, fakeClock{now: &now}, nil)

			job, err := scheduler.Schedule(context.TODO(), req)

			require.ErrorIs(t, err, platform.ErrInvalidInput, "should return invalid input error")
			assert.Nil(t, job, "shouldn't return job")
			storage.AssertNotCalled(t, "CreateJob", mock.Anything, mock.Anything)
		})
	}
}

func TestUnitJob(t *testing.T) {
	job := runningJob()

	storage := mocks.NewJobStorage(t)
	storage.On("GetJob", mock.Anything, storeID, jobID).Return(job, nil).Once()
	storage.On("GetJob", mock.Anything, storeID, "unknown").Return(nil, platform.ErrNotFound).Once()

	scheduler := importer.NewScheduler(storage, mocks.NewCommander(t), nil, nil)

	got, err := scheduler.Job(context.TODO(), storeID, jobID)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, job, got, "should return stored job")

	_, err = scheduler.Job(context.TODO(), storeID, "unknown")

	require.ErrorIs(t, err, platform.ErrNotFound, "should return not found error")
}
