package commander_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MichalMitros/feed-importer/pkg/v1/commander"
	"github.com/MichalMitros/feed-importer/pkg/v1/commander/mocks"
	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendImportCommand(t *testing.T) {
	cmd := commander.ImportCommand{
		JobID:           uuid.NewString(),
		BatchID:         uuid.NewString(),
		StoreID:         uuid.NewString(),
		XMLURL:          faker.URL(),
		FieldMapping:    map[string]string{"sku": "code", "name": "title"},
		SelectiveImport: true,
	}

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			sender := mocks.NewSender(t)
			sender.On("Send", mock.Anything, cmd.JobID, mock.MatchedBy(func(body []byte) bool {
				var sent commander.ImportCommand
				return json.Unmarshal(body, &sent) == nil && assert.ObjectsAreEqual(cmd, sent)
			})).Return(tt.senderError)

			cmndr := commander.NewImportCommander(sender)
			err := cmndr.SendImportCommand(context.TODO(), cmd)

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitImportCommandJSON(t *testing.T) {
	body, err := json.Marshal(commander.ImportCommand{
		JobID:   "job",
		BatchID: "batch",
		StoreID: "store",
		XMLURL:  "https://example.com/feed.xml",
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"jobId":"job","batchId":"batch","storeId":"store","xmlUrl":"https://example.com/feed.xml"}`, string(body))
}
