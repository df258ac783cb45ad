package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Sender sends messages.
type Sender interface {
	// Send sends message body. The id identifies message for deduplication and tracing.
	Send(ctx context.Context, id string, body []byte) error
}

// ImportCommander sends import commands.
type ImportCommander struct {
	sender Sender
}

// NewImportCommander returns new ImportCommander using provided sender for sending messages.
func NewImportCommander(sender Sender) ImportCommander {
	return ImportCommander{
		sender: sender,
	}
}

// SendImportCommand sends import command. Job id is used as message id.
func (c ImportCommander) SendImportCommand(ctx context.Context, cmd ImportCommand) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal import command: %w", err)
	}

	if err := c.sender.Send(ctx, cmd.JobID, cmdMsg); err != nil {
		return fmt.Errorf("can't send import command: %w", err)
	}

	return nil
}
