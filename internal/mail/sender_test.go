package mail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamenight-tools/gamenight/internal/config"
	gnerr "github.com/gamenight-tools/gamenight/internal/errors"
)

func TestBuildMessages_OnePerRecipient(t *testing.T) {
	cfg := config.SMTPConfig{
		Username:   "sender@example.com",
		Recipients: []string{"alex@example.com", "sam@example.com", "rowan@example.com"},
	}

	messages, err := buildMessages(cfg, &Message{Subject: "Game night", Body: "grid inside"})

	require.NoError(t, err)
	assert.Len(t, messages, 3, "each recipient gets a separate copy")
}

func TestBuildMessages_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.SMTPConfig
		msg  *Message
	}{
		{
			name: "nil message",
			cfg:  config.SMTPConfig{Username: "sender@example.com", Recipients: []string{"alex@example.com"}},
			msg:  nil,
		},
		{
			name: "invalid sender address",
			cfg:  config.SMTPConfig{Username: "not-an-address", Recipients: []string{"alex@example.com"}},
			msg:  &Message{Subject: "s", Body: "b"},
		},
		{
			name: "invalid recipient address",
			cfg:  config.SMTPConfig{Username: "sender@example.com", Recipients: []string{"not-an-address"}},
			msg:  &Message{Subject: "s", Body: "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messages, err := buildMessages(tt.cfg, tt.msg)

			assert.Error(t, err)
			assert.Nil(t, messages)
		})
	}
}

func TestMockSender_RecordsMessages(t *testing.T) {
	sender := NewMockSender()

	require.NoError(t, sender.Send(context.Background(), &Message{Subject: "one"}))
	require.NoError(t, sender.Send(context.Background(), &Message{Subject: "two"}))

	sent := sender.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "one", sent[0].Subject)
	assert.Equal(t, "two", sent[1].Subject)
}

func TestMockSender_Err(t *testing.T) {
	sender := NewMockSender()
	sender.Err = gnerr.Internalf("smtp down")

	err := sender.Send(context.Background(), &Message{Subject: "one"})

	assert.Error(t, err)
	assert.Empty(t, sender.Sent())
}
