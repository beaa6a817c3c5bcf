package mail

import (
	"context"
	"sync"
)

// MockSender implements Sender for testing, recording every message.
type MockSender struct {
	mu       sync.Mutex
	messages []*Message

	// Err, when set, is returned by Send instead of recording.
	Err error
}

// NewMockSender creates a new mock sender
func NewMockSender() *MockSender {
	return &MockSender{}
}

// Send implements Sender
func (m *MockSender) Send(_ context.Context, msg *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.messages = append(m.messages, msg)
	return nil
}

// Sent returns the messages recorded so far
func (m *MockSender) Sent() []*Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*Message(nil), m.messages...)
}
