package email

import "sync"

// MockProvider records messages instead of sending them. Used in tests
// and in environments without SMTP credentials.
type MockProvider struct {
	mu       sync.Mutex
	messages []Message
}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

// Messages returns a copy of everything sent so far.
func (p *MockProvider) Messages() []Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Message, len(p.messages))
	copy(out, p.messages)
	return out
}
