package api

import "context"

// MockClient is a mock implementation of ChatClientInterface for testing
type MockClient struct {
	// Mock return values
	Reply   string
	SendErr error
	BaseVal string

	// Call counters/recorders
	SendCalled int
	LastSent   string
}

// Ensure MockClient implements ChatClientInterface
var _ ChatClientInterface = (*MockClient)(nil)

func (m *MockClient) SendMessage(_ context.Context, message string) (string, error) {
	m.SendCalled++
	m.LastSent = message
	if m.SendErr != nil {
		return "", m.SendErr
	}
	return m.Reply, nil
}

func (m *MockClient) BaseURL() string {
	if m.BaseVal != "" {
		return m.BaseVal
	}
	return "http://mock"
}
