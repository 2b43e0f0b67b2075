// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"

	"github.com/desertthunder/tdx/internal/models"
)

// MockSyncer is a test double for [tasks.Syncer].
//
// It records the last pushed collection and returns the configured receipt or
// error.
type MockSyncer struct {
	Receipt *models.SyncReceipt
	Err     error
	Pushed  [][]models.Task
}

func (m *MockSyncer) Push(ctx context.Context, tasks []models.Task) (*models.SyncReceipt, error) {
	m.Pushed = append(m.Pushed, tasks)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Receipt != nil {
		return m.Receipt, nil
	}
	return &models.SyncReceipt{Message: "synced", Count: len(tasks)}, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}
