// Sync service for pushing the local task collection to the sync server
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/desertthunder/tdx/internal/models"
	"github.com/desertthunder/tdx/internal/shared"
)

// SyncService pushes the full local collection to the sync server and reads
// the server's copy back. Sync is one-way: every push replaces the server's
// in-memory array wholesale and nothing is ever pulled into the local store.
type SyncService struct {
	baseURL    string
	httpClient *http.Client
}

// NewSyncService creates a new sync service instance for the given base URL.
func NewSyncService(baseURL string, client *http.Client) *SyncService {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &SyncService{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// BaseURL returns the configured server base URL.
func (s *SyncService) BaseURL() string {
	return s.baseURL
}

type syncPayload struct {
	Tasks []models.Task `json:"tasks"`
}

type syncResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	SyncedAt string `json:"syncedAt"`
	Error    string `json:"error"`
}

type tasksResponse struct {
	Success bool          `json:"success"`
	Tasks   []models.Task `json:"tasks"`
}

// Push sends the full collection to POST /api/tasks/sync.
//
// A transport failure or non-2xx status yields an error wrapping
// [shared.ErrSyncFailed]; there is no automatic retry.
func (s *SyncService) Push(ctx context.Context, tasks []models.Task) (*models.SyncReceipt, error) {
	if tasks == nil {
		tasks = []models.Task{}
	}

	body, err := json.Marshal(syncPayload{Tasks: tasks})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sync payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/tasks/sync", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSyncFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed syncResponse
		if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.Error != "" {
			return nil, fmt.Errorf("%w: status %d: %s", shared.ErrSyncFailed, resp.StatusCode, parsed.Error)
		}
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrSyncFailed, resp.StatusCode, string(respBody))
	}

	var parsed syncResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sync response: %w", err)
	}

	return &models.SyncReceipt{
		Message:  parsed.Message,
		SyncedAt: parsed.SyncedAt,
		Count:    len(tasks),
	}, nil
}

// Fetch retrieves the server's current collection from GET /api/tasks.
func (s *SyncService) Fetch(ctx context.Context) ([]models.Task, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/tasks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d, body: %s", shared.ErrAPIRequest, resp.StatusCode, string(respBody))
	}

	var parsed tasksResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse tasks response: %w", err)
	}

	if parsed.Tasks == nil {
		parsed.Tasks = []models.Task{}
	}

	return parsed.Tasks, nil
}

// Health probes GET /api/health.
func (s *SyncService) Health(ctx context.Context) (*models.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}

	var status models.HealthStatus
	if err := json.Unmarshal(respBody, &status); err != nil {
		return nil, fmt.Errorf("failed to parse health response: %w", err)
	}

	return &status, nil
}
