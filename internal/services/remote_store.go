// internal/services/remote_store.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/modgarage/garage-backend/internal/models"
)

// RemoteProjectStore implements ProjectRepository against the external
// customization-projects REST collaborator:
//
//	GET  {base}/api/customization-projects
//	POST {base}/api/customization-projects
//	PUT  {base}/api/customization-projects/{id}
//
// Transient failures are retried with backoff; a request that exhausts its
// retries surfaces to the caller, which keeps in-memory state untouched.
type RemoteProjectStore struct {
	baseURL string
	client  *retryablehttp.Client
}

func NewRemoteProjectStore(baseURL string) *RemoteProjectStore {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 5 * time.Second
	client.HTTPClient.Timeout = 15 * time.Second
	client.Logger = nil

	return &RemoteProjectStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

type remoteProjectPayload struct {
	Name           string                    `json:"name"`
	Description    string                    `json:"description"`
	VehicleID      string                    `json:"vehicleId,omitempty"`
	Customizations models.CustomizationState `json:"customizations"`
}

func (s *RemoteProjectStore) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := s.do(ctx, http.MethodGet, "/api/customization-projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (s *RemoteProjectStore) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.do(ctx, http.MethodGet, "/api/customization-projects/"+id.String(), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (s *RemoteProjectStore) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	payload := remoteProjectPayload{
		Name:           project.Name,
		Description:    project.Description,
		VehicleID:      project.VehicleID,
		Customizations: project.Customizations,
	}

	var created models.Project
	if err := s.do(ctx, http.MethodPost, "/api/customization-projects", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *RemoteProjectStore) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	payload := remoteProjectPayload{
		Name:           project.Name,
		Description:    project.Description,
		Customizations: project.Customizations,
	}

	var updated models.Project
	if err := s.do(ctx, http.MethodPut, "/api/customization-projects/"+project.ID.String(), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *RemoteProjectStore) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("project store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrProjectNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"status": resp.StatusCode,
		}).Warn("Project store request failed")
		return fmt.Errorf("project store returned status %d", resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
