// internal/services/project_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/modgarage/garage-backend/internal/configurator"
	"github.com/modgarage/garage-backend/internal/models"
)

// ProjectRepository is the persistence collaborator for saved projects.
// Backed by the local database by default; a remote store implementation
// exists for deployments where another service owns the project table.
type ProjectRepository interface {
	List(ctx context.Context) ([]models.Project, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) (*models.Project, error)
}

// SaveRequest carries everything a save needs: the blob is built from the
// session before the request is enqueued, so a queued save never reads
// mutable session state later.
type SaveRequest struct {
	ProjectID   *uuid.UUID
	Name        string
	Description string
	VehicleID   string
	State       models.CustomizationState
}

// ProjectService saves and restores named configurations. Failures never
// corrupt in-memory session state; the caller retries with the session as
// the source of truth.
type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// Save creates the project on first save (the store assigns the id) and
// updates it by id afterwards.
func (s *ProjectService) Save(ctx context.Context, req SaveRequest) (*models.Project, error) {
	if req.ProjectID == nil {
		project := &models.Project{
			Name:           req.Name,
			Description:    req.Description,
			VehicleID:      req.VehicleID,
			Customizations: req.State,
			Status:         models.ProjectStatusInProgress,
		}
		created, err := s.repo.Create(ctx, project)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", configurator.ErrSaveFailed, err)
		}
		return created, nil
	}

	existing, err := s.repo.Get(ctx, *req.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", configurator.ErrSaveFailed, err)
	}
	existing.Name = req.Name
	existing.Description = req.Description
	existing.Customizations = req.State

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", configurator.ErrSaveFailed, err)
	}
	return updated, nil
}

// Resume loads a saved project for restoration into a session. A project
// whose blob lost its vehicle binding is unrecoverable and surfaces
// ErrCorruptState; the caller starts a new project.
func (s *ProjectService) Resume(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", configurator.ErrLoadFailed, err)
	}
	if project.VehicleID == "" {
		return nil, configurator.ErrCorruptState
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", configurator.ErrLoadFailed, err)
	}
	return projects, nil
}
