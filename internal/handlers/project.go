// internal/handlers/project.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/modgarage/garage-backend/internal/models"
	"github.com/modgarage/garage-backend/internal/services"
	"github.com/modgarage/garage-backend/internal/utils"
)

// ProjectHandler serves the customization-projects collaborator contract.
// Responses are bare entities (no envelope): remote clients of this
// contract, including our own RemoteProjectStore, decode Project JSON
// directly.
type ProjectHandler struct {
	repo services.ProjectRepository
}

func NewProjectHandler(repo services.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{repo: repo}
}

type createProjectRequest struct {
	Name           string                    `json:"name" validate:"required,min=1,max=255"`
	Description    string                    `json:"description"`
	VehicleID      string                    `json:"vehicleId" validate:"required"`
	Customizations models.CustomizationState `json:"customizations"`
}

type updateProjectRequest struct {
	Name           string                    `json:"name" validate:"required,min=1,max=255"`
	Description    string                    `json:"description"`
	Customizations models.CustomizationState `json:"customizations"`
}

// GET /api/customization-projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.repo.List(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list projects")
		return
	}
	if projects == nil {
		projects = []models.Project{}
	}

	c.JSON(http.StatusOK, projects)
}

// GET /api/customization-projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID", nil)
		return
	}

	project, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.NotFoundResponse(c, "project")
			return
		}
		utils.InternalErrorResponse(c, "Failed to load project")
		return
	}

	c.JSON(http.StatusOK, project)
}

// POST /api/customization-projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if !bindAndValidate(c, &req) {
		return
	}

	project := &models.Project{
		Name:           req.Name,
		Description:    req.Description,
		VehicleID:      req.VehicleID,
		Customizations: req.Customizations,
		Status:         models.ProjectStatusInProgress,
	}

	created, err := h.repo.Create(c.Request.Context(), project)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to create project")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// PUT /api/customization-projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID", nil)
		return
	}

	var req updateProjectRequest
	if !bindAndValidate(c, &req) {
		return
	}

	project, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.NotFoundResponse(c, "project")
			return
		}
		utils.InternalErrorResponse(c, "Failed to load project")
		return
	}

	project.Name = req.Name
	project.Description = req.Description
	project.Customizations = req.Customizations

	updated, err := h.repo.Update(c.Request.Context(), project)
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to update project")
		return
	}

	c.JSON(http.StatusOK, updated)
}
