// internal/handlers/session.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/modgarage/garage-backend/internal/configurator"
	"github.com/modgarage/garage-backend/internal/models"
	"github.com/modgarage/garage-backend/internal/services"
	"github.com/modgarage/garage-backend/internal/utils"
)

type SessionHandler struct {
	sessions  *services.SessionManager
	catalog   *services.CatalogService
	projects  *services.ProjectService
	saveQueue *services.SaveQueue
}

func NewSessionHandler(sessions *services.SessionManager, catalog *services.CatalogService, projects *services.ProjectService, saveQueue *services.SaveQueue) *SessionHandler {
	return &SessionHandler{
		sessions:  sessions,
		catalog:   catalog,
		projects:  projects,
		saveQueue: saveQueue,
	}
}

type createSessionRequest struct {
	VehicleID string `json:"vehicle_id"`
}

type selectVehicleRequest struct {
	VehicleID string `json:"vehicle_id" validate:"required"`
}

type addCartItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

type appearanceRequest struct {
	Color  string `json:"color" validate:"omitempty,hex_color"`
	Finish string `json:"finish" validate:"omitempty,oneof=glossy matte metallic pearlescent"`
}

type saveProjectRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=255"`
	Description string `json:"description"`
}

type resumeProjectRequest struct {
	ProjectID string `json:"project_id" validate:"required"`
}

// POST /sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req createSessionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, "Invalid request body", err.Error())
			return
		}
	}

	if req.VehicleID != "" {
		if _, ok := h.catalog.Vehicle(req.VehicleID); !ok {
			utils.NotFoundResponse(c, "vehicle")
			return
		}
	}

	id := h.sessions.Create(req.VehicleID)

	var view gin.H
	_ = h.sessions.With(id, func(s *configurator.Session) error {
		view = sessionView(s)
		return nil
	})

	utils.CreatedResponse(c, view)
}

// GET /sessions/:id
func (h *SessionHandler) GetSession(c *gin.Context) {
	h.withSession(c, func(s *configurator.Session) error {
		utils.SuccessResponse(c, sessionView(s))
		return nil
	})
}

// DELETE /sessions/:id
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	// confirm it exists so the client can tell a stale id apart
	if err := h.sessions.With(id, func(*configurator.Session) error { return nil }); err != nil {
		utils.NotFoundResponse(c, "session")
		return
	}

	h.sessions.Drop(id)
	utils.SuccessResponse(c, gin.H{"deleted": true})
}


// PUT /sessions/:id/vehicle
func (h *SessionHandler) SelectVehicle(c *gin.Context) {
	var req selectVehicleRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if _, ok := h.catalog.Vehicle(req.VehicleID); !ok {
		utils.NotFoundResponse(c, "vehicle")
		return
	}

	h.withSession(c, func(s *configurator.Session) error {
		s.SelectVehicle(req.VehicleID)
		utils.SuccessResponse(c, gin.H{
			"vehicle_id": s.VehicleID,
			"step":       s.Step(),
		})
		return nil
	})
}

// POST /sessions/:id/cart/items
func (h *SessionHandler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	item, ok := h.catalog.Item(req.ItemID)
	if !ok {
		utils.NotFoundResponse(c, "catalog item")
		return
	}

	h.withSession(c, func(s *configurator.Session) error {
		line, err := s.AddItem(item)
		switch {
		case errors.Is(err, configurator.ErrAlreadyInCart):
			utils.ConflictResponse(c, "Item is already in the cart")
			return nil
		case errors.Is(err, configurator.ErrIncompatibleItem):
			utils.UnprocessableResponse(c, "Item is not compatible with the selected vehicle")
			return nil
		case err != nil:
			utils.InternalErrorResponse(c, err.Error())
			return nil
		}

		utils.CreatedResponse(c, gin.H{
			"item":           line,
			"customizations": s.Applied(),
			"quote":          s.Quote(),
			"points":         s.Ledger().Points(),
		})
		return nil
	})
}

// DELETE /sessions/:id/cart/items/:itemId
func (h *SessionHandler) RemoveCartItem(c *gin.Context) {
	itemID := c.Param("itemId")

	h.withSession(c, func(s *configurator.Session) error {
		if err := s.RemoveItem(itemID); err != nil {
			utils.NotFoundResponse(c, "cart item")
			return nil
		}

		utils.SuccessResponse(c, gin.H{
			"items":          s.Items(),
			"customizations": s.Applied(),
			"quote":          s.Quote(),
		})
		return nil
	})
}

// POST /sessions/:id/cart/items/:itemId/like
func (h *SessionHandler) ToggleLike(c *gin.Context) {
	itemID := c.Param("itemId")

	h.withSession(c, func(s *configurator.Session) error {
		utils.SuccessResponse(c, gin.H{
			"item_id": itemID,
			"liked":   s.ToggleLike(itemID),
		})
		return nil
	})
}

// PUT /sessions/:id/appearance
func (h *SessionHandler) SetAppearance(c *gin.Context) {
	var req appearanceRequest
	if !bindAndValidate(c, &req) {
		return
	}

	h.withSession(c, func(s *configurator.Session) error {
		if req.Color != "" {
			s.SetColor(req.Color)
		}
		if req.Finish != "" {
			s.SetFinish(models.ColorFinish(req.Finish))
		}

		utils.SuccessResponse(c, gin.H{
			"choices":        s.Choices(),
			"customizations": s.Applied(),
			"quote":          s.Quote(),
		})
		return nil
	})
}

type browseContextRequest struct {
	Category    string `json:"category" validate:"required"`
	Subcategory string `json:"subcategory"`
}

// PUT /sessions/:id/context
//
// Records where the user is browsing so a restored session reopens on the
// same category view.
func (h *SessionHandler) SetBrowseContext(c *gin.Context) {
	var req browseContextRequest
	if !bindAndValidate(c, &req) {
		return
	}

	category := models.Category(req.Category)
	if !category.Valid() {
		utils.BadRequestResponse(c, "Unknown category", req.Category)
		return
	}

	h.withSession(c, func(s *configurator.Session) error {
		s.SetBrowseContext(category, req.Subcategory)
		utils.SuccessResponse(c, gin.H{
			"choices": s.Choices(),
		})
		return nil
	})
}

// GET /sessions/:id/quote
func (h *SessionHandler) GetQuote(c *gin.Context) {
	h.withSession(c, func(s *configurator.Session) error {
		utils.SuccessResponse(c, gin.H{
			"quote": s.Quote(),
		})
		return nil
	})
}

// GET /sessions/:id/customizations
func (h *SessionHandler) GetCustomizations(c *gin.Context) {
	h.withSession(c, func(s *configurator.Session) error {
		utils.SuccessResponse(c, gin.H{
			"customizations": s.Applied(),
		})
		return nil
	})
}

// POST /sessions/:id/wizard/next
func (h *SessionHandler) WizardNext(c *gin.Context) {
	h.withSession(c, func(s *configurator.Session) error {
		step, completed := s.NextStep()
		utils.SuccessResponse(c, gin.H{
			"step":      step,
			"completed": completed,
			"points":    s.Ledger().Points(),
			"tier":      s.Ledger().Tier(),
		})
		return nil
	})
}

// POST /sessions/:id/wizard/previous
func (h *SessionHandler) WizardPrevious(c *gin.Context) {
	h.withSession(c, func(s *configurator.Session) error {
		utils.SuccessResponse(c, gin.H{
			"step": s.PreviousStep(),
		})
		return nil
	})
}

// POST /sessions/:id/share
func (h *SessionHandler) Share(c *gin.Context) {
	h.withSession(c, func(s *configurator.Session) error {
		s.Share()
		utils.SuccessResponse(c, gin.H{
			"points": s.Ledger().Points(),
			"tier":   s.Ledger().Tier(),
		})
		return nil
	})
}

type recordEventRequest struct {
	Event string `json:"event" validate:"required,oneof=contest_entry custom_upload"`
}

// POST /sessions/:id/events
//
// Awards points for actions that happen on collaborator surfaces (contest
// submissions, custom uploads). Awards never fail.
func (h *SessionHandler) RecordEvent(c *gin.Context) {
	var req recordEventRequest
	if !bindAndValidate(c, &req) {
		return
	}

	h.withSession(c, func(s *configurator.Session) error {
		switch req.Event {
		case "contest_entry":
			s.Ledger().Award(configurator.PointsContestEntry)
		case "custom_upload":
			s.Ledger().Award(configurator.PointsCustomUpload)
		}

		utils.SuccessResponse(c, gin.H{
			"points": s.Ledger().Points(),
			"tier":   s.Ledger().Tier(),
		})
		return nil
	})
}

// POST /sessions/:id/save
//
// The save request snapshots the session state under the session lock, then
// goes through the coalescing queue: at most one save per session is ever
// in flight, later requests collapse last-write-wins.
func (h *SessionHandler) SaveProject(c *gin.Context) {
	var req saveProjectRequest
	if !bindAndValidate(c, &req) {
		return
	}

	sessionID, ok := parseSessionID(c)
	if !ok {
		return
	}

	var saveReq services.SaveRequest
	err := h.sessions.With(sessionID, func(s *configurator.Session) error {
		if s.VehicleID == "" {
			return configurator.ErrNoVehicle
		}
		saveReq = services.SaveRequest{
			ProjectID:   s.ProjectID,
			Name:        req.Name,
			Description: req.Description,
			VehicleID:   s.VehicleID,
			State:       s.State(),
		}
		return nil
	})
	switch {
	case errors.Is(err, services.ErrSessionNotFound):
		utils.NotFoundResponse(c, "session")
		return
	case errors.Is(err, configurator.ErrNoVehicle):
		utils.UnprocessableResponse(c, "Select a vehicle before saving")
		return
	case err != nil:
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := <-h.saveQueue.Enqueue(sessionID.String(), saveReq)
	if result.Err != nil {
		utils.BadGatewayResponse(c, "Failed to save project, your configuration is unchanged")
		return
	}

	var points int
	_ = h.sessions.With(sessionID, func(s *configurator.Session) error {
		s.ProjectID = &result.Project.ID
		s.Ledger().Award(configurator.PointsSaveProject)
		points = s.Ledger().Points()
		return nil
	})

	utils.SuccessResponse(c, gin.H{
		"project": result.Project,
		"points":  points,
	})
}

// GET /projects
//
// Saved projects for the resume picker, newest first.
func (h *SessionHandler) ListSavedProjects(c *gin.Context) {
	projects, err := h.projects.List(c.Request.Context())
	if err != nil {
		utils.BadGatewayResponse(c, "Failed to list projects")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"projects": projects,
	})
}

// POST /sessions/:id/resume
func (h *SessionHandler) ResumeProject(c *gin.Context) {
	var req resumeProjectRequest
	if !bindAndValidate(c, &req) {
		return
	}

	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid project ID", nil)
		return
	}

	project, err := h.projects.Resume(c.Request.Context(), projectID)
	switch {
	case errors.Is(err, configurator.ErrCorruptState):
		utils.UnprocessableResponse(c, "Saved project is corrupt, start a new one")
		return
	case err != nil:
		utils.BadGatewayResponse(c, "Failed to load project")
		return
	}

	h.withSession(c, func(s *configurator.Session) error {
		s.Restore(project.VehicleID, project.Customizations)
		s.ProjectID = &project.ID

		utils.SuccessResponse(c, sessionView(s))
		return nil
	})
}

// Helpers

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *SessionHandler) withSession(c *gin.Context, fn func(*configurator.Session) error) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}

	err := h.sessions.With(id, fn)
	if errors.Is(err, services.ErrSessionNotFound) {
		utils.NotFoundResponse(c, "session")
	}
}

func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return false
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}

func sessionView(s *configurator.Session) gin.H {
	view := gin.H{
		"id":             s.ID,
		"vehicle_id":     s.VehicleID,
		"step":           s.Step(),
		"items":          s.Items(),
		"customizations": s.Applied(),
		"choices":        s.Choices(),
		"quote":          s.Quote(),
		"points":         s.Ledger().Points(),
		"tier":           s.Ledger().Tier(),
	}
	if s.ProjectID != nil {
		view["project_id"] = *s.ProjectID
	}
	return view
}
