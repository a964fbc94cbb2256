// internal/handlers/session_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"github.com/modgarage/garage-backend/internal/models"
	"github.com/modgarage/garage-backend/internal/services"
)

type memoryRepo struct {
	mu       sync.Mutex
	projects map[uuid.UUID]models.Project
}

func (r *memoryRepo) List(ctx context.Context) ([]models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.projects[id]
	if !ok {
		return nil, services.ErrProjectNotFound
	}
	return &p, nil
}

func (r *memoryRepo) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	project.ID = uuid.New()
	r.projects[project.ID] = *project
	return project, nil
}

func (r *memoryRepo) Update(ctx context.Context, project *models.Project) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.projects[project.ID] = *project
	return project, nil
}

type SessionHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	catalog := services.NewStaticCatalog(
		[]models.CatalogItem{
			{
				ItemID: "bk-street-01", Name: "Street Line Body Kit",
				Category: models.CategoryExterior, Subcategory: "body-kits",
				BasePrice: 45000, DiscountPercent: 10, InstallationDuration: "1 day",
				Compatibility: pq.StringArray{"swift-2023"},
			},
			{
				ItemID: "wh-alloy-17", Name: "17\" Forged Alloy Wheels",
				Category: models.CategoryWheels, Subcategory: "alloys",
				BasePrice: 52000, InstallationDuration: "2 hours",
				Compatibility: pq.StringArray{models.CompatibilityUniversal},
			},
		},
		[]models.Vehicle{
			{VehicleID: "swift-2023", Make: "Maruti Suzuki", Model: "Swift"},
		},
	)

	repo := &memoryRepo{projects: make(map[uuid.UUID]models.Project)}
	projectService := services.NewProjectService(repo)
	saveQueue := services.NewSaveQueue(projectService)
	sessions := services.NewSessionManager()

	handler := NewSessionHandler(sessions, catalog, projectService, saveQueue)

	suite.router = gin.New()
	group := suite.router.Group("/v1/sessions")
	{
		group.POST("", handler.CreateSession)
		group.GET("/:id", handler.GetSession)
		group.DELETE("/:id", handler.DeleteSession)
		group.PUT("/:id/vehicle", handler.SelectVehicle)
		group.PUT("/:id/context", handler.SetBrowseContext)
		group.POST("/:id/cart/items", handler.AddCartItem)
		group.DELETE("/:id/cart/items/:itemId", handler.RemoveCartItem)
		group.GET("/:id/quote", handler.GetQuote)
		group.POST("/:id/wizard/next", handler.WizardNext)
		group.POST("/:id/save", handler.SaveProject)
		group.POST("/:id/resume", handler.ResumeProject)
	}
}

func (suite *SessionHandlerTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SessionHandlerTestSuite) createSession() string {
	w := suite.request(http.MethodPost, "/v1/sessions", map[string]string{"vehicle_id": "swift-2023"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	return response.Data.ID
}

func (suite *SessionHandlerTestSuite) TestCreateAndGetSession() {
	id := suite.createSession()

	w := suite.request(http.MethodGet, "/v1/sessions/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			VehicleID string `json:"vehicle_id"`
			Step      string `json:"step"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("swift-2023", response.Data.VehicleID)
	suite.Equal("customize", response.Data.Step)
}

func (suite *SessionHandlerTestSuite) TestUnknownSession() {
	w := suite.request(http.MethodGet, "/v1/sessions/"+uuid.NewString(), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestDeleteSession() {
	id := suite.createSession()

	w := suite.request(http.MethodDelete, "/v1/sessions/"+id, nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/v1/sessions/"+id, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestBrowseContext() {
	id := suite.createSession()

	w := suite.request(http.MethodPut, fmt.Sprintf("/v1/sessions/%s/context", id), map[string]string{
		"category":    "exterior",
		"subcategory": "spoilers",
	})
	suite.Equal(http.StatusOK, w.Code)

	w = suite.request(http.MethodPut, fmt.Sprintf("/v1/sessions/%s/context", id), map[string]string{
		"category": "engine-swaps",
	})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *SessionHandlerTestSuite) TestAddDuplicateConflicts() {
	id := suite.createSession()
	body := map[string]string{"item_id": "bk-street-01"}

	w := suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/cart/items", id), body)
	suite.Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/cart/items", id), body)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SessionHandlerTestSuite) TestRemoveAbsentItem() {
	id := suite.createSession()

	w := suite.request(http.MethodDelete, fmt.Sprintf("/v1/sessions/%s/cart/items/ghost", id), nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestQuoteReflectsCart() {
	id := suite.createSession()

	w := suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/cart/items", id), map[string]string{"item_id": "bk-street-01"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodGet, fmt.Sprintf("/v1/sessions/%s/quote", id), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Quote struct {
				Subtotal int64  `json:"subtotal"`
				Total    int64  `json:"total"`
				Display  string `json:"installation_display"`
			} `json:"quote"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal(int64(40500), response.Data.Quote.Subtotal)
	suite.Equal(int64(40500), response.Data.Quote.Total)
	suite.Equal("1 day", response.Data.Quote.Display)
}

func (suite *SessionHandlerTestSuite) TestSaveAndResumeRoundTrip() {
	id := suite.createSession()

	w := suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/cart/items", id), map[string]string{"item_id": "wh-alloy-17"})
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/save", id), map[string]string{"name": "Weekend Build"})
	suite.Require().Equal(http.StatusOK, w.Code)

	var saveResponse struct {
		Data struct {
			Project struct {
				ID string `json:"id"`
			} `json:"project"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &saveResponse))
	suite.Require().NotEmpty(saveResponse.Data.Project.ID)

	// resume into a fresh session and compare the priced cart
	fresh := suite.createSession()
	w = suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/resume", fresh), map[string]string{"project_id": saveResponse.Data.Project.ID})
	suite.Require().Equal(http.StatusOK, w.Code)

	var resumeResponse struct {
		Data struct {
			Items []models.CartItem `json:"items"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resumeResponse))
	suite.Require().Len(resumeResponse.Data.Items, 1)
	suite.Equal("wh-alloy-17", resumeResponse.Data.Items[0].CatalogItemID)
	suite.Equal(int64(52000), resumeResponse.Data.Items[0].EffectivePrice)
}

func (suite *SessionHandlerTestSuite) TestSaveWithoutVehicle() {
	w := suite.request(http.MethodPost, "/v1/sessions", nil)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var response struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))

	w = suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/save", response.Data.ID), map[string]string{"name": "No Car Yet"})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)
}

func (suite *SessionHandlerTestSuite) TestWizardNext() {
	id := suite.createSession()

	w := suite.request(http.MethodPost, fmt.Sprintf("/v1/sessions/%s/wizard/next", id), nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Step      string `json:"step"`
			Completed bool   `json:"completed"`
		} `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.Equal("marketplace", response.Data.Step)
	suite.False(response.Data.Completed)
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}
