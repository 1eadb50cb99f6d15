package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"Stashed/internal/apperrors"
	"Stashed/internal/middleware"
	"Stashed/internal/models"
	"Stashed/internal/repository"
	"Stashed/internal/services"
)

type MockContainerService struct {
	mock.Mock
}

func (m *MockContainerService) CreateContainer(ctx context.Context, ownerID uint, name, description string) (*models.Container, error) {
	args := m.Called(ctx, ownerID, name, description)
	container, ok := args.Get(0).(*models.Container)
	if !ok {
		return nil, args.Error(1)
	}
	return container, args.Error(1)
}

func (m *MockContainerService) GetContainerByID(ctx context.Context, ownerID, id uint) (*models.Container, error) {
	args := m.Called(ctx, ownerID, id)
	container, ok := args.Get(0).(*models.Container)
	if !ok {
		return nil, args.Error(1)
	}
	return container, args.Error(1)
}

func (m *MockContainerService) UpdateContainer(ctx context.Context, ownerID, id uint, name, description *string) (*models.Container, error) {
	args := m.Called(ctx, ownerID, id, name, description)
	container, ok := args.Get(0).(*models.Container)
	if !ok {
		return nil, args.Error(1)
	}
	return container, args.Error(1)
}

func (m *MockContainerService) DeleteContainer(ctx context.Context, ownerID, id uint) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockContainerService) GetContainers(ctx context.Context, ownerID uint, opts repository.ListOptions) ([]models.Container, error) {
	args := m.Called(ctx, ownerID, opts)
	return args.Get(0).([]models.Container), args.Error(1)
}

func quietLogService() services.LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return services.LogService{Log: log}
}

func newContainerTestApp(service *MockContainerService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		middleware.SetOwnerID(c, 1)
		return c.Next()
	})
	handler := NewContainerHandler(service, quietLogService())
	app.Post("/containers", handler.CreateContainer)
	app.Get("/containers/:id", handler.GetContainerByID)
	app.Delete("/containers/:id", handler.DeleteContainer)
	return app
}

func TestContainerHandler_CreateContainer(t *testing.T) {
	mockService := new(MockContainerService)
	app := newContainerTestApp(mockService)

	container := &models.Container{BaseModel: models.BaseModel{ID: 1}, OwnerID: 1, Name: "Garage"}
	mockService.On("CreateContainer", mock.Anything, uint(1), "Garage", "metal shelves").Return(container, nil)

	body, err := json.Marshal(map[string]string{"name": "Garage", "description": "metal shelves"})
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/containers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestContainerHandler_CreateContainerMissingName(t *testing.T) {
	mockService := new(MockContainerService)
	app := newContainerTestApp(mockService)

	body, err := json.Marshal(map[string]string{"description": "no name"})
	assert.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/containers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	mockService.AssertNotCalled(t, "CreateContainer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestContainerHandler_GetContainerByIDNotFound(t *testing.T) {
	mockService := new(MockContainerService)
	app := newContainerTestApp(mockService)

	mockService.On("GetContainerByID", mock.Anything, uint(1), uint(42)).
		Return(nil, &apperrors.NotFoundError{Kind: "container"})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/containers/42", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestContainerHandler_DeleteContainerConflict(t *testing.T) {
	mockService := new(MockContainerService)
	app := newContainerTestApp(mockService)

	mockService.On("DeleteContainer", mock.Anything, uint(1), uint(7)).
		Return(&apperrors.ConflictError{Reason: apperrors.ReasonHasDependents, Name: "Garage", Count: 3})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/containers/7", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var payload struct {
		Reason string `json:"reason"`
		Name   string `json:"name"`
		Count  int64  `json:"count"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "has_dependents", payload.Reason)
	assert.Equal(t, "Garage", payload.Name)
	assert.Equal(t, int64(3), payload.Count)
	mockService.AssertExpectations(t)
}

func TestContainerHandler_DeleteContainerSuccess(t *testing.T) {
	mockService := new(MockContainerService)
	app := newContainerTestApp(mockService)

	mockService.On("DeleteContainer", mock.Anything, uint(1), uint(7)).Return(nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/containers/7", nil))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	mockService.AssertExpectations(t)
}
