package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/fleet_incident_tracker/internal/config"
	"github.com/shenikar/fleet_incident_tracker/internal/models"
	"github.com/shenikar/fleet_incident_tracker/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testAPIKey = "test-api-key"

var authHeader = map[string]string{"X-API-Key": testAPIKey}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *mocks.MockIncidentService, *mocks.MockLookupService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)
	mockLookup := mocks.NewMockLookupService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{testAPIKey},
	}

	handler := NewHandler(mockService, mockLookup, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, mockService, mockLookup, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов с JSON-телом
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func makeFormRequest(router *gin.Engine, method, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-API-Key", testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateBody() map[string]any {
	return map[string]any{
		"carId":        3,
		"reportedById": 10,
		"assignedToId": 7,
		"title":        "Minor bumper scratch",
		"description":  "Scratch while parking",
		"type":         "ACCIDENT",
		"occurredAt":   "2025-06-01T09:00:00Z",
		"images":       []string{"https://cdn.example.com/a.jpg"},
	}
}

func TestCreateIncident_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	expected := &models.Incident{ID: 55, Title: "Minor bumper scratch", Status: models.StatusPending}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, inc *models.Incident, _ []models.Upload) (*models.Incident, error) {
			assert.Equal(t, int64(3), inc.CarID)
			assert.Equal(t, int64(7), *inc.AssignedToID)
			assert.Equal(t, models.TypeAccident, inc.Type)
			assert.Equal(t, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC), inc.OccurredAt.UTC())
			assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, inc.Images)
			return expected, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(validCreateBody())
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.Incident
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.ID)
	assert.Equal(t, models.StatusPending, resp.Status)
}

func TestCreateIncident_Multipart(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("carId", "3"))
	require.NoError(t, writer.WriteField("reportedById", "10"))
	require.NoError(t, writer.WriteField("title", "Cracked windshield"))
	require.NoError(t, writer.WriteField("description", "Stone chip on highway"))
	require.NoError(t, writer.WriteField("type", "ACCIDENT"))
	require.NoError(t, writer.WriteField("severity", "HIGH"))
	require.NoError(t, writer.WriteField("occurredAt", "2025-06-01T09:00:00Z"))
	require.NoError(t, writer.WriteField("assignedToId", "")) // пустое значение игнорируется
	require.NoError(t, writer.WriteField("images", `["https://cdn.example.com/a.jpg"]`))
	part, err := writer.CreateFormFile("images", "crack.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any(), gomock.Len(1)).
		DoAndReturn(func(_ context.Context, inc *models.Incident, uploads []models.Upload) (*models.Incident, error) {
			assert.Nil(t, inc.AssignedToID)
			assert.Equal(t, models.SeverityHigh, inc.Severity)
			assert.Equal(t, []string{"https://cdn.example.com/a.jpg"}, inc.Images)

			assert.Equal(t, models.AttachmentImages, uploads[0].Field)
			assert.Equal(t, "crack.jpg", uploads[0].Filename)
			f, err := uploads[0].Open()
			require.NoError(t, err)
			defer f.Close()
			content, _ := io.ReadAll(f)
			assert.Equal(t, "jpeg-bytes", string(content))

			inc.ID = 1
			return inc, nil
		})

	req := httptest.NewRequest("POST", "/api/v1/incidents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", testAPIKey)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"title": "test"`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(body map[string]any)
	}{
		{"short title", func(b map[string]any) { b["title"] = "ab" }},
		{"missing description", func(b map[string]any) { delete(b, "description") }},
		{"unknown type", func(b map[string]any) { b["type"] = "FLOOD" }},
		{"bad severity", func(b map[string]any) { b["severity"] = "URGENT" }},
		{"image is not url", func(b map[string]any) { b["images"] = []string{"not a url"} }},
		{"missing occurredAt", func(b map[string]any) { delete(b, "occurredAt") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, _, router := newTestHandler(t)
			mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			body := validCreateBody()
			tt.mutate(body)
			bodyBytes, _ := json.Marshal(body)
			w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateIncident_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", fmt.Errorf("failed to create incident: %w: foreign key", models.ErrValidation), http.StatusBadRequest},
		{"upstream", fmt.Errorf("could not upload: %w", models.ErrUpstream), http.StatusBadGateway},
		{"timeout", fmt.Errorf("could not create incident: %w", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, _, router := newTestHandler(t)
			mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			bodyBytes, _ := json.Marshal(validCreateBody())
			w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes), authHeader)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusServiceUnavailable {
				assert.Equal(t, retryAfterSeconds, w.Header().Get("Retry-After"))
			}
		})
	}
}

func TestGetIncident_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	expected := &models.Incident{
		ID:    5,
		Title: "Flat tyre",
		Updates: []*models.IncidentUpdate{
			{ID: 2, UpdateType: models.UpdateStatusChange},
			{ID: 1, UpdateType: models.UpdateComment},
		},
	}

	mockService.EXPECT().GetIncident(gomock.Any(), int64(5)).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/5", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Incident
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Flat tyre", resp.Title)
	require.Len(t, resp.Updates, 2)
	assert.Equal(t, int64(2), resp.Updates[0].ID)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/abc", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), int64(404)).Return(nil, fmt.Errorf("incident with id 404: %w", models.ErrNotFound))

	w := makeRequest(router, "GET", "/api/v1/incidents/404", nil, authHeader)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	status := models.StatusResolved

	mockService.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{Status: &status}, models.Pagination{Page: 2, Limit: 5, Skip: 5}).
		Return(&models.IncidentPage{
			Items:      []*models.Incident{{ID: 6}, {ID: 7}},
			Page:       2,
			Limit:      5,
			Total:      12,
			TotalPages: 3,
		}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents?status=RESOLVED&page=2&limit=5", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Contains(t, w.Body.String(), `"totalPages":3`)
}

func TestListIncidents_EmptyItemsIsArray(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.IncidentPage{Page: 1, Limit: 10}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestListIncidents_InvalidFilter(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?severity=URGENT", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	w := makeRequest(router, "GET", "/api/v1/incidents", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateIncident_FormSuccess(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	updated := &models.Incident{ID: 1, Status: models.StatusResolved}

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), int64(1), gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ int64, patch *models.IncidentPatch, actorID *int64, _ []models.Upload) (*models.Incident, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.StatusResolved, *patch.Status)
			assert.Equal(t, 250.0, *patch.ActualCost)
			assert.Nil(t, patch.AssignedToID)
			assert.Nil(t, patch.Title)
			require.NotNil(t, actorID)
			assert.Equal(t, int64(42), *actorID)
			return updated, nil
		})

	w := makeFormRequest(router, "PUT", "/api/v1/incidents/1", url.Values{
		"status":     {"RESOLVED"},
		"actualCost": {"250"},
		"userId":     {"42"},
		"title":      {""},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"RESOLVED"`)
}

func TestUpdateIncident_JSONWithoutActor(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), int64(1), gomock.Any(), gomock.Nil(), gomock.Nil()).
		Return(&models.Incident{ID: 1}, nil)

	w := makeRequest(router, "PUT", "/api/v1/incidents/1", bytes.NewBufferString(`{"assignedToId": 8}`), authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateIncident_InvalidStatus(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeFormRequest(router, "PUT", "/api/v1/incidents/1", url.Values{"status": {"DONE"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateIncident_InvalidID(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeFormRequest(router, "PUT", "/api/v1/incidents/invalid-uuid", url.Values{"status": {"RESOLVED"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestUpdateIncident_NotFound(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), int64(404), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("service: incident with id 404 not found for update: %w", models.ErrNotFound))

	w := makeFormRequest(router, "PUT", "/api/v1/incidents/404", url.Values{"status": {"RESOLVED"}})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddIncidentUpdate_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	created := &models.IncidentUpdate{ID: 77, IncidentID: 1, UserID: 4, UpdateType: models.UpdateStatusChange, Message: "Started repair"}

	mockService.EXPECT().
		AddUpdate(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, sub *models.UpdateSubmission) (*models.IncidentUpdate, error) {
			assert.Equal(t, int64(4), sub.UserID)
			assert.Equal(t, models.UpdateStatusChange, sub.UpdateType)
			require.NotNil(t, sub.Status)
			assert.Equal(t, models.StatusInProgress, *sub.Status)
			return created, nil
		})

	w := makeRequest(router, "POST", "/api/v1/incidents/1/updates",
		bytes.NewBufferString(`{"message":"Started repair","updateType":"STATUS_CHANGE","userId":4,"status":"IN_PROGRESS"}`), authHeader)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.IncidentUpdate
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(77), resp.ID)
}

func TestAddIncidentUpdate_ValidationError(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().AddUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/incidents/1/updates",
		bytes.NewBufferString(`{"updateType":"COMMENT","userId":4}`), authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddIncidentUpdate_NotFound(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().AddUpdate(gomock.Any(), int64(404), gomock.Any()).Return(nil, fmt.Errorf("missing: %w", models.ErrNotFound))

	w := makeFormRequest(router, "POST", "/api/v1/incidents/404/updates", url.Values{
		"message":    {"Called the driver"},
		"updateType": {"COMMENT"},
		"userId":     {"4"},
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)
	stats := &models.IncidentStats{
		Total:             3,
		ByStatus:          map[models.Status]int{models.StatusPending: 2, models.StatusResolved: 1},
		BySeverity:        map[models.Severity]int{models.SeverityLow: 3},
		AvgResolutionTime: 6,
		OpenIncidents:     2,
	}

	mockService.EXPECT().GetStats(gomock.Any()).Return(stats, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil, authHeader)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"openIncidents":2`)
	assert.Contains(t, w.Body.String(), `"PENDING":2`)
}

func TestGetStats_ServiceError(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("db error"))

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil, authHeader)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestLookups(t *testing.T) {
	_, _, mockLookup, router := newTestHandler(t)
	carID := int64(3)

	mockLookup.EXPECT().ListUsers(gomock.Any()).Return([]*models.UserRef{{ID: 1, Name: "Ivan"}}, nil)
	mockLookup.EXPECT().ListCars(gomock.Any()).Return([]*models.Car{{ID: 3, PlateNumber: "A123BC"}}, nil)
	mockLookup.EXPECT().ListCarReadings(gomock.Any(), &carID).Return([]*models.CarReading{}, nil)

	w := makeRequest(router, "GET", "/api/v1/users", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ivan"`)

	w = makeRequest(router, "GET", "/api/v1/cars", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plateNumber":"A123BC"`)

	w = makeRequest(router, "GET", "/api/v1/car-readings?carId=3", nil, authHeader)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListCarReadings_InvalidCarID(t *testing.T) {
	_, _, mockLookup, router := newTestHandler(t)

	mockLookup.EXPECT().ListCarReadings(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/car-readings?carId=x", nil, authHeader)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRoutes_RequireAPIKey(t *testing.T) {
	_, mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoutes_OpenWithoutConfiguredKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(mockService, mocks.NewMockLookupService(ctrl), logger, &config.Config{}).RegisterRoutes(router.Group("/api/v1"))

	mockService.EXPECT().GetStats(gomock.Any()).Return(&models.IncidentStats{}, nil)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func newLimitedRouter(t *testing.T, limit int64) (*mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{MaxRequestBytes: limit}
	NewHandler(mockService, mocks.NewMockLookupService(ctrl), logger, cfg).RegisterRoutes(router.Group("/api/v1"))
	return mockService, router
}

func TestBodyLimit_RejectsDeclaredLength(t *testing.T) {
	mockService, router := newLimitedRouter(t, 64)
	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(validCreateBody())
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewReader(body))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestBodyLimit_RejectsStreamedBody(t *testing.T) {
	mockService, router := newLimitedRouter(t, 64)
	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	body, _ := json.Marshal(validCreateBody())
	req := httptest.NewRequest("POST", "/api/v1/incidents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1 // длина заранее неизвестна
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "request body too large")
}

func TestMultipartMemory_FollowsUploadLimit(t *testing.T) {
	handler, _, _, _ := newTestHandler(t)
	assert.Equal(t, int64(defaultMultipartMemory), handler.multipartMemory())

	handler.cfg.UploadMaxBytes = 1 << 20
	assert.Equal(t, int64(1<<20), handler.multipartMemory())
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
