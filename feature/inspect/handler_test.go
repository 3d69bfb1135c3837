package inspect

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"scene-inspector/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T, db *gorm.DB) (*fiber.App, *mocks.Client) {
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), db, 0, nil)
	handler := NewHandler(svc)
	handler.RegisterRoutes(app)
	return app, mockClient
}

func TestHandleInspect(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		app, mockClient := setupTestApp(t, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "model.gltf", mock.Anything).
			Return(docBody(), nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/inspect?object=model.gltf", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, 1, report.Counts["scene"])
		assert.Len(t, report.Scenes, 1)
	})

	t.Run("MissingObject", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/inspect", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownSection", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/inspect?object=a.gltf&sections=verts", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		var body map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Contains(t, body["error"], "unknown section")
	})

	t.Run("StorageFailure", func(t *testing.T) {
		app, mockClient := setupTestApp(t, nil)
		mockClient.On("GetObject", mock.Anything, "test-bucket", "gone.glb", mock.Anything).
			Return(nil, assert.AnError)

		resp, err := app.Test(httptest.NewRequest("GET", "/inspect?object=gone.glb", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	})
}

func TestHandleInspectUpload(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		req := httptest.NewRequest("POST", "/inspect?sections=scenes", bytes.NewReader([]byte(serviceTestDoc)))
		req.Header.Set("Content-Type", "application/octet-stream")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Len(t, report.Scenes, 1)
		// Only the scene section was selected.
		assert.Empty(t, report.Objects)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		resp, err := app.Test(httptest.NewRequest("POST", "/inspect", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unparseable", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		req := httptest.NewRequest("POST", "/inspect", bytes.NewReader([]byte("junk")))
		resp, err := app.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestHandleBundles(t *testing.T) {
	app, mockClient := setupTestApp(t, nil)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Key: "ship.glb", Size: 64}
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	resp, err := app.Test(httptest.NewRequest("GET", "/inspect/bundles", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, float64(1), body["count"])
}

func TestHandleHistory(t *testing.T) {
	t.Run("NoDatabase", func(t *testing.T) {
		app, _ := setupTestApp(t, nil)

		resp, err := app.Test(httptest.NewRequest("GET", "/inspect/history", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("ReturnsRuns", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		app, _ := setupTestApp(t, db)

		rows := sqlmock.NewRows([]string{"id", "object_key"}).AddRow(1, "ship.gltf")
		sqlMock.ExpectQuery("SELECT \\* FROM `report_runs`").WillReturnRows(rows)

		resp, err := app.Test(httptest.NewRequest("GET", "/inspect/history?limit=5", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, float64(1), body["count"])
	})
}
