package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"uniform-manager/core/storage"
	"uniform-manager/core/storage/mocks"
	"uniform-manager/feature/integrity/checks"
	"uniform-manager/feature/uniform/store/storetest"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, client storage.Client) *fiber.App {
	app := fiber.New()
	svc := NewService(client, "test-bucket", zap.NewNop(), storetest.New(t).DB())
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func emptyListing(mockClient *mocks.Client) {
	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	ch := make(chan minio.ObjectInfo)
	close(ch)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))
}

func TestHandleStructureCheck(t *testing.T) {
	mockClient := new(mocks.Client)
	emptyListing(mockClient)
	app := setupTestApp(t, mockClient)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "checked", body["status"])
	assert.Equal(t, []any{"forecast"}, body["missing"])
}

func TestHandleStructureCheck_Fix(t *testing.T) {
	mockClient := new(mocks.Client)
	emptyListing(mockClient)
	mockClient.On("PutObject", mock.Anything, "test-bucket", "forecast/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
	app := setupTestApp(t, mockClient)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "fixed", body["status"])
	mockClient.AssertCalled(t, "PutObject", mock.Anything, "test-bucket", "forecast/", mock.Anything, int64(0), mock.Anything)
}

func TestHandleStructureCheck_StorageDisabled(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleServerCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var report checks.ServerReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.True(t, report.Matched)
	assert.Contains(t, report.Tables, "stock_records")
}

func TestHandleIntegrityCheck(t *testing.T) {
	app := setupTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	structure := body["structure"].(map[string]any)
	assert.Equal(t, "error", structure["status"])
	assert.Contains(t, body, "server")
}
