package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plaindoc/internal/config"
	"plaindoc/internal/domain"
	"plaindoc/internal/handler"
	"plaindoc/mocks"
)

func setupRouter(svc *mocks.MockUploadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewUploadHandler(svc, &config.UploadConfig{Provider: domain.ProviderR2})
	r := gin.New()
	r.POST("/api/v1/uploads", h.Upload)
	return r
}

// multipartBody builds a multipart form with a single "file" field.
func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestUpload_Success(t *testing.T) {
	svc := new(mocks.MockUploadService)
	want := &domain.UploadResult{
		Provider: domain.ProviderR2,
		Key:      "plaindoc/2024/01/01/1-abcdefgh.png",
		URL:      "https://cdn.example/plaindoc/2024/01/01/1-abcdefgh.png",
	}
	svc.On("Upload", mock.Anything, mock.Anything, mock.MatchedBy(func(f domain.File) bool {
		return f.Name == "screenshot.png" && f.ContentType == "image/png" && string(f.Data) == "fake png"
	})).Return(want, nil)

	body, contentType := multipartBody(t, "screenshot.png", "image/png", []byte("fake png"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "r2", data["provider"])
	assert.Equal(t, want.URL, data["url"])

	svc.AssertExpectations(t)
}

func TestUpload_MissingFile(t *testing.T) {
	svc := new(mocks.MockUploadService)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", bytes.NewReader(nil))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_UnsupportedFileType(t *testing.T) {
	svc := new(mocks.MockUploadService)
	svc.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domain.ErrUnsupportedFileType)

	body, contentType := multipartBody(t, "notes.pdf", "application/pdf", []byte("%PDF-1.4"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UNSUPPORTED_FILE_TYPE", resp.Error.Code)
}

func TestUpload_UpstreamFailure(t *testing.T) {
	svc := new(mocks.MockUploadService)
	svc.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.UploadError{StatusCode: 403, Body: "AccessDenied"})

	body, contentType := multipartBody(t, "a.png", "image/png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UPSTREAM_UPLOAD_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "403")
}

func TestUpload_ProviderConfigError(t *testing.T) {
	svc := new(mocks.MockUploadService)
	svc.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &domain.ConfigError{Provider: domain.ProviderOSS, Field: "bucket"})

	body, contentType := multipartBody(t, "a.png", "image/png", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()

	setupRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PROVIDER_CONFIG_INVALID", resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "bucket")
}
