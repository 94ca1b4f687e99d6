package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lk2023060901/websearch-mcp/internal/pkg/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(handler gin.HandlerFunc) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	handler(c)

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestSuccess(t *testing.T) {
	w, resp := record(func(c *gin.Context) { Success(c, gin.H{"success": true}) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, apperrors.Success, resp.Code)
	assert.Equal(t, map[string]interface{}{"success": true}, resp.Data)

	w, resp = record(func(c *gin.Context) { Success(c, nil) })
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]interface{}{}, resp.Data)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		{
			name:       "search failure",
			err:        apperrors.New(apperrors.ErrSearchFailed, "Baidu search failed: timeout"),
			wantStatus: http.StatusBadGateway,
			wantCode:   apperrors.ErrSearchFailed,
			wantMsg:    "Search failed: Baidu search failed: timeout",
		},
		{
			name:       "plain error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apperrors.ErrInternalServer,
			wantMsg:    "Internal server error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, resp := record(func(c *gin.Context) { HandleError(c, tt.err) })
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, resp.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestErrorWithCode(t *testing.T) {
	w, resp := record(func(c *gin.Context) { ErrorWithCode(c, apperrors.ErrInvalidParams, "url is required") })
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperrors.ErrInvalidParams, resp.Code)
	assert.Equal(t, "Invalid parameters: url is required", resp.Message)
}

func TestNotFound(t *testing.T) {
	w, resp := record(func(c *gin.Context) { NotFound(c, "no route") })
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "no route", resp.Message)
}
