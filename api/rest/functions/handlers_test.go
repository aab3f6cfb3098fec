package functions

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_ReturnsFiveFreeCapabilities(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterRoutes(router.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/functions", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.Len(t, resp.Functions, 5)

	for _, fn := range resp.Functions {
		assert.True(t, fn.Free, "capability %s must be free", fn.ID)
	}

	assert.Equal(t, "prompt-to-landing", resp.Functions[0].ID)
}
