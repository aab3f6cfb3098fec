package diagnostics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements CollectionLister for testing
type mockLister struct {
	name  string
	names []string
	err   error
}

func (m *mockLister) Name() string {
	return m.name
}

func (m *mockLister) ListCollections(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func probe(t *testing.T, store CollectionLister) Response {
	t.Helper()

	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/test", Handler(store))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "probe must never fail the request")

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestHandler_NoDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	resp := probe(t, nil)

	assert.Equal(t, "✅ Running", resp.Backend)
	assert.Equal(t, "❌ Not Available", resp.Database)
	assert.Equal(t, "Not Connected", resp.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", resp.DatabaseURL)
	assert.Equal(t, "❌ Not Set", resp.DatabaseName)
	assert.Empty(t, resp.Collections)
}

func TestHandler_ConnectedAndWorking(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "flamesblue")

	store := &mockLister{
		name:  "flamesblue",
		names: []string{"sites", "users"},
	}

	resp := probe(t, store)

	assert.Equal(t, "✅ Connected & Working", resp.Database)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
	assert.Equal(t, []string{"sites", "users"}, resp.Collections)
	assert.Equal(t, "✅ Set", resp.DatabaseURL)
	assert.Equal(t, "✅ Set", resp.DatabaseName)
}

func TestHandler_CollectionListIsCapped(t *testing.T) {
	names := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		names = append(names, "col")
	}

	resp := probe(t, &mockLister{names: names})

	assert.Len(t, resp.Collections, maxCollections)
}

func TestHandler_ListingErrorIsDowngraded(t *testing.T) {
	longErr := errors.New(strings.Repeat("boom ", 30))

	resp := probe(t, &mockLister{err: longErr})

	require.True(t, strings.HasPrefix(resp.Database, "⚠️  Connected but Error: "))

	detail := strings.TrimPrefix(resp.Database, "⚠️  Connected but Error: ")
	assert.Equal(t, longErr.Error()[:maxErrorChars], detail)
	assert.Equal(t, "Connected", resp.ConnectionStatus)
}

func TestHandler_ShortListingErrorKeptWhole(t *testing.T) {
	resp := probe(t, &mockLister{err: errors.New("no reachable servers")})

	assert.Equal(t, "⚠️  Connected but Error: no reachable servers", resp.Database)
}
