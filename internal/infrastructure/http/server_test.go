package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
	"github.com/coursechat/coursechat-go/internal/domain/router"
	"github.com/coursechat/coursechat-go/internal/domain/usecases"
)

type fixedCatalogs struct {
	catalog *entities.Catalog
}

func (f *fixedCatalogs) Catalog() *entities.Catalog { return f.catalog }

type stubStrategy struct{}

func (stubStrategy) Name() string { return "top_n" }

func (stubStrategy) Retrieve(ctx context.Context, q entities.Query, c *entities.Catalog, topK int) (entities.RetrievalContext, error) {
	return entities.RetrievalContext{{Course: c.At(0), Rationale: "rank 1"}}, nil
}

type stubProvider struct {
	err error
}

func (p stubProvider) Name() string { return "ollama" }

func (p stubProvider) GenerateAnswer(ctx context.Context, question string, rc entities.RetrievalContext) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return "stub answer", nil
}

func newTestServer(provErr error) (*Server, *usecases.Controller) {
	catalogs := &fixedCatalogs{catalog: entities.NewCatalog([]entities.Course{
		{ID: "CSE101", Title: "Intro to Programming"},
		{ID: "CSE340", Title: "Algorithms"},
	})}
	controller := usecases.NewController(
		catalogs,
		router.New(),
		map[string]ports.RetrievalStrategy{"top_n": stubStrategy{}},
		map[string]ports.AnswerProvider{"ollama": stubProvider{err: provErr}},
		3, "top_n", "ollama",
	)
	return NewServer(controller, catalogs, ""), controller
}

func TestHandleAsk(t *testing.T) {
	server, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question":"tell me about CSE101"}`))
	rec := httptest.NewRecorder()
	server.handleAsk(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp askResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "stub answer", resp.Answer)
	assert.Equal(t, "direct_course", resp.Route)
	assert.Equal(t, "ollama", resp.Provider)
}

func TestHandleAsk_ProviderFailureIs502(t *testing.T) {
	server, controller := newTestServer(entities.ErrProviderUnavailable)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{"question":"what courses involve sorting"}`))
	rec := httptest.NewRecorder()
	server.handleAsk(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	// The failure affects only that request; selections survive.
	assert.Equal(t, "ollama", controller.ActiveProvider())
}

func TestHandleAsk_BadBody(t *testing.T) {
	server, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/ask", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	server.handleAsk(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleSetStrategy_Unknown(t *testing.T) {
	server, controller := newTestServer(nil)

	req := httptest.NewRequest(http.MethodPut, "/api/strategy", strings.NewReader(`{"name":"bogus"}`))
	rec := httptest.NewRecorder()
	server.handleSetStrategy(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "top_n", controller.ActiveStrategy())
}

func TestHandleSetProvider_GetReturnsActive(t *testing.T) {
	server, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/provider", nil)
	rec := httptest.NewRecorder()
	server.handleSetProvider(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ollama", resp["active"])
}

func TestHandleCourses(t *testing.T) {
	server, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rec := httptest.NewRecorder()
	server.handleCourses(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out []courseSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 2)
	assert.Equal(t, "CSE101", out[0].ID)
}

func TestHandleHealth(t *testing.T) {
	server, _ := newTestServer(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	server.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok"`)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(entities.ErrUnknownVariant))
	assert.Equal(t, http.StatusBadRequest, statusFor(entities.ErrInvalidParameter))
	assert.Equal(t, http.StatusBadGateway, statusFor(entities.ErrProviderUnavailable))
	assert.Equal(t, http.StatusBadGateway, statusFor(entities.ErrProviderError))
	assert.Equal(t, http.StatusInternalServerError, statusFor(context.DeadlineExceeded))
}
