package ui

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"programas/adapters/source"
	"programas/app"
	"programas/domain/catalog"
)

const testCSV = `Institucion,Programa,Departamento,Municipio,Matricula
Uni A,Ingeniería,Antioquia,Medellín,1000
Uni A,Medicina,Cundinamarca,Bogotá,2000
Uni B,Derecho,Antioquia,Envigado,
`

func newTestServer(t *testing.T, load bool) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "programas.csv")
	require.NoError(t, os.WriteFile(path, []byte(testCSV), 0o644))

	svc := app.NewCatalogService(source.NewFetcher(5*time.Second), path)
	if load {
		require.NoError(t, svc.Load(context.Background()))
	}

	srv := NewServer(svc, catalog.NewCurrencyFormatter("es-CO"))
	require.NoError(t, srv.Initialize())
	return srv
}

func doRequest(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func TestHandleProgramsFull(t *testing.T) {
	srv := newTestServer(t, true)

	w := doRequest(t, srv, "/api/programs")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count    int               `json:"count"`
		Programs []catalog.Program `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Count)
	assert.Equal(t, "Ingeniería", body.Programs[0].ProgramName)
}

func TestHandleProgramsFiltered(t *testing.T) {
	srv := newTestServer(t, true)

	w := doRequest(t, srv, "/api/programs?institution=Uni+A&q=antioquia")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count    int               `json:"count"`
		Programs []catalog.Program `json:"programs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "Ingeniería", body.Programs[0].ProgramName)
}

func TestHandleStats(t *testing.T) {
	srv := newTestServer(t, true)

	w := doRequest(t, srv, "/api/stats?institution=Uni+A")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Stats   catalog.Statistics `json:"stats"`
		Display string             `json:"meanTuitionDisplay"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Stats.Count)
	assert.Equal(t, 1, body.Stats.DistinctInstitutions)
	assert.Equal(t, float64(1500), body.Stats.MeanTuition)
	assert.Equal(t, "$ 1.500", body.Display)
}

func TestHandleFacets(t *testing.T) {
	srv := newTestServer(t, true)

	// Facet options come from the full dataset regardless of query.
	w := doRequest(t, srv, "/api/facets")
	require.Equal(t, http.StatusOK, w.Code)

	var body catalog.FacetOptions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Uni A", "Uni B"}, body.Institutions)
	assert.Equal(t, []string{"Antioquia", "Cundinamarca"}, body.Departments)
}

func TestHandleIndexRendersTable(t *testing.T) {
	srv := newTestServer(t, true)

	w := doRequest(t, srv, "/?institution=Uni+B")
	require.Equal(t, http.StatusOK, w.Code)

	html := w.Body.String()
	assert.Contains(t, html, "Derecho")
	assert.NotContains(t, html, "Medicina</td>")
	// Missing tuition renders the fixed label.
	assert.Contains(t, html, catalog.NotAvailableLabel)
}

func TestHandlersBeforeLoad(t *testing.T) {
	srv := newTestServer(t, false)

	for _, path := range []string{"/api/programs", "/api/stats", "/api/facets"} {
		w := doRequest(t, srv, path)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
		assert.True(t, strings.Contains(w.Body.String(), "NOT_LOADED"), path)
	}

	w := doRequest(t, srv, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthzAfterLoad(t *testing.T) {
	srv := newTestServer(t, true)

	w := doRequest(t, srv, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t, true)

	w := doRequest(t, srv, "/healthz")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
