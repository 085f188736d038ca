package observability

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/edmcheck/pkg/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() *domain.Report {
	r := domain.NewReport(domain.DefaultSchemaPath, "edm.v0.4", domain.DefaultPattern)
	r.Add(domain.Result{Path: "a", Valid: true})
	r.Add(domain.Result{Path: "b", Violations: domain.Violations{{Message: "x"}, {Message: "y"}}})
	r.Finalize(nil)
	r.Duration = 20 * time.Millisecond
	return r
}

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()
	r := sampleReport()
	for _, res := range r.Results {
		m.ObserveResult(res)
	}
	m.ObserveReport(r)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.files.WithLabelValues("valid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.files.WithLabelValues("invalid")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.violations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.runs.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lastFailed))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveResult(domain.Result{Valid: true})
		m.ObserveReport(sampleReport())
	})
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.ObserveReport(sampleReport())

	path := filepath.Join(t.TempDir(), "edmcheck.prom")
	require.NoError(t, m.WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `edmcheck_runs_total{status="failed"} 1`)
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ObserveResult(domain.Result{Valid: true})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `edmcheck_files_total{result="valid"} 1`))
}
